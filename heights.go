package vlist

import "sort"

// heightModel answers positional queries about item heights: how tall is
// item i, where does it start, which item sits at offset y, and how tall is
// the whole list. Fixed mode is pure arithmetic; dynamic mode tracks
// per-index measurements over an initial estimate.
//
// All queries clamp rather than fail, so a model is total over any offset
// even while the collection is shrinking underneath it.
type heightModel interface {
	// Height returns the current height of item i.
	Height(i int) int
	// OffsetOf returns the sum of heights of items [0, i).
	OffsetOf(i int) int
	// IndexAt returns the index whose [OffsetOf(i), OffsetOf(i+1)) interval
	// contains y, clamped to [0, n-1].
	IndexAt(y int) int
	// TotalHeight returns the height of the whole list. In dynamic mode this
	// is a live estimate until every item has been measured.
	TotalHeight() int
	// Count returns the number of items the model covers.
	Count() int
	// SetCount resizes the model to n items.
	SetCount(n int)
	// Measure records the realized height of item i. It reports whether the
	// list geometry changed. Out-of-range indices and non-positive heights
	// are ignored.
	Measure(i, h int) bool
	// Reset discards every recorded measurement, returning each item to the
	// estimate. Measurements are positional, so they are meaningless once
	// the items behind the indices have been replaced.
	Reset()
}

// fixedHeights is the uniform-height model: every query is O(1) arithmetic
// and nothing short of a count change ever invalidates it.
type fixedHeights struct {
	h int
	n int
}

func newFixedHeights(itemHeight, count int) *fixedHeights {
	return &fixedHeights{h: itemHeight, n: count}
}

func (f *fixedHeights) Height(int) int { return f.h }
func (f *fixedHeights) TotalHeight() int { return f.n * f.h }
func (f *fixedHeights) Count() int { return f.n }
func (f *fixedHeights) SetCount(n int) { f.n = max(0, n) }
func (f *fixedHeights) Measure(_, _ int) bool { return false }
func (f *fixedHeights) Reset() {}

func (f *fixedHeights) OffsetOf(i int) int {
	if i < 0 {
		return 0
	}
	if i > f.n {
		i = f.n
	}
	return i * f.h
}

func (f *fixedHeights) IndexAt(y int) int {
	if y < 0 || f.n == 0 {
		return 0
	}
	i := y / f.h
	if i >= f.n {
		i = f.n - 1
	}
	return i
}

// heightEntry is one slot in the dynamic model's arena: the current height
// and whether it came from a real measurement or the estimate.
type heightEntry struct {
	height   int
	measured bool
}

// dynamicHeights seeds every index with an estimate and replaces entries as
// real measurements arrive. Cumulative offsets are kept in a flat table that
// is only valid up to a watermark; a measurement truncates the watermark at
// the corrected index and the table is re-extended lazily on the next query
// instead of eagerly rebuilt.
type dynamicHeights struct {
	estimate int
	entries  []heightEntry

	// offsets[i] = sum of heights [0, i). Entries [0, valid] are correct.
	offsets []int
	valid   int

	measuredCount int
	measuredSum   int
}

func newDynamicHeights(estimate, count int) *dynamicHeights {
	d := &dynamicHeights{estimate: estimate}
	d.SetCount(count)
	return d
}

func (d *dynamicHeights) Height(i int) int {
	if i < 0 || i >= len(d.entries) {
		return d.estimate
	}
	return d.entries[i].height
}

func (d *dynamicHeights) Count() int { return len(d.entries) }

// TotalHeight is measured heights plus the estimate for everything still
// unmeasured. It can shift down as items measure smaller than the estimate.
func (d *dynamicHeights) TotalHeight() int {
	return d.measuredSum + (len(d.entries)-d.measuredCount)*d.estimate
}

func (d *dynamicHeights) SetCount(n int) {
	n = max(0, n)
	for len(d.entries) > n {
		e := d.entries[len(d.entries)-1]
		if e.measured {
			d.measuredCount--
			d.measuredSum -= e.height
		}
		d.entries = d.entries[:len(d.entries)-1]
	}
	for len(d.entries) < n {
		d.entries = append(d.entries, heightEntry{height: d.estimate})
	}
	if cap(d.offsets) < n+1 {
		offsets := make([]int, n+1)
		copy(offsets, d.offsets)
		d.offsets = offsets
	}
	d.offsets = d.offsets[:n+1]
	if d.valid > n {
		d.valid = n
	}
}

func (d *dynamicHeights) Measure(i, h int) bool {
	if i < 0 || i >= len(d.entries) || h <= 0 {
		return false
	}
	e := &d.entries[i]
	changed := e.height != h
	if !e.measured {
		d.measuredCount++
		d.measuredSum += h
	} else {
		d.measuredSum += h - e.height
	}
	e.height = h
	e.measured = true
	if changed && d.valid > i {
		d.valid = i
	}
	return changed
}

func (d *dynamicHeights) Reset() {
	for i := range d.entries {
		d.entries[i] = heightEntry{height: d.estimate}
	}
	d.valid = 0
	d.measuredCount = 0
	d.measuredSum = 0
}

// extendTo makes offsets valid through index i.
func (d *dynamicHeights) extendTo(i int) {
	for j := d.valid; j < i; j++ {
		d.offsets[j+1] = d.offsets[j] + d.entries[j].height
	}
	if i > d.valid {
		d.valid = i
	}
}

func (d *dynamicHeights) OffsetOf(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(d.entries) {
		i = len(d.entries)
	}
	d.extendTo(i)
	return d.offsets[i]
}

func (d *dynamicHeights) IndexAt(y int) int {
	n := len(d.entries)
	if n == 0 || y < 0 {
		return 0
	}
	// Binary search the already-valid prefix, extending it lazily if y lies
	// past the watermark.
	if d.offsets[d.valid] <= y {
		for d.valid < n && d.offsets[d.valid] <= y {
			d.extendTo(d.valid + 1)
		}
		if d.offsets[d.valid] <= y {
			// Past the end of the content.
			return n - 1
		}
		return d.valid - 1
	}
	return sort.Search(d.valid, func(j int) bool { return d.offsets[j+1] > y })
}
