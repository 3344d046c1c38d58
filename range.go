package vlist

// Range is an inclusive window of item indices. The zero value is not
// meaningful; an empty range has End < Start.
type Range struct {
	Start, End int
}

// emptyRange is returned whenever the collection has no items.
var emptyRange = Range{Start: 0, End: -1}

// Empty reports whether the range holds no indices.
func (r Range) Empty() bool { return r.End < r.Start }

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether index i falls inside the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i <= r.End }

// rangeFor maps a scroll position to the window of items to materialize:
// the indices under [scroll, scroll+viewport] widened symmetrically by
// overscan, clamped to the ends of the list.
func rangeFor(m heightModel, scroll, viewport, overscan int) Range {
	n := m.Count()
	if n == 0 {
		return emptyRange
	}
	if scroll < 0 {
		scroll = 0
	}
	start := m.IndexAt(scroll) - overscan
	end := m.IndexAt(scroll+viewport) + overscan
	if start < 0 {
		start = 0
	}
	if end > n-1 {
		end = n - 1
	}
	return Range{Start: start, End: end}
}
