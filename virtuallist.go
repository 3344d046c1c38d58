package vlist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// VirtualList renders only the visible window of a large dataset as text.
// The host supplies the items and a render function; the list owns a
// Scroller and, in dynamic mode, feeds the measured height of every view it
// renders back into the engine.
type VirtualList[T any] struct {
	items    []T
	render   func(item T, index int) string
	scroller *Scroller
	dynamic  bool

	width     int
	scrollbar bool

	// Rendered views for the current window and a margin around it, keyed
	// by index. Pruned as the window moves so memory stays O(visible).
	cache map[int]string
}

// NewVirtualList creates a virtual list over items. Pass WithItemHeight for
// fixed-row mode or WithEstimatedItemHeight to have each item measured from
// its rendered view.
func NewVirtualList[T any](items []T, render func(T, int) string, opts ...Option) (*VirtualList[T], error) {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	scroller, err := NewScroller(len(items), opts...)
	if err != nil {
		return nil, err
	}
	return &VirtualList[T]{
		items:    items,
		render:   render,
		scroller: scroller,
		dynamic:  c.estimateHeight > 0,
		cache:    make(map[int]string),
	}, nil
}

// Scroller exposes the underlying engine.
func (v *VirtualList[T]) Scroller() *Scroller { return v.scroller }

// Items returns the current items.
func (v *VirtualList[T]) Items() []T { return v.items }

// Len returns total item count.
func (v *VirtualList[T]) Len() int { return len(v.items) }

// SetItems replaces the item list. In dynamic mode all measurements are
// discarded along with the cached views; heights belong to the old items.
func (v *VirtualList[T]) SetItems(items []T) *VirtualList[T] {
	v.items = items
	clear(v.cache)
	v.scroller.Reset(len(items))
	return v
}

// AppendItems adds items to the end of the list. Existing measurements are
// kept; only the new tail starts from the estimate.
func (v *VirtualList[T]) AppendItems(items ...T) *VirtualList[T] {
	v.items = append(v.items, items...)
	v.scroller.SetCount(len(v.items))
	return v
}

// UpdateItem replaces the item at index i and drops its cached view so the
// next render re-measures it.
func (v *VirtualList[T]) UpdateItem(i int, item T) *VirtualList[T] {
	if i < 0 || i >= len(v.items) {
		return v
	}
	v.items[i] = item
	delete(v.cache, i)
	return v
}

// SetWidth sets the render width. Zero leaves lines unpadded and disables
// the scrollbar column.
func (v *VirtualList[T]) SetWidth(w int) *VirtualList[T] {
	if w != v.width {
		v.width = w
		if v.dynamic {
			clear(v.cache)
		}
	}
	return v
}

// SetViewport sets the render width and viewport height together, e.g. from
// a terminal resize.
func (v *VirtualList[T]) SetViewport(width, height int) *VirtualList[T] {
	v.SetWidth(width)
	v.scroller.SetViewportHeight(height)
	return v
}

// Scrollbar toggles the scrollbar column drawn when content overflows.
func (v *VirtualList[T]) Scrollbar(on bool) *VirtualList[T] {
	v.scrollbar = on
	return v
}

// ScrollTo scrolls to the given row offset.
func (v *VirtualList[T]) ScrollTo(offset int) *VirtualList[T] {
	v.scroller.ScrollTo(offset)
	return v
}

// ScrollBy scrolls by delta rows (positive = down).
func (v *VirtualList[T]) ScrollBy(delta int) *VirtualList[T] {
	v.scroller.ScrollBy(delta)
	return v
}

// ScrollToItem scrolls so that item i starts at the top of the viewport.
func (v *VirtualList[T]) ScrollToItem(i int) *VirtualList[T] {
	if i < 0 {
		i = 0
	}
	if i >= len(v.items) {
		i = len(v.items) - 1
	}
	if i >= 0 {
		v.measureWindow()
		v.scroller.ScrollTo(v.scroller.OffsetOf(i))
	}
	return v
}

// VisibleRange returns the current window of item indices.
func (v *VirtualList[T]) VisibleRange() Range { return v.scroller.Range() }

// TotalHeight returns the content height in rows.
func (v *VirtualList[T]) TotalHeight() int { return v.scroller.TotalHeight() }

// viewOf returns the rendered view for index i, from cache when possible.
func (v *VirtualList[T]) viewOf(i int) string {
	if view, ok := v.cache[i]; ok {
		return view
	}
	view := v.render(v.items[i], i)
	v.cache[i] = view
	return view
}

// measureWindow renders every item in the current window and, in dynamic
// mode, reports its height to the engine. Corrections can shift the window,
// so it loops until the range is stable; each item is only ever measured
// once, so the loop terminates.
func (v *VirtualList[T]) measureWindow() Range {
	rng := v.scroller.Range()
	for {
		changed := false
		for i := rng.Start; i <= rng.End; i++ {
			view := v.viewOf(i)
			if v.dynamic && v.scroller.Measure(i, lipgloss.Height(view)) {
				changed = true
			}
		}
		next := v.scroller.Range()
		if !changed && next == rng {
			return rng
		}
		rng = next
	}
}

// View renders the visible window as a viewport-height block of text.
// Overscan items are materialized (rendered and cached) but clipped from
// the output, and partially visible first/last items are clipped to the
// rows that actually fall inside the viewport.
func (v *VirtualList[T]) View() string {
	viewport := v.scroller.ViewportHeight()
	if len(v.items) == 0 {
		return ""
	}

	rng := v.measureWindow()
	v.prune(rng)

	// Collect the window's rows, then cut the viewport slice out of them.
	var rows []string
	for i := rng.Start; i <= rng.End; i++ {
		lines := strings.Split(v.viewOf(i), "\n")
		h := v.scroller.HeightOf(i)
		for len(lines) < h {
			lines = append(lines, "")
		}
		rows = append(rows, lines[:h]...)
	}

	scroll := min(v.scroller.ScrollOffset(), v.scroller.MaxScroll())
	first := scroll - v.scroller.OffsetOf(rng.Start)
	if first < 0 {
		first = 0
	}
	if first > len(rows) {
		first = len(rows)
	}
	last := min(first+viewport, len(rows))
	visible := rows[first:last]

	out := make([]string, viewport)
	copy(out, visible)

	if v.width > 0 {
		v.decorate(out, scroll)
	}
	return strings.Join(out, "\n")
}

// decorate pads every row to the render width and draws the scrollbar
// column when the content overflows the viewport.
func (v *VirtualList[T]) decorate(out []string, scroll int) {
	total := v.scroller.TotalHeight()
	viewport := v.scroller.ViewportHeight()
	bar := v.scrollbar && total > viewport

	contentWidth := v.width
	if bar {
		contentWidth--
	}

	var thumbTop, thumbLen int
	if bar {
		thumbLen = max(1, viewport*viewport/total)
		if maxScroll := total - viewport; maxScroll > 0 {
			thumbTop = (viewport - thumbLen) * scroll / maxScroll
		}
	}

	for i, row := range out {
		row = padRow(row, contentWidth)
		if bar {
			if i >= thumbTop && i < thumbTop+thumbLen {
				row += "┃"
			} else {
				row += "│"
			}
		}
		out[i] = row
	}
}

// padRow truncates or pads a row to exactly w columns, ANSI-aware.
func padRow(row string, w int) string {
	if w <= 0 {
		return row
	}
	if lipgloss.Width(row) > w {
		row = ansi.Truncate(row, w, "…")
	}
	if gap := w - lipgloss.Width(row); gap > 0 {
		row += strings.Repeat(" ", gap)
	}
	return row
}

// prune drops cached views far outside the window, keeping one window's
// worth of items on each side as scroll margin.
func (v *VirtualList[T]) prune(rng Range) {
	if rng.Empty() {
		clear(v.cache)
		return
	}
	margin := rng.Len()
	lo, hi := rng.Start-margin, rng.End+margin
	for i := range v.cache {
		if i < lo || i > hi {
			delete(v.cache, i)
		}
	}
}
