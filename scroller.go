package vlist

import (
	"errors"
	"fmt"
)

// DefaultEndReachedThreshold is the fraction of the scrollable extent that
// triggers the end-reached notification when none is configured.
const DefaultEndReachedThreshold = 0.8

var errNoHeight = errors.New("vlist: one of WithItemHeight or WithEstimatedItemHeight is required")

type config struct {
	itemHeight     int
	estimateHeight int
	container      int
	overscan       int
	threshold      float64
	onRange        func(Range)
	onEndReached   func()
}

// Option configures a Scroller.
type Option func(*config)

// WithItemHeight selects fixed mode: every item is exactly h rows tall and
// all offset math is O(1).
func WithItemHeight(h int) Option {
	return func(c *config) { c.itemHeight = h }
}

// WithEstimatedItemHeight selects dynamic mode: items start at h rows until
// a real measurement arrives for them.
func WithEstimatedItemHeight(h int) Option {
	return func(c *config) { c.estimateHeight = h }
}

// WithContainerHeight sets the viewport height in rows.
func WithContainerHeight(h int) Option {
	return func(c *config) { c.container = h }
}

// WithOverscan renders n extra items beyond the visible span on each side.
func WithOverscan(n int) Option {
	return func(c *config) { c.overscan = n }
}

// WithOnRange registers a callback invoked with the new visible range after
// every recompute.
func WithOnRange(fn func(Range)) Option {
	return func(c *config) { c.onRange = fn }
}

// WithOnEndReached registers a callback fired once each time the scroll
// position crosses the end-reached threshold.
func WithOnEndReached(fn func()) Option {
	return func(c *config) { c.onEndReached = fn }
}

// WithEndReachedThreshold sets the fraction of total content height at which
// the end-reached notification fires. Must be in (0, 1].
func WithEndReachedThreshold(t float64) Option {
	return func(c *config) { c.threshold = t }
}

// Scroller is the engine's single entry point. The host pushes scroll
// positions, measurements and count changes in; the Scroller recomputes the
// visible range synchronously on each event and republishes it. Events must
// be delivered one at a time; the Scroller has no locking of its own.
type Scroller struct {
	model    heightModel
	viewport int
	overscan int

	scroll int
	rng    Range

	end          endReached
	onRange      func(Range)
	onEndReached func()
}

// NewScroller builds a windowing engine over count items. Configuration is
// validated here; scroll-driven computation never fails afterwards.
func NewScroller(count int, opts ...Option) (*Scroller, error) {
	c := config{threshold: DefaultEndReachedThreshold}
	for _, opt := range opts {
		opt(&c)
	}

	if c.itemHeight == 0 && c.estimateHeight == 0 {
		return nil, errNoHeight
	}
	if c.itemHeight != 0 && c.estimateHeight != 0 {
		return nil, errors.New("vlist: WithItemHeight and WithEstimatedItemHeight are mutually exclusive")
	}
	if c.itemHeight < 0 {
		return nil, fmt.Errorf("vlist: item height %d must be positive", c.itemHeight)
	}
	if c.estimateHeight < 0 {
		return nil, fmt.Errorf("vlist: estimated item height %d must be positive", c.estimateHeight)
	}
	if c.container <= 0 {
		return nil, fmt.Errorf("vlist: container height %d must be positive", c.container)
	}
	if c.overscan < 0 {
		return nil, fmt.Errorf("vlist: overscan %d must be non-negative", c.overscan)
	}
	if c.threshold <= 0 || c.threshold > 1 {
		return nil, fmt.Errorf("vlist: end-reached threshold %v must be in (0, 1]", c.threshold)
	}
	if count < 0 {
		count = 0
	}

	var model heightModel
	if c.itemHeight > 0 {
		model = newFixedHeights(c.itemHeight, count)
	} else {
		model = newDynamicHeights(c.estimateHeight, count)
	}

	s := &Scroller{
		model:        model,
		viewport:     c.container,
		overscan:     c.overscan,
		end:          newEndReached(c.threshold),
		onRange:      c.onRange,
		onEndReached: c.onEndReached,
	}
	s.recompute()
	return s, nil
}

// ScrollTo replaces the scroll position and returns the recomputed visible
// range. Negative offsets clamp to 0; offsets past the content extent are
// tolerated and clamp at query time.
func (s *Scroller) ScrollTo(offset int) Range {
	if offset < 0 {
		offset = 0
	}
	s.scroll = offset
	return s.recompute()
}

// ScrollBy moves the scroll position by delta rows.
func (s *Scroller) ScrollBy(delta int) Range {
	return s.ScrollTo(s.scroll + delta)
}

// ScrollToBottom jumps to the maximum useful scroll offset.
func (s *Scroller) ScrollToBottom() Range {
	return s.ScrollTo(s.MaxScroll())
}

// Measure feeds a realized item height back into the model. If the geometry
// changed, the range is recomputed so stale offsets never leak out. Reports
// whether anything changed.
func (s *Scroller) Measure(i, h int) bool {
	if !s.model.Measure(i, h) {
		return false
	}
	s.recompute()
	return true
}

// SetCount resizes the collection. The scroll offset is left alone; queries
// clamp against the new extent.
func (s *Scroller) SetCount(n int) {
	s.model.SetCount(n)
	s.recompute()
}

// Reset resizes the collection to n items and discards every measurement.
// Use it instead of SetCount when the items themselves were replaced, so the
// new items do not inherit heights measured from the old ones.
func (s *Scroller) Reset(n int) {
	s.model.SetCount(n)
	s.model.Reset()
	s.recompute()
}

// SetViewportHeight resizes the viewport, e.g. after a terminal resize.
// Non-positive heights are ignored.
func (s *Scroller) SetViewportHeight(h int) {
	if h <= 0 {
		return
	}
	s.viewport = h
	s.recompute()
}

// recompute is the one synchronous reaction to every event: derive the new
// range, run the end-reached check, publish both.
func (s *Scroller) recompute() Range {
	s.rng = rangeFor(s.model, s.scroll, s.viewport, s.overscan)
	if s.onRange != nil {
		s.onRange(s.rng)
	}
	if s.end.check(s.scroll, s.viewport, s.model.TotalHeight()) && s.onEndReached != nil {
		s.onEndReached()
	}
	return s.rng
}

// Range returns the most recently computed visible range.
func (s *Scroller) Range() Range { return s.rng }

// ScrollOffset returns the current scroll position.
func (s *Scroller) ScrollOffset() int { return s.scroll }

// ViewportHeight returns the configured viewport height.
func (s *Scroller) ViewportHeight() int { return s.viewport }

// Count returns the number of items the engine covers.
func (s *Scroller) Count() int { return s.model.Count() }

// TotalHeight returns the full content height, an estimate in dynamic mode
// until every item has been measured.
func (s *Scroller) TotalHeight() int { return s.model.TotalHeight() }

// MaxScroll returns the largest offset that still changes what is visible.
func (s *Scroller) MaxScroll() int {
	return max(0, s.model.TotalHeight()-s.viewport)
}

// OffsetOf returns the row offset where item i starts.
func (s *Scroller) OffsetOf(i int) int { return s.model.OffsetOf(i) }

// HeightOf returns the current height of item i.
func (s *Scroller) HeightOf(i int) int { return s.model.Height(i) }

// IndexAt returns the item index under row offset y.
func (s *Scroller) IndexAt(y int) int { return s.model.IndexAt(y) }
