package vlist

import "sort"

// FilterList windows over the subset of a source slice matching an fzf-style
// query. The query projects the source onto a ranked subset and the embedded
// VirtualList windows over that projection, so a million-row source filtered
// to ten matches still renders O(visible) items.
type FilterList[T any] struct {
	*VirtualList[T]

	source  []T
	extract func(T) string

	lastQuery string
	indices   []int // indices[i] = source index of projected item i
}

// NewFilterList creates a filterable virtual list. extract returns the
// searchable text for an item; render and opts behave as in NewVirtualList.
func NewFilterList[T any](items []T, extract func(T) string, render func(T, int) string, opts ...Option) (*FilterList[T], error) {
	inner, err := NewVirtualList(items, render, opts...)
	if err != nil {
		return nil, err
	}
	f := &FilterList[T]{
		VirtualList: inner,
		source:      items,
		extract:     extract,
	}
	f.resetProjection()
	return f, nil
}

// SetQuery re-filters the source with a new query. Matches are ranked by
// score, ties kept in source order. The scroll position resets to the top
// since the projection's geometry has nothing in common with the old one.
// No-op if the query is unchanged.
func (f *FilterList[T]) SetQuery(raw string) *FilterList[T] {
	if raw == f.lastQuery {
		return f
	}
	f.lastQuery = raw
	f.apply()
	return f
}

func (f *FilterList[T]) apply() {
	query := ParseQuery(f.lastQuery)
	if query.Empty() {
		f.resetProjection()
		f.ScrollTo(0)
		return
	}

	type match struct {
		index int
		score int
	}
	var matches []match
	for i := range f.source {
		if score, ok := query.Score(f.extract(f.source[i])); ok {
			matches = append(matches, match{index: i, score: score})
		}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})

	f.indices = f.indices[:0]
	projected := make([]T, 0, len(matches))
	for _, m := range matches {
		f.indices = append(f.indices, m.index)
		projected = append(projected, f.source[m.index])
	}
	f.SetItems(projected)
	f.ScrollTo(0)
}

// Query returns the current raw query string.
func (f *FilterList[T]) Query() string { return f.lastQuery }

// SetSource replaces the source slice and re-applies the current query.
func (f *FilterList[T]) SetSource(items []T) *FilterList[T] {
	f.source = items
	f.apply()
	return f
}

// SourceIndex maps a projected index back to its index in the source slice,
// or -1 if out of bounds.
func (f *FilterList[T]) SourceIndex(projected int) int {
	if projected < 0 || projected >= len(f.indices) {
		return -1
	}
	return f.indices[projected]
}

// resetProjection restores the unfiltered source in original order.
func (f *FilterList[T]) resetProjection() {
	f.indices = f.indices[:0]
	for i := range f.source {
		f.indices = append(f.indices, i)
	}
	f.SetItems(f.source)
}
