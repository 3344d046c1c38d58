package vlist

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	t.Run("empty matches everything", func(t *testing.T) {
		t.Parallel()
		q := ParseQuery("  ")
		assert.True(t, q.Empty())
		_, ok := q.Score("anything")
		assert.True(t, ok)
	})

	t.Run("fuzzy subsequence", func(t *testing.T) {
		t.Parallel()
		q := ParseQuery("mngo")
		_, ok := q.Score("main.go")
		assert.True(t, ok)
		_, ok = q.Score("readme.md")
		assert.False(t, ok)
	})

	t.Run("exact substring", func(t *testing.T) {
		t.Parallel()
		q := ParseQuery("'main")
		_, ok := q.Score("main.go")
		assert.True(t, ok)
		_, ok = q.Score("mxaxixn.go")
		assert.False(t, ok)
	})

	t.Run("prefix and suffix anchors", func(t *testing.T) {
		t.Parallel()
		_, ok := ParseQuery("^main").Score("main.go")
		assert.True(t, ok)
		_, ok = ParseQuery("^main").Score("domain.go")
		assert.False(t, ok)
		_, ok = ParseQuery(".go$").Score("main.go")
		assert.True(t, ok)
		_, ok = ParseQuery(".go$").Score("main.gone")
		assert.False(t, ok)
	})

	t.Run("negation", func(t *testing.T) {
		t.Parallel()
		q := ParseQuery("!test")
		_, ok := q.Score("main.go")
		assert.True(t, ok)
		_, ok = q.Score("main_test.go")
		assert.False(t, ok)
	})

	t.Run("AND of terms", func(t *testing.T) {
		t.Parallel()
		q := ParseQuery("main !test")
		_, ok := q.Score("main.go")
		assert.True(t, ok)
		_, ok = q.Score("main_test.go")
		assert.False(t, ok)
	})

	t.Run("OR of alternatives", func(t *testing.T) {
		t.Parallel()
		q := ParseQuery("^main | ^util")
		_, ok := q.Score("main.go")
		assert.True(t, ok)
		_, ok = q.Score("util.go")
		assert.True(t, ok)
		_, ok = q.Score("parser.go")
		assert.False(t, ok)
	})

	t.Run("smart case", func(t *testing.T) {
		t.Parallel()
		_, ok := ParseQuery("readme").Score("README.md")
		assert.True(t, ok)
		_, ok = ParseQuery("Readme").Score("readme.md")
		assert.False(t, ok)
	})
}

// A parsed Query is shared freely, e.g. scoring a large source concurrently,
// so Score must not share scratch state between goroutines.
func TestQueryScoreConcurrent(t *testing.T) {
	t.Parallel()

	q := ParseQuery("mngo 'go | ^cmd !vendor")
	candidates := make([]string, 256)
	for i := range candidates {
		candidates[i] = fmt.Sprintf("cmd/tool%d/main.go", i)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, c := range candidates {
				_, ok := q.Score(c)
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}

func TestFilterList(t *testing.T) {
	t.Parallel()

	files := []string{"main.go", "main_test.go", "parser.go", "parser_test.go", "README.md"}
	newList := func(t *testing.T) *FilterList[string] {
		t.Helper()
		f, err := NewFilterList(files,
			func(s string) string { return s },
			func(s string, _ int) string { return s },
			WithItemHeight(1), WithContainerHeight(10))
		require.NoError(t, err)
		return f
	}

	t.Run("unfiltered shows the full source in order", func(t *testing.T) {
		t.Parallel()
		f := newList(t)
		assert.Equal(t, 5, f.Len())
		assert.Equal(t, "main.go", lines(f.View())[0])
		assert.Equal(t, 0, f.SourceIndex(0))
	})

	t.Run("query narrows the projection", func(t *testing.T) {
		t.Parallel()
		f := newList(t)
		f.SetQuery("parser")
		assert.Equal(t, 2, f.Len())
		for _, item := range f.Items() {
			assert.Contains(t, item, "parser")
		}
	})

	t.Run("source indices survive the projection", func(t *testing.T) {
		t.Parallel()
		f := newList(t)
		f.SetQuery("'_test")
		require.Equal(t, 2, f.Len())
		for i, item := range f.Items() {
			assert.Equal(t, item, files[f.SourceIndex(i)])
		}
		assert.Equal(t, -1, f.SourceIndex(99))
	})

	t.Run("clearing the query restores everything", func(t *testing.T) {
		t.Parallel()
		f := newList(t)
		f.SetQuery("nomatchforthis")
		assert.Equal(t, 0, f.Len())
		assert.Equal(t, "", f.View())

		f.SetQuery("")
		assert.Equal(t, 5, f.Len())
	})

	t.Run("filtering resets the scroll position", func(t *testing.T) {
		t.Parallel()
		many := make([]string, 1000)
		for i := range many {
			many[i] = strings.Repeat("x", i%7+1)
		}
		f, err := NewFilterList(many,
			func(s string) string { return s },
			func(s string, _ int) string { return s },
			WithItemHeight(1), WithContainerHeight(10))
		require.NoError(t, err)

		f.ScrollTo(500)
		f.SetQuery("xxxx")
		assert.Equal(t, 0, f.Scroller().ScrollOffset())
	})

	t.Run("replacing the source re-applies the query", func(t *testing.T) {
		t.Parallel()
		f := newList(t)
		f.SetQuery("'.go")
		assert.Equal(t, 4, f.Len())

		f.SetSource([]string{"one.go", "two.md"})
		assert.Equal(t, 1, f.Len())
		assert.Equal(t, "one.go", f.Items()[0])
	})
}
