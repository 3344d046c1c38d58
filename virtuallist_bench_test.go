package vlist

import (
	"fmt"
	"testing"
)

// Benchmark continuous scrolling - the real test
func BenchmarkVirtualListScroll(b *testing.B) {
	type row struct {
		id     int
		name   string
		status string
	}

	makeRows := func(n int) []row {
		rows := make([]row, n)
		for i := range rows {
			rows[i] = row{
				id:     i,
				name:   fmt.Sprintf("item %d with some longer text", i),
				status: []string{"active", "pending", "done"}[i%3],
			}
		}
		return rows
	}

	render := func(r row, _ int) string {
		return fmt.Sprintf("%8d  %-40s %s", r.id, r.name, r.status)
	}

	sizes := []int{1000, 10000, 100000, 1000000}

	for _, size := range sizes {
		rows := makeRows(size)

		b.Run(fmt.Sprintf("Fixed_%d", size), func(b *testing.B) {
			v, err := NewVirtualList(rows, render,
				WithItemHeight(1), WithContainerHeight(50), WithOverscan(5))
			if err != nil {
				b.Fatal(err)
			}
			v.SetWidth(120).Scrollbar(true)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v.ScrollTo((i * 7) % (size - 50))
				_ = v.View()
			}
		})
	}
}

func BenchmarkDynamicMeasure(b *testing.B) {
	const size = 100000

	items := make([]string, size)
	for i := range items {
		items[i] = fmt.Sprintf("row %d", i)
	}
	render := func(s string, i int) string {
		if i%5 == 0 {
			return s + "\nwrapped continuation"
		}
		return s
	}

	b.Run("cold scroll sweep", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			v, err := NewVirtualList(items, render,
				WithEstimatedItemHeight(1), WithContainerHeight(50))
			if err != nil {
				b.Fatal(err)
			}
			b.StartTimer()

			for offset := 0; offset < 20000; offset += 37 {
				v.ScrollTo(offset)
				_ = v.View()
			}
		}
	})

	b.Run("offset lookup after deep measurement", func(b *testing.B) {
		s, err := NewScroller(size,
			WithEstimatedItemHeight(1), WithContainerHeight(50))
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < size; i += 3 {
			s.Measure(i, 2)
		}

		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = s.IndexAt((i * 997) % s.TotalHeight())
		}
	})
}
