package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/kungfusheep/vlist"
)

// stress is a headless throughput run: sweep scroll positions across a
// million-row list and report how fast full frames come out.

func main() {
	width, height := 120, 50
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	const n = 1_000_000
	rows := make([]string, n)
	for i := range rows {
		rows[i] = fmt.Sprintf("%8d  row payload with a reasonable amount of text %d", i, i*31)
	}

	list, err := vlist.NewVirtualList(rows,
		func(s string, _ int) string { return s },
		vlist.WithItemHeight(1),
		vlist.WithContainerHeight(height),
		vlist.WithOverscan(10),
	)
	if err != nil {
		log.Fatal(err)
	}
	list.SetWidth(width).Scrollbar(true)

	const frames = 10_000
	maxScroll := list.Scroller().MaxScroll()

	start := time.Now()
	var bytes int
	for i := 0; i < frames; i++ {
		list.ScrollTo((i * 631) % maxScroll)
		bytes += len(list.View())
	}
	elapsed := time.Since(start)

	fmt.Printf("%d rows, %dx%d viewport\n", n, width, height)
	fmt.Printf("%d frames in %v (%.0f fps, %.1f MB emitted)\n",
		frames, elapsed,
		float64(frames)/elapsed.Seconds(),
		float64(bytes)/1e6)
}
