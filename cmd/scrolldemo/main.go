package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kungfusheep/vlist"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = map[string]lipgloss.Style{
		"active":  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"pending": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"done":    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

type row struct {
	id     int
	name   string
	status string
}

type model struct {
	list  *vlist.VirtualList[row]
	ready bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetViewport(msg.Width, msg.Height-2)
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			m.list.ScrollBy(1)
		case "k", "up":
			m.list.ScrollBy(-1)
		case "d":
			m.list.ScrollBy(m.list.Scroller().ViewportHeight() / 2)
		case "u":
			m.list.ScrollBy(-m.list.Scroller().ViewportHeight() / 2)
		case "f", "pgdown":
			m.list.ScrollBy(m.list.Scroller().ViewportHeight())
		case "b", "pgup":
			m.list.ScrollBy(-m.list.Scroller().ViewportHeight())
		case "g":
			m.list.ScrollTo(0)
		case "G":
			m.list.Scroller().ScrollToBottom()
		}
	}
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}
	rng := m.list.VisibleRange()
	status := fmt.Sprintf("rows %d-%d of %d  offset %d/%d  j/k d/u f/b g/G  q:quit",
		rng.Start, rng.End, m.list.Len(),
		m.list.Scroller().ScrollOffset(), m.list.Scroller().MaxScroll())
	return headerStyle.Render("scrolldemo — 100k fixed-height rows") + "\n" +
		m.list.View() + "\n" + status
}

func main() {
	rows := make([]row, 100_000)
	for i := range rows {
		rows[i] = row{
			id:     i,
			name:   fmt.Sprintf("item %d with some longer text", i),
			status: []string{"active", "pending", "done"}[i%3],
		}
	}

	list, err := vlist.NewVirtualList(rows,
		func(r row, _ int) string {
			return fmt.Sprintf("%s  %-44s %s",
				idStyle.Render(fmt.Sprintf("%6d", r.id)),
				r.name,
				statusStyle[r.status].Render(r.status))
		},
		vlist.WithItemHeight(1),
		vlist.WithContainerHeight(24),
		vlist.WithOverscan(10),
	)
	if err != nil {
		log.Fatal(err)
	}
	list.Scrollbar(true)

	if _, err := tea.NewProgram(model{list: list}, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
