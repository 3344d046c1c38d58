package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kungfusheep/vlist"
)

// filterdemo types a query against a large wordlist-style dataset; the
// filtered projection stays windowed no matter how many rows match.

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type model struct {
	list  *vlist.FilterList[string]
	query string
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
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "backspace":
			if len(m.query) > 0 {
				m.query = m.query[:len(m.query)-1]
				m.list.SetQuery(m.query)
			}
		case "down", "ctrl+n":
			m.list.ScrollBy(1)
		case "up", "ctrl+p":
			m.list.ScrollBy(-1)
		default:
			if msg.Type == tea.KeyRunes || msg.String() == " " {
				m.query += msg.String()
				m.list.SetQuery(m.query)
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}
	prompt := promptStyle.Render("> ") + m.query +
		countStyle.Render(fmt.Sprintf("  %d/%d", m.list.Len(), 100_000))
	return prompt + "\n" + m.list.View()
}

func main() {
	words := make([]string, 100_000)
	for i := range words {
		words[i] = fmt.Sprintf("%s/%s-%04d.go",
			[]string{"internal", "pkg", "cmd", "api"}[i%4],
			[]string{"server", "client", "parser", "codec", "store", "proxy"}[i%6],
			i)
	}

	list, err := vlist.NewFilterList(words,
		func(s string) string { return s },
		func(s string, _ int) string { return "  " + s },
		vlist.WithItemHeight(1),
		vlist.WithContainerHeight(24),
		vlist.WithOverscan(5),
	)
	if err != nil {
		log.Fatal(err)
	}
	list.Scrollbar(true)

	if _, err := tea.NewProgram(model{list: list}, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
