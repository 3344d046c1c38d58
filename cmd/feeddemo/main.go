package main

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kungfusheep/vlist"
)

// feeddemo is an infinite feed: items have variable heights discovered only
// as they render, and crossing the end-reached threshold loads another page.

const pageSize = 50

var (
	authorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

type post struct {
	author string
	body   string
}

func makePage(start int) []post {
	posts := make([]post, pageSize)
	for i := range posts {
		n := start + i
		sentences := n%4 + 1
		posts[i] = post{
			author: fmt.Sprintf("user%d", n%17),
			body: strings.TrimSpace(strings.Repeat(
				fmt.Sprintf("Post %d body text that wraps onto its own line. ", n), sentences)),
		}
	}
	return posts
}

type loadMoreMsg struct{}

type model struct {
	list  *vlist.VirtualList[post]
	loads chan struct{}
	pages int
	ready bool
}

func (m model) Init() tea.Cmd { return m.waitForLoad }

// waitForLoad turns end-reached callbacks into bubbletea messages.
func (m model) waitForLoad() tea.Msg {
	<-m.loads
	return loadMoreMsg{}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetViewport(msg.Width, msg.Height-2)
		m.ready = true

	case loadMoreMsg:
		m.list.AppendItems(makePage(m.pages * pageSize)...)
		m.pages++
		return m, m.waitForLoad

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			m.list.ScrollBy(1)
		case "k", "up":
			m.list.ScrollBy(-1)
		case "f", "pgdown":
			m.list.ScrollBy(m.list.Scroller().ViewportHeight())
		case "b", "pgup":
			m.list.ScrollBy(-m.list.Scroller().ViewportHeight())
		case "g":
			m.list.ScrollTo(0)
		}
	}
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}
	status := fmt.Sprintf("%d posts (%d pages)  height ~%d rows  j/k f/b g  q:quit",
		m.list.Len(), m.pages, m.list.TotalHeight())
	return m.list.View() + "\n" + metaStyle.Render(status)
}

func main() {
	loads := make(chan struct{}, 1)

	list, err := vlist.NewVirtualList(makePage(0),
		func(p post, i int) string {
			return authorStyle.Render("@"+p.author) +
				metaStyle.Render(fmt.Sprintf(" · #%d", i)) + "\n" +
				bodyStyle.Render(p.body)
		},
		vlist.WithEstimatedItemHeight(2),
		vlist.WithContainerHeight(24),
		vlist.WithOverscan(3),
		vlist.WithEndReachedThreshold(0.8),
		vlist.WithOnEndReached(func() {
			select {
			case loads <- struct{}{}:
			default:
			}
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
	list.Scrollbar(true)

	m := model{list: list, loads: loads, pages: 1}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
