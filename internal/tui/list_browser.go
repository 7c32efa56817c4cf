package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const maxTitleWidth = 48

// Custom list item delegate for rendering books
type bookDelegate struct{}

func (d bookDelegate) Height() int  { return 1 }
func (d bookDelegate) Spacing() int { return 0 }
func (d bookDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d bookDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bookItem, ok := item.(BookItem)
	if !ok {
		return
	}

	var s strings.Builder

	star := " "
	if bookItem.Bookmarked {
		star = StyleBookmark.Render("★")
	}

	title := fmt.Sprintf("%-*s", maxTitleWidth, truncateText(bookItem.Book.Title, maxTitleWidth))
	author := StyleMeta.Render("by " + bookItem.Book.Author)

	tagStr := ""
	if cat := bookItem.Book.Category; cat != "" {
		tagStr = " " + StyleTag.Render("["+cat+"]")
	}

	meta := ""
	if ms := metaSummary(bookItem.Book); ms != "" {
		meta = "  " + StyleMeta.Render(ms)
	}

	if index == m.Index() {
		s.WriteString(StyleHighlight.Render("› " + star + " " + title + " " + author + tagStr + meta))
	} else {
		s.WriteString("  " + star + " " + StyleNormal.Render(title) + " " + author + tagStr + meta)
	}

	_, _ = fmt.Fprint(w, s.String())
}

// keyMap defines keyboard shortcuts
type keyMap struct {
	quit     key.Binding
	enter    key.Binding
	open     key.Binding
	bookmark key.Binding
	filter   key.Binding
}

var keys = keyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	bookmark: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "bookmark"),
	),
	filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
}

// BrowserAction represents an action requested from the browser
type BrowserAction string

const (
	ActionNone           BrowserAction = ""
	ActionShowDetails    BrowserAction = "details"
	ActionOpen           BrowserAction = "open"
	ActionToggleBookmark BrowserAction = "bookmark"
)

// BrowserResult holds the result of a browser session
type BrowserResult struct {
	Action   BrowserAction
	BookItem *BookItem
}

// model holds the state for the list browser
type model struct {
	list     list.Model
	quitting bool
	action   BrowserAction
	selected *BookItem
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't handle keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, keys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.enter):
			if item, ok := m.list.SelectedItem().(BookItem); ok {
				m.action = ActionShowDetails
				m.selected = &item
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.open):
			if item, ok := m.list.SelectedItem().(BookItem); ok {
				m.action = ActionOpen
				m.selected = &item
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.bookmark):
			if item, ok := m.list.SelectedItem().(BookItem); ok {
				m.action = ActionToggleBookmark
				m.selected = &item
				m.quitting = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	return StyleBorder.Render(m.list.View())
}

// RunListBrowser launches an interactive browser over query results.
// Returns the requested action and the selected book, if any.
func RunListBrowser(title string, books []BookItem) (*BrowserResult, error) {
	if len(books) == 0 {
		return nil, fmt.Errorf("no books to display")
	}

	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = b
	}

	delegate := bookDelegate{}
	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.open, keys.bookmark}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.open, keys.bookmark, keys.enter}
	}

	m := model{list: l}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running TUI: %w", err)
	}

	if fm, ok := finalModel.(model); ok {
		return &BrowserResult{
			Action:   fm.action,
			BookItem: fm.selected,
		}, nil
	}

	return &BrowserResult{Action: ActionNone}, nil
}
