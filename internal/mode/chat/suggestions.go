// ABOUTME: SuggestModel is a Bubble Tea overlay for picking a follow-up suggestion
// ABOUTME: Filterable with fuzzy.Find while typing; enter picks, esc dismisses

package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/campusbot-go/pkg/tui/fuzzy"
	"github.com/mauromedda/campusbot-go/pkg/tui/width"
)

// SuggestModel is a filterable list of the latest follow-up
// suggestions. Implements tea.Model with value semantics.
type SuggestModel struct {
	items    []string
	visible  []string
	selected int
	filter   string
	width    int
}

func NewSuggestModel(items []string) SuggestModel {
	m := SuggestModel{items: items}
	m.applyFilter()
	return m
}

func (m SuggestModel) Init() tea.Cmd {
	return nil
}

func (m SuggestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			if m.selected > 0 {
				m.selected--
			}
		case tea.KeyDown:
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
		case tea.KeyEnter:
			if len(m.visible) > 0 {
				pick := m.visible[m.selected]
				return m, func() tea.Msg { return suggestionPickedMsg{Text: pick} }
			}
			return m, func() tea.Msg { return suggestionsDismissedMsg{} }
		case tea.KeyEscape:
			return m, func() tea.Msg { return suggestionsDismissedMsg{} }
		case tea.KeyBackspace:
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.selected = 0
				m.applyFilter()
			}
		case tea.KeyRunes:
			m.filter += string(msg.Runes)
			m.selected = 0
			m.applyFilter()
		case tea.KeySpace:
			m.filter += " "
			m.selected = 0
			m.applyFilter()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m SuggestModel) View() string {
	s := Styles()
	var b strings.Builder

	header := "suggestions"
	if m.filter != "" {
		header += ": " + m.filter
	}
	b.WriteString(s.Bold.Render(header) + "\n")

	if len(m.visible) == 0 {
		b.WriteString(s.Dim.Render("  no matches"))
		return b.String()
	}

	for i, item := range m.visible {
		line := "  " + item
		if m.width > 0 {
			line = width.TruncateToWidth(line, m.width)
		}
		if i == m.selected {
			line = s.Selection.Render(line)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}

func (m *SuggestModel) applyFilter() {
	if m.filter == "" {
		m.visible = append([]string(nil), m.items...)
		return
	}
	matches := fuzzy.Find(m.filter, m.items)
	m.visible = make([]string, len(matches))
	for i, match := range matches {
		m.visible[i] = m.items[match.Index]
	}
}
