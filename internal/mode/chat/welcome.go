// ABOUTME: WelcomeModel is a Bubble Tea leaf that renders the startup banner
// ABOUTME: Shows version, knowledge status, and keyboard shortcuts

package chat

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/campusbot-go/pkg/tui/width"
)

// WelcomeModel renders the startup banner with version info and
// keyboard shortcuts.
type WelcomeModel struct {
	version  string
	sections int
	width    int
}

func NewWelcomeModel(version string, knowledgeSections int) WelcomeModel {
	return WelcomeModel{version: version, sections: knowledgeSections}
}

func (m WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
	}
	return m, nil
}

func (m WelcomeModel) View() string {
	s := Styles()
	ver := m.version
	if ver == "" {
		ver = "dev"
	}

	var b strings.Builder
	b.WriteString(s.Accent.Render("  ╭─────────────╮") + "\n")
	b.WriteString(s.Accent.Render("  │  ") + s.Bold.Render("campusbot") + s.Accent.Render("  │") + "\n")
	b.WriteString(s.Accent.Render("  ╰─────────────╯") + "\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", s.Bold.Render("MPTI assistant"), s.Dim.Render("v"+ver)))
	b.WriteString(fmt.Sprintf("  %s\n", s.Dim.Render(fmt.Sprintf("%d knowledge sections loaded", m.sections))))
	b.WriteString("\n")
	b.WriteString("  Ask about programs, admissions, fees, or the TACT program.\n")
	b.WriteString("\n")

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"enter", "send"},
		{"up/down", "recall history"},
		{"ctrl+s", "pick a suggestion"},
		{"ctrl+l", "clear screen"},
		{"ctrl+c", "exit"},
	}

	const keyPad = 12
	for _, sc := range shortcuts {
		padded := sc.key
		for len(padded) < keyPad {
			padded += " "
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", s.Bold.Render(padded), s.Dim.Render(sc.desc)))
	}

	result := b.String()
	if m.width > 0 && m.width < 40 {
		lines := strings.Split(result, "\n")
		for i, line := range lines {
			if width.VisibleWidth(line) > m.width {
				lines[i] = width.TruncateToWidth(line, m.width)
			}
		}
		return strings.Join(lines, "\n")
	}
	return result
}
