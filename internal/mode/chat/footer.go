// ABOUTME: FooterModel is a Bubble Tea leaf that renders a one-line status bar
// ABOUTME: Shows session id, last intent, reply source, and knowledge status

package chat

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/campusbot-go/pkg/tui/width"
)

// FooterModel renders the status bar at the bottom of the terminal.
type FooterModel struct {
	sessionID    string
	intent       string
	confidence   float64
	source       string
	scrapeStatus string
	thinking     bool
	width        int
}

func NewFooterModel() FooterModel {
	return FooterModel{}
}

func (m FooterModel) Init() tea.Cmd {
	return nil
}

func (m FooterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
	}
	return m, nil
}

// WithSession returns a FooterModel with the session id set.
func (m FooterModel) WithSession(id string) FooterModel {
	m.sessionID = id
	return m
}

// WithIntent returns a FooterModel with the last decision set.
func (m FooterModel) WithIntent(intent string, confidence float64, source string) FooterModel {
	m.intent = intent
	m.confidence = confidence
	m.source = source
	return m
}

// WithScrapeStatus returns a FooterModel with the knowledge status set.
func (m FooterModel) WithScrapeStatus(status string) FooterModel {
	m.scrapeStatus = status
	return m
}

// WithThinking returns a FooterModel with the busy indicator toggled.
func (m FooterModel) WithThinking(on bool) FooterModel {
	m.thinking = on
	return m
}

func (m FooterModel) View() string {
	s := Styles()

	var parts []string
	if m.sessionID != "" {
		parts = append(parts, s.FooterSession.Render("session "+shortID(m.sessionID)))
	}
	if m.intent != "" {
		parts = append(parts, s.FooterIntent.Render(fmt.Sprintf("%s %.0f%%", m.intent, m.confidence*100)))
	}
	if m.source != "" {
		parts = append(parts, s.FooterSource.Render(m.source))
	}
	if m.scrapeStatus != "" {
		parts = append(parts, s.Dim.Render("knowledge: "+m.scrapeStatus))
	}
	if m.thinking {
		parts = append(parts, s.Warning.Render("thinking..."))
	}

	line := strings.Join(parts, s.Dim.Render("  "))
	if m.width > 0 && width.VisibleWidth(line) > m.width {
		line = width.TruncateToWidth(line, m.width)
	}
	return line
}

// shortID trims a UUID to its first group for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
