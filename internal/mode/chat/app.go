// ABOUTME: Root AppModel wiring all sub-models for the chat TUI
// ABOUTME: Routes keys, runs the pipeline per submitted message, manages the overlay

package chat

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/campusbot-go/internal/bot"
)

// AppDeps bundles the dependencies for the chat app.
type AppDeps struct {
	Bot     *bot.Bot
	Version string
}

// AppModel is the root Bubble Tea model for the chat TUI.
type AppModel struct {
	// State
	sessionID     string
	waiting       bool
	width, height int

	// Sub-models
	editor EditorModel
	footer FooterModel

	// Content: ordered list of display models
	content []tea.Model

	// Overlay (nil = no overlay)
	overlay tea.Model

	// Last reply's suggestions, for the ctrl+s overlay
	suggestions []string

	renderer *MarkdownRenderer
	deps     AppDeps

	cachedSep string
}

// NewAppModel creates an AppModel wired with the given dependencies.
func NewAppModel(deps AppDeps) AppModel {
	editor := NewEditorModel().
		SetFocused(true).
		SetPrompt("❯ ").
		SetPlaceholder("Ask about programs, fees, or admissions")

	health := deps.Bot.Health()
	footer := NewFooterModel().WithScrapeStatus(health.ScrapeStatus)
	welcome := NewWelcomeModel(deps.Version, health.KnowledgeSections)

	return AppModel{
		editor:   editor,
		footer:   footer,
		content:  []tea.Model{welcome},
		renderer: NewMarkdownRenderer(),
		deps:     deps,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cachedSep = strings.Repeat("─", msg.Width)
		m = m.propagateSize(msg)
		return m, nil

	case suggestionPickedMsg:
		m.overlay = nil
		m.editor = m.editor.SetFocused(true).SetText(msg.Text)
		return m, nil

	case suggestionsDismissedMsg:
		m.overlay = nil
		m.editor = m.editor.SetFocused(true)
		return m, nil

	case botReplyMsg:
		m.waiting = false
		m.sessionID = msg.Resp.SessionID
		m.suggestions = msg.Resp.Suggestions

		bm := NewBotMsgModel(msg.Resp, m.renderer)
		bm.width = m.width
		m.content = append(m.content, bm)

		m.footer = m.footer.
			WithSession(msg.Resp.SessionID).
			WithIntent(msg.Resp.Intent, msg.Resp.Confidence, msg.Resp.Source).
			WithScrapeStatus(m.deps.Bot.Health().ScrapeStatus).
			WithThinking(false)
		return m, nil

	case tea.KeyMsg:
		if m.overlay != nil {
			updated, cmd := m.overlay.Update(msg)
			m.overlay = updated
			return m, cmd
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// View renders the full TUI layout.
func (m AppModel) View() string {
	var sections []string
	for _, c := range m.content {
		sections = append(sections, c.View())
	}

	s := Styles()
	sep := m.cachedSep
	sections = append(sections,
		s.Border.Render(sep),
		m.editor.View(),
		s.Border.Render(sep),
		m.footer.View(),
	)

	main := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.overlay != nil {
		return main + "\n" + m.overlay.View()
	}
	return main
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		return m, tea.Quit

	case "ctrl+l":
		m.content = nil
		return m, nil

	case "ctrl+s":
		if len(m.suggestions) > 0 {
			sm := NewSuggestModel(m.suggestions)
			sm.width = m.width
			m.overlay = sm
		}
		return m, nil

	case "enter":
		if !m.waiting && !m.editor.IsEmpty() {
			return m.submit()
		}
		return m, nil

	default:
		updated, cmd := m.editor.Update(msg)
		m.editor = updated.(EditorModel)
		return m, cmd
	}
}

func (m AppModel) submit() (AppModel, tea.Cmd) {
	text := strings.TrimSpace(m.editor.Text())
	m.editor = m.editor.Commit()
	if text == "" {
		return m, nil
	}

	um := NewUserMsgModel(text)
	um.width = m.width
	m.content = append(m.content, um)

	m.waiting = true
	m.footer = m.footer.WithThinking(true)

	b := m.deps.Bot
	sessionID := m.sessionID
	return m, func() tea.Msg {
		resp := b.Process(context.Background(), text, sessionID)
		return botReplyMsg{Resp: resp}
	}
}

func (m AppModel) propagateSize(msg tea.WindowSizeMsg) AppModel {
	for i := range m.content {
		updated, _ := m.content[i].Update(msg)
		m.content[i] = updated
	}
	updated, _ := m.editor.Update(msg)
	m.editor = updated.(EditorModel)
	fUpdated, _ := m.footer.Update(msg)
	m.footer = fUpdated.(FooterModel)
	if m.overlay != nil {
		oUpdated, _ := m.overlay.Update(msg)
		m.overlay = oUpdated
	}
	return m
}
