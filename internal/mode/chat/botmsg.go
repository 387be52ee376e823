// ABOUTME: BotMsgModel is a Bubble Tea leaf that renders one pipeline response
// ABOUTME: Glamour-rendered reply body plus intent line, suggestions, and CTA links

package chat

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/campusbot-go/pkg/api"
)

// BotMsgModel renders a completed chat response. The reply body is
// markdown and goes through glamour; the intent line and suggestion
// list render as plain styled text.
type BotMsgModel struct {
	resp     api.ChatResponse
	renderer *MarkdownRenderer
	width    int
}

func NewBotMsgModel(resp api.ChatResponse, renderer *MarkdownRenderer) *BotMsgModel {
	return &BotMsgModel{resp: resp, renderer: renderer}
}

func (m *BotMsgModel) Init() tea.Cmd {
	return nil
}

func (m *BotMsgModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
	}
	return m, nil
}

func (m *BotMsgModel) View() string {
	s := Styles()
	w := m.width
	if w <= 0 {
		w = 80
	}

	var b strings.Builder
	b.WriteString(m.renderer.Render(m.resp.Reply, w-2))
	b.WriteString("\n")

	intentLine := fmt.Sprintf("intent: %s (%.0f%%)", m.resp.Intent, m.resp.Confidence*100)
	if m.resp.UsedFallback {
		intentLine += " [fallback]"
	}
	b.WriteString("\n" + s.Dim.Render(intentLine))

	if len(m.resp.Suggestions) > 0 {
		b.WriteString("\n" + s.Info.Render("Try: "+strings.Join(m.resp.Suggestions, " · ")))
		b.WriteString("\n" + s.Dim.Render("(ctrl+s to pick a suggestion)"))
	}

	return b.String() + "\n"
}

// Suggestions returns the follow-up texts attached to this response.
func (m *BotMsgModel) Suggestions() []string {
	return m.resp.Suggestions
}
