// ABOUTME: UserMsgModel is a Bubble Tea leaf that renders a sent message
// ABOUTME: Highlighted background with a bold "you" prefix

package chat

import (
	tea "github.com/charmbracelet/bubbletea"
)

// UserMsgModel displays the user's message with a highlighted
// background and a bold prefix.
type UserMsgModel struct {
	text  string
	width int
}

func NewUserMsgModel(text string) UserMsgModel {
	return UserMsgModel{text: text}
}

func (m UserMsgModel) Init() tea.Cmd {
	return nil
}

func (m UserMsgModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
	}
	return m, nil
}

func (m UserMsgModel) View() string {
	s := Styles()
	line := s.UserBg.Render(s.Bold.Render(" you ") + m.text + " ")
	return "\n" + line
}
