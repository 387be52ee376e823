// ABOUTME: Custom tea.Msg types for the chat TUI
// ABOUTME: Bot replies and suggestion overlay results

package chat

import "github.com/mauromedda/campusbot-go/pkg/api"

// botReplyMsg carries one completed pipeline response. Sent by the
// command started in submit.
type botReplyMsg struct {
	Resp api.ChatResponse
}

// suggestionPickedMsg carries the suggestion the user chose from the
// overlay.
type suggestionPickedMsg struct {
	Text string
}

// suggestionsDismissedMsg closes the overlay without a pick.
type suggestionsDismissedMsg struct{}
