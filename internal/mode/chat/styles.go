// ABOUTME: Lipgloss palette for the chat TUI
// ABOUTME: One fixed set of styles; built once and shared by all views

package chat

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// chatStyles holds the styles used across the chat views.
type chatStyles struct {
	Accent    lipgloss.Style
	Bold      lipgloss.Style
	Dim       lipgloss.Style
	Info      lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Border    lipgloss.Style
	Selection lipgloss.Style
	UserBg    lipgloss.Style

	FooterSession lipgloss.Style
	FooterIntent  lipgloss.Style
	FooterSource  lipgloss.Style
}

var (
	stylesOnce sync.Once
	styles     chatStyles
)

// Styles returns the shared palette, building it on first use.
func Styles() chatStyles {
	stylesOnce.Do(func() {
		styles = chatStyles{
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			Bold:      lipgloss.NewStyle().Bold(true),
			Dim:       lipgloss.NewStyle().Faint(true),
			Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			Border:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Selection: lipgloss.NewStyle().Reverse(true),
			UserBg:    lipgloss.NewStyle().Background(lipgloss.Color("236")),

			FooterSession: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			FooterIntent:  lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
			FooterSource:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		}
	})
	return styles
}
