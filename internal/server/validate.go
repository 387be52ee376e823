// ABOUTME: Request message validation and sanitization ahead of the pipeline
// ABOUTME: Enforces the length bound and strips markup-significant characters

package server

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyMessage is returned for missing or whitespace-only messages.
var ErrEmptyMessage = errors.New("message is required")

// stripped removes characters that could smuggle markup or quoting
// into stored or re-rendered text.
const stripped = `<>"'\`

// ValidateMessage trims, bounds, and sanitizes a chat message. The
// returned string is what the pipeline sees.
func ValidateMessage(message string, maxLen int) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}
	if len(message) > maxLen {
		return "", fmt.Errorf("message too long (max %d characters)", maxLen)
	}

	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(stripped, r) {
			return -1
		}
		return r
	}, message)

	if strings.TrimSpace(clean) == "" {
		return "", ErrEmptyMessage
	}
	return clean, nil
}
