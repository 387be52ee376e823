// ABOUTME: Markdown renderer wrapper around glamour for terminal output
// ABOUTME: Caches rendered results keyed by content hash + width

package chat

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer wraps glamour to render markdown with caching.
// Replies are static once received, so cache entries never need
// invalidation except on resize, which the width key covers.
type MarkdownRenderer struct {
	cache map[string]string
}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{cache: make(map[string]string)}
}

// Render returns the terminal-styled rendering of the given markdown.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}

	key := cacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	rendered = strings.TrimRight(rendered, "\n ")

	r.cache[key] = rendered
	return rendered
}

func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
