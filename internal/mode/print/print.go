// ABOUTME: One-shot ask mode with text and JSON formatters
// ABOUTME: Runs a single question through the pipeline and prints the response

package print

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/mauromedda/campusbot-go/internal/bot"
	"github.com/mauromedda/campusbot-go/pkg/api"
)

const defaultWidth = 80

// Config configures ask mode execution.
type Config struct {
	OutputFormat string // "text" (default) or "json"
	SessionID    string // continue an existing conversation
	Out          io.Writer
	In           io.Reader
}

// Run sends one question through the pipeline and writes the response.
// An empty question reads from stdin instead.
func Run(ctx context.Context, b *bot.Bot, cfg Config, question string) error {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.In == nil {
		cfg.In = os.Stdin
	}

	if question == "" {
		data, err := io.ReadAll(cfg.In)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		question = string(data)
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return fmt.Errorf("no question given")
	}

	resp := b.Process(ctx, question, cfg.SessionID)

	switch cfg.OutputFormat {
	case "json":
		return writeJSON(cfg.Out, resp)
	default:
		return writeText(cfg.Out, resp)
	}
}

func writeJSON(w io.Writer, resp api.ChatResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeText renders the reply as terminal markdown when stdout is a
// terminal, with suggestions and links appended as plain lines.
func writeText(w io.Writer, resp api.ChatResponse) error {
	body := resp.Reply
	if rendered, ok := renderMarkdown(w, body); ok {
		body = rendered
	}

	if _, err := fmt.Fprintln(w, body); err != nil {
		return err
	}

	if len(resp.Suggestions) > 0 {
		fmt.Fprintln(w)
		for _, s := range resp.Suggestions {
			fmt.Fprintf(w, "  * %s\n", s)
		}
	}
	for _, cta := range resp.CTAs {
		fmt.Fprintf(w, "  -> %s: %s\n", cta.Text, cta.URL)
	}
	return nil
}

// renderMarkdown styles md for the terminal. Returns ok=false when the
// writer is not a terminal or rendering fails, letting the caller fall
// back to raw text.
func renderMarkdown(w io.Writer, md string) (string, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", false
	}

	wd, _, err := term.GetSize(int(f.Fd()))
	if err != nil || wd <= 0 {
		wd = defaultWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wd),
	)
	if err != nil {
		return "", false
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return "", false
	}
	return strings.TrimRight(rendered, "\n "), true
}
