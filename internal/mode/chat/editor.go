// ABOUTME: EditorModel is a single-line rune editor with a kill ring and input history
// ABOUTME: Value semantics; arrow keys recall previously sent messages

package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/campusbot-go/pkg/tui/width"
)

const killRingSize = 32

// killRing is a minimal Emacs-style ring buffer for killed (cut) text.
type killRing struct {
	entries []string
	pos     int
	size    int
}

func newKillRing() *killRing {
	return &killRing{
		entries: make([]string, 0, killRingSize),
		size:    killRingSize,
	}
}

func (kr *killRing) push(text string) {
	if len(kr.entries) < kr.size {
		kr.entries = append(kr.entries, text)
	} else {
		kr.entries[kr.pos] = text
	}
	kr.pos = (kr.pos + 1) % kr.size
}

func (kr *killRing) yank() string {
	if len(kr.entries) == 0 {
		return ""
	}
	idx := (kr.pos - 1 + len(kr.entries)) % len(kr.entries)
	return kr.entries[idx]
}

// CursorMarker is the visible block cursor character.
const CursorMarker = "█"

const historyDepth = 50

// EditorModel is a single-line chat input with kill ring, message
// history recall, and cursor tracking. Implements tea.Model; the kill
// ring and history are pointer types shared across value copies, the
// same pattern bubbles/textarea uses.
type EditorModel struct {
	line        []rune
	col         int
	focused     bool
	ring        *killRing
	history     *[]string
	histPos     int // index into history; len(history) = editing fresh line
	prompt      string
	promptWidth int
	placeholder string
	width       int
}

func NewEditorModel() EditorModel {
	hist := make([]string, 0, historyDepth)
	return EditorModel{
		ring:    newKillRing(),
		history: &hist,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles key and window-size messages.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.dispatchKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the prompt, text, and cursor on one wrapped line.
func (m EditorModel) View() string {
	if m.width <= 0 {
		return ""
	}

	s := Styles()

	if m.focused && len(m.line) == 0 && m.placeholder != "" {
		return m.prompt + CursorMarker + s.Dim.Render(m.placeholder)
	}

	text := string(m.line)
	if m.focused {
		text = string(m.line[:m.col]) + CursorMarker + string(m.line[m.col:])
	}

	ew := max(m.width-m.promptWidth, 1)
	wrapped := width.WrapTextWithAnsi(text, ew)
	indent := strings.Repeat(" ", m.promptWidth)

	var b strings.Builder
	for i, wl := range wrapped {
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(indent)
		} else {
			b.WriteString(m.prompt)
		}
		b.WriteString(wl)
	}
	return b.String()
}

// Text returns the current input text.
func (m EditorModel) Text() string {
	return string(m.line)
}

// SetText replaces the input and places the cursor at the end.
func (m EditorModel) SetText(s string) EditorModel {
	m.line = []rune(s)
	m.col = len(m.line)
	return m
}

// SetFocused sets the focus state. Returns a new model.
func (m EditorModel) SetFocused(focused bool) EditorModel {
	m.focused = focused
	return m
}

// SetPrompt sets the prompt prefix. Returns a new model.
func (m EditorModel) SetPrompt(p string) EditorModel {
	m.prompt = p
	m.promptWidth = width.VisibleWidth(p)
	return m
}

// SetPlaceholder sets dim hint text shown when empty and focused.
func (m EditorModel) SetPlaceholder(p string) EditorModel {
	m.placeholder = p
	return m
}

// IsEmpty reports whether the input holds no text.
func (m EditorModel) IsEmpty() bool {
	return len(m.line) == 0
}

// Commit pushes the current text onto the history and clears the line.
func (m EditorModel) Commit() EditorModel {
	text := strings.TrimSpace(string(m.line))
	if text != "" {
		h := *m.history
		if len(h) >= historyDepth {
			h = h[1:]
		}
		*m.history = append(h, text)
	}
	m.line = nil
	m.col = 0
	m.histPos = len(*m.history)
	return m
}

func (m *EditorModel) dispatchKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.insertRune(r)
		}
	case tea.KeySpace:
		m.insertRune(' ')
	case tea.KeyBackspace:
		m.backspace()
	case tea.KeyDelete:
		if m.col < len(m.line) {
			m.line = append(m.line[:m.col], m.line[m.col+1:]...)
		}
	case tea.KeyLeft:
		if m.col > 0 {
			m.col--
		}
	case tea.KeyRight:
		if m.col < len(m.line) {
			m.col++
		}
	case tea.KeyUp:
		m.recallPrev()
	case tea.KeyDown:
		m.recallNext()
	case tea.KeyHome, tea.KeyCtrlA:
		m.col = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		m.col = len(m.line)
	case tea.KeyCtrlK:
		m.killToEnd()
	case tea.KeyCtrlY:
		m.yank()
	case tea.KeyCtrlU:
		m.killToStart()
	}
}

func (m *EditorModel) insertRune(r rune) {
	newLine := make([]rune, len(m.line)+1)
	copy(newLine, m.line[:m.col])
	newLine[m.col] = r
	copy(newLine[m.col+1:], m.line[m.col:])
	m.line = newLine
	m.col++
}

func (m *EditorModel) backspace() {
	if m.col == 0 {
		return
	}
	m.line = append(m.line[:m.col-1], m.line[m.col:]...)
	m.col--
}

func (m *EditorModel) killToEnd() {
	if m.col >= len(m.line) {
		return
	}
	m.ring.push(string(m.line[m.col:]))
	m.line = m.line[:m.col]
}

func (m *EditorModel) killToStart() {
	if m.col == 0 {
		return
	}
	m.ring.push(string(m.line[:m.col]))
	m.line = append([]rune{}, m.line[m.col:]...)
	m.col = 0
}

func (m *EditorModel) yank() {
	yanked := m.ring.yank()
	if yanked == "" {
		return
	}
	runes := []rune(yanked)
	newLine := make([]rune, 0, len(m.line)+len(runes))
	newLine = append(newLine, m.line[:m.col]...)
	newLine = append(newLine, runes...)
	newLine = append(newLine, m.line[m.col:]...)
	m.line = newLine
	m.col += len(runes)
}

func (m *EditorModel) recallPrev() {
	h := *m.history
	if m.histPos == 0 || len(h) == 0 {
		return
	}
	m.histPos--
	m.line = []rune(h[m.histPos])
	m.col = len(m.line)
}

func (m *EditorModel) recallNext() {
	h := *m.history
	if m.histPos >= len(h) {
		return
	}
	m.histPos++
	if m.histPos == len(h) {
		m.line = nil
	} else {
		m.line = []rune(h[m.histPos])
	}
	m.col = len(m.line)
}
