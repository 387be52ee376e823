// ABOUTME: Tests for the chat input editor
// ABOUTME: Covers editing keys, kill ring, and history recall

package chat

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(m EditorModel, s string) EditorModel {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated.(EditorModel)
}

func pressKey(m EditorModel, k tea.KeyType) EditorModel {
	updated, _ := m.Update(tea.KeyMsg{Type: k})
	return updated.(EditorModel)
}

func TestEditorModel_TypeAndBackspace(t *testing.T) {
	m := NewEditorModel()
	m = typeText(m, "fees")
	if m.Text() != "fees" {
		t.Errorf("text = %q; want fees", m.Text())
	}

	m = pressKey(m, tea.KeyBackspace)
	if m.Text() != "fee" {
		t.Errorf("text = %q; want fee", m.Text())
	}
}

func TestEditorModel_CursorMovementAndInsert(t *testing.T) {
	m := NewEditorModel()
	m = typeText(m, "tact")
	m = pressKey(m, tea.KeyHome)
	m = typeText(m, "the ")
	if m.Text() != "the tact" {
		t.Errorf("text = %q; want %q", m.Text(), "the tact")
	}
	m = pressKey(m, tea.KeyEnd)
	m = typeText(m, "!")
	if m.Text() != "the tact!" {
		t.Errorf("text = %q; want %q", m.Text(), "the tact!")
	}
}

func TestEditorModel_KillAndYank(t *testing.T) {
	m := NewEditorModel()
	m = typeText(m, "apply now")
	m = pressKey(m, tea.KeyHome)
	m = pressKey(m, tea.KeyCtrlK)
	if m.Text() != "" {
		t.Fatalf("text = %q; want empty after kill", m.Text())
	}
	m = pressKey(m, tea.KeyCtrlY)
	if m.Text() != "apply now" {
		t.Errorf("text = %q; want killed text restored", m.Text())
	}
}

func TestEditorModel_CtrlUKillsToStart(t *testing.T) {
	m := NewEditorModel()
	m = typeText(m, "hello world")
	m = pressKey(m, tea.KeyCtrlU)
	if m.Text() != "" {
		t.Errorf("text = %q; want empty", m.Text())
	}
}

func TestEditorModel_HistoryRecall(t *testing.T) {
	m := NewEditorModel()
	m = typeText(m, "first message")
	m = m.Commit()
	m = typeText(m, "second message")
	m = m.Commit()

	if !m.IsEmpty() {
		t.Fatal("editor should be empty after commit")
	}

	m = pressKey(m, tea.KeyUp)
	if m.Text() != "second message" {
		t.Errorf("text = %q; want second message", m.Text())
	}
	m = pressKey(m, tea.KeyUp)
	if m.Text() != "first message" {
		t.Errorf("text = %q; want first message", m.Text())
	}
	m = pressKey(m, tea.KeyDown)
	if m.Text() != "second message" {
		t.Errorf("text = %q; want second message", m.Text())
	}
	m = pressKey(m, tea.KeyDown)
	if m.Text() != "" {
		t.Errorf("text = %q; want empty fresh line", m.Text())
	}
}

func TestEditorModel_CommitSkipsBlank(t *testing.T) {
	m := NewEditorModel()
	m = typeText(m, "   ")
	m = m.Commit()
	m = pressKey(m, tea.KeyUp)
	if m.Text() != "" {
		t.Errorf("blank input should not enter history; got %q", m.Text())
	}
}

func TestEditorModel_ViewShowsPlaceholder(t *testing.T) {
	m := NewEditorModel().
		SetFocused(true).
		SetPrompt("> ").
		SetPlaceholder("ask away")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80})
	m = updated.(EditorModel)

	view := m.View()
	if view == "" {
		t.Fatal("view should not be empty")
	}
}
