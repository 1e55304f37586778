package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ghostwrite/buffer"
)

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 2})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 1}) {
		t.Fatalf("cursor after backspace: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 1})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if got := m.Text(); got != "a b" {
		t.Fatalf("text after space: got %q, want %q", got, "a b")
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{Text: "ab", ReadOnly: true})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 1}) {
		t.Fatalf("cursor after move: got %v, want %v", got, buffer.Pos{Row: 0, GraphemeCol: 1})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Text(); got != "ab" {
		t.Fatalf("text in read-only: got %q, want %q", got, "ab")
	}

	m, _ = m.SetSuggestion("cd")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Text(); got != "ab" {
		t.Fatalf("accept in read-only: got %q, want %q", got, "ab")
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after typing: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Text(); got != "a" {
		t.Fatalf("text after undo: got %q, want %q", got, "a")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after redo: got %q, want %q", got, "ab")
	}
}

func TestUpdate_PasteInsertsLiteralTextWithNormalizedNewlines(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one\r\ntwo\tthree"), Paste: true})
	if got, want := m.Text(), "one\ntwo\tthree"; got != want {
		t.Fatalf("text after paste: got %q, want %q", got, want)
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.Text(); got != "ab" {
		t.Fatalf("text while blurred: got %q, want %q", got, "ab")
	}
}

func TestUpdate_DocEndMovesToLastGrapheme(t *testing.T) {
	m := New(Config{Text: "one\ntwo"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 1, GraphemeCol: 3}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestUpdate_UpDownMoveByWrappedRow(t *testing.T) {
	m := New(Config{Text: "abcdefghij", WrapMode: WrapGrapheme}).SetSize(5, 10)
	m.Buffer().SetCursor(buffer.Pos{GraphemeCol: 1})

	steps := []struct {
		key  tea.KeyType
		want int
	}{
		{tea.KeyDown, 5},
		{tea.KeyDown, 9},
		{tea.KeyDown, 10}, // past the last row: end of entry
		{tea.KeyUp, 6},
		{tea.KeyUp, 2},
		{tea.KeyUp, 0}, // past the first row: start of entry
	}
	for i, s := range steps {
		m, _ = m.Update(tea.KeyMsg{Type: s.key})
		if got, want := m.Buffer().Cursor(), (buffer.Pos{GraphemeCol: s.want}); got != want {
			t.Fatalf("step %d: cursor got %v, want %v", i, got, want)
		}
	}
}

func TestUpdate_UpDownKeepColumnAcrossShortRows(t *testing.T) {
	m := New(Config{Text: "abcdefg\nx\nabcdefg", WrapMode: WrapGrapheme}).SetSize(5, 10)
	m.Buffer().SetCursor(buffer.Pos{Row: 0, GraphemeCol: 6})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("onto short row: got %v, want %v", got, want)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 2, GraphemeCol: 2}); got != want {
		t.Fatalf("past short row: got %v, want %v", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 1, GraphemeCol: 0}); got != want {
		t.Fatalf("after horizontal move: got %v, want %v", got, want)
	}
}

func TestUpdate_UpDownWithoutSizeFollowLines(t *testing.T) {
	m := New(Config{Text: "one\ntwo"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 0, GraphemeCol: 3}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}
