package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestViewportState_ExposesOffsets(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3"})
	m = m.SetSize(10, 2)

	st := m.ViewportState()
	if st.TopVisualRow != 0 || st.VisibleRows != 2 || st.TotalVisualRows != 4 || st.WrapMode != WrapWord {
		t.Fatalf("initial viewport state: got %+v", st)
	}
	if st.GhostEndVisualRow != -1 {
		t.Fatalf("ghost end without suggestion: got %d, want -1", st.GhostEndVisualRow)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	st = m.ViewportState()
	if st.CursorVisualRow != 3 || st.TopVisualRow != 2 {
		t.Fatalf("viewport after moving down: got %+v", st)
	}
}

func TestViewportState_CursorWinsOverGhostTail(t *testing.T) {
	m := New(Config{Text: "one\ntwo\nthree", RevealInterval: -1})
	m = m.SetSize(10, 2)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	m, _ = m.SetSuggestion("alpha beta gamma")

	st := m.ViewportState()
	if st.TotalVisualRows != 6 {
		t.Fatalf("total rows: got %d, want 6", st.TotalVisualRows)
	}
	if st.CursorVisualRow != 2 || st.GhostEndVisualRow != 5 {
		t.Fatalf("rows: got %+v", st)
	}
	if st.CursorVisualRow < st.TopVisualRow || st.CursorVisualRow >= st.TopVisualRow+st.VisibleRows {
		t.Fatalf("cursor scrolled out of view: %+v", st)
	}
}

func TestViewportState_GhostTailScrolledIntoViewWhenRoomAllows(t *testing.T) {
	m := New(Config{Text: "one\ntwo\nthree", RevealInterval: -1})
	m = m.SetSize(10, 4)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	m, _ = m.SetSuggestion("alpha beta gamma")

	st := m.ViewportState()
	if st.TopVisualRow != 2 {
		t.Fatalf("top row: got %d, want 2 (%+v)", st.TopVisualRow, st)
	}
	if st.GhostEndVisualRow >= st.TopVisualRow+st.VisibleRows {
		t.Fatalf("ghost tail not visible: %+v", st)
	}
}

func TestViewportState_RevealGrowthKeepsScrollInSync(t *testing.T) {
	m := New(Config{Text: "one\ntwo\nthree"})
	m = m.SetSize(10, 4)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	m, _ = m.SetSuggestion("alpha beta gamma")

	if got := m.ViewportState().TopVisualRow; got != 0 {
		t.Fatalf("top row before reveal: got %d, want 0", got)
	}
	for !m.Reveal().Done() {
		m, _ = m.Update(RevealTickMsg{ID: m.id, Gen: m.Reveal().Gen})
	}
	if got := m.ViewportState().TopVisualRow; got != 2 {
		t.Fatalf("top row after reveal: got %d, want 2", got)
	}
}
