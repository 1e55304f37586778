package editor

// ViewportState is a snapshot of the editor's vertical scroll position.
type ViewportState struct {
	TopVisualRow    int
	VisibleRows     int
	TotalVisualRows int
	CursorVisualRow int

	// GhostEndVisualRow is the row that holds the last revealed ghost
	// grapheme, or -1 when no ghost text is drawn.
	GhostEndVisualRow int

	WrapMode WrapMode
}

func (m Model) ViewportState() ViewportState {
	layout := m.ensureLayoutCache()
	st := ViewportState{
		TopVisualRow:      m.viewport.YOffset,
		VisibleRows:       maxInt(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0),
		TotalVisualRows:   len(layout.rows),
		CursorVisualRow:   layout.cursorVisualRow(m.buf.Cursor()),
		GhostEndVisualRow: -1,
		WrapMode:          m.cfg.WrapMode,
	}
	if end, ok := layout.ghostEndVisualRow(); ok {
		st.GhostEndVisualRow = end
	}
	return st
}
