package editor

import (
	"strings"

	"github.com/iw2rmb/ghostwrite/buffer"
	graphemeutil "github.com/iw2rmb/ghostwrite/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	layout := m.ensureLayoutCache()
	cursor := m.buf.Cursor()

	out := make([]string, 0, len(layout.rows))
	for _, ref := range layout.rows {
		line := layout.lines[ref.logicalRow]
		out = append(out, renderSegment(
			m.cfg.Style,
			line.visual,
			line.segments,
			ref.segmentIndex,
			ref.logicalRow,
			cursor,
			m.focused,
		))
	}
	return strings.Join(out, "\n")
}

func renderSegment(
	st Style,
	vl VisualLine,
	segments []wrappedSegment,
	segIdx int,
	row int,
	cursor buffer.Pos,
	focused bool,
) string {
	seg := segments[segIdx]
	rawLen := vl.RawGraphemeLen

	hasCursor := focused && row == cursor.Row
	cursorCol := clampInt(cursor.GraphemeCol, 0, rawLen)

	// Cursor at EOL is rendered as a 1-cell placeholder space in front of
	// any insertions anchored there.
	renderEOLCursor := hasCursor && cursorCol == rawLen
	eolCell := -1
	if renderEOLCursor {
		eolCell = vl.VisualCellForDocGraphemeCol(rawLen)
		if segmentForCell(segments, eolCell) != segIdx {
			renderEOLCursor = false
		}
	}

	var sb strings.Builder
	eolDone := false
	for i := seg.firstToken; i < seg.endToken && i < len(vl.Tokens); i++ {
		tok := vl.Tokens[i]
		if renderEOLCursor && !eolDone && tok.StartCell == eolCell {
			sb.WriteString(st.Cursor.Render(" "))
			eolDone = true
		}

		switch tok.Kind {
		case VisualTokenVirtual:
			style := st.Text
			switch tok.Role {
			case VirtualRoleGhost:
				style = st.Ghost.Inherit(st.Text)
			case VirtualRolePlaceholder:
				style = st.Placeholder.Inherit(st.Text)
			}
			sb.WriteString(style.Render(tok.Text))
		default:
			if hasCursor && cursorCol < rawLen && tok.DocStartGraphemeCol == cursorCol {
				text := tok.Text
				if isAllSpaces(text) {
					// Terminals may elide plain trailing spaces; keep the cursor cell visible.
					text = strings.ReplaceAll(text, " ", "\u00a0")
				}
				sb.WriteString(st.Cursor.Render(text))
				continue
			}
			sb.WriteString(st.Text.Render(tok.Text))
		}
	}
	if renderEOLCursor && !eolDone {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func isAllSpaces(s string) bool {
	if s == "" {
		return false
	}
	for _, g := range graphemeutil.Split(s) {
		if !graphemeutil.IsSpace(g) {
			return false
		}
	}
	return true
}
