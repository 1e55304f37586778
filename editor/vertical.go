package editor

import "github.com/iw2rmb/ghostwrite/buffer"

// rowGoal remembers the cell offset Up/Down aim for, so crossing a short
// row does not lose the column. It only applies while the cursor is where
// the last vertical move left it.
type rowGoal struct {
	cursor buffer.Pos
	cell   int
	ok     bool
}

// moveRows moves the cursor delta wrapped rows. Moving above the first row
// goes to the start of the entry, below the last row to its end.
func (m *Model) moveRows(delta int) {
	layout := m.ensureLayoutCache()
	if len(layout.rows) == 0 {
		return
	}

	cur := m.buf.Cursor()
	cell := layout.cellInRow(cur)
	if m.goal.ok && m.goal.cursor == cur {
		cell = m.goal.cell
	}

	target := layout.cursorVisualRow(cur) + delta
	switch {
	case target < 0:
		m.buf.Move(buffer.MotionEntryStart)
		m.goal = rowGoal{}
		return
	case target >= len(layout.rows):
		m.buf.Move(buffer.MotionEntryEnd)
		m.goal = rowGoal{}
		return
	}

	m.buf.SetCursor(layout.posInRow(target, cell))
	m.goal = rowGoal{cursor: m.buf.Cursor(), cell: cell, ok: true}
}

// cellInRow is the cursor's cell offset from the start of its wrapped row.
func (c wrapLayoutCache) cellInRow(cursor buffer.Pos) int {
	line := c.lines[clampInt(cursor.Row, 0, len(c.lines)-1)]
	cell := line.visual.VisualCellForDocGraphemeCol(cursor.GraphemeCol)
	return cell - line.segments[segmentForCell(line.segments, cell)].startCell
}

// posInRow maps a cell offset on visual row back to an entry position. The
// offset is clamped to the row; on all but a line's last row the final cell
// is the one before the wrap, since endCell starts the next row.
func (c wrapLayoutCache) posInRow(visualRow, cell int) buffer.Pos {
	r := c.rows[visualRow]
	line := c.lines[r.logicalRow]
	seg := line.segments[r.segmentIndex]

	last := seg.endCell
	if r.segmentIndex < len(line.segments)-1 {
		last--
	}
	x := clampInt(seg.startCell+cell, seg.startCell, last)
	return buffer.Pos{Row: r.logicalRow, GraphemeCol: line.visual.DocGraphemeColForVisualCell(x)}
}
