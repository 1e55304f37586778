package buffer

import "github.com/iw2rmb/ghostwrite/internal/grapheme"

// Motion is a cursor movement that depends only on the text. Vertical
// movement depends on how lines wrap, so the editor handles it with
// SetCursor.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionWordLeft
	MotionWordRight
	MotionLineStart
	MotionLineEnd
	MotionEntryStart
	MotionEntryEnd
)

// Move applies m. Version only changes when the cursor actually moves.
func (b *Buffer) Move(m Motion) {
	b.SetCursor(b.target(m))
}

func (b *Buffer) target(m Motion) Pos {
	c := b.cursor
	switch m {
	case MotionLeft:
		return b.step(c, -1)
	case MotionRight:
		return b.step(c, 1)
	case MotionWordLeft:
		return b.wordLeft(c)
	case MotionWordRight:
		return b.wordRight(c)
	case MotionLineStart:
		return Pos{Row: c.Row}
	case MotionLineEnd:
		return Pos{Row: c.Row, GraphemeCol: len(b.lines[c.Row])}
	case MotionEntryStart:
		return Pos{}
	case MotionEntryEnd:
		return b.End()
	}
	return c
}

// step moves one grapheme; a line break counts as one.
func (b *Buffer) step(p Pos, dir int) Pos {
	col := p.GraphemeCol + dir
	switch {
	case col < 0 && p.Row > 0:
		return Pos{Row: p.Row - 1, GraphemeCol: len(b.lines[p.Row-1])}
	case col > len(b.lines[p.Row]) && p.Row < len(b.lines)-1:
		return Pos{Row: p.Row + 1}
	}
	return Pos{Row: p.Row, GraphemeCol: col}
}

// wordLeft lands on the start of the previous word. At the start of a line
// it only crosses the line break.
func (b *Buffer) wordLeft(p Pos) Pos {
	if p.GraphemeCol == 0 {
		return b.step(p, -1)
	}
	line := b.lines[p.Row]
	col := p.GraphemeCol
	for col > 0 && grapheme.IsSpace(line[col-1]) {
		col--
	}
	for col > 0 && !grapheme.IsSpace(line[col-1]) {
		col--
	}
	return Pos{Row: p.Row, GraphemeCol: col}
}

// wordRight lands just past the end of the next word. At the end of a line
// it only crosses the line break.
func (b *Buffer) wordRight(p Pos) Pos {
	line := b.lines[p.Row]
	if p.GraphemeCol >= len(line) {
		return b.step(p, 1)
	}
	col := p.GraphemeCol
	for col < len(line) && grapheme.IsSpace(line[col]) {
		col++
	}
	for col < len(line) && !grapheme.IsSpace(line[col]) {
		col++
	}
	return Pos{Row: p.Row, GraphemeCol: col}
}
