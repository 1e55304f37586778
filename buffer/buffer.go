package buffer

import (
	"strings"

	"github.com/iw2rmb/ghostwrite/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo history
}

// Buffer is the pure entry state: text and cursor.
//
// Version bumps on every effective state change (text or cursor).
// TextVersion bumps only when the text itself changes, which is what
// suggestion scheduling keys off.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos

	hist history
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		hist:  newHistory(opt.HistoryLimit),
	}
}

// Text joins the lines back into the entry.
func (b *Buffer) Text() string {
	rows := make([]string, len(b.lines))
	for i, line := range b.lines {
		rows[i] = grapheme.Join(line)
	}
	return strings.Join(rows, "\n")
}

// IsEmpty reports whether the document holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the raw text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// End returns the position just past the last grapheme of the document.
func (b *Buffer) End() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, GraphemeCol: len(b.lines[last])}
}

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// clampPos pulls p onto the nearest existing line and grapheme boundary.
func (b *Buffer) clampPos(p Pos) Pos {
	row := min(max(p.Row, 0), len(b.lines)-1)
	col := min(max(p.GraphemeCol, 0), len(b.lines[row]))
	return Pos{Row: row, GraphemeCol: col}
}

func (b *Buffer) markTextChanged() {
	b.version++
	b.textVersion++
}

// splitLines breaks text into grapheme clusters per line. Empty text is
// one empty line.
func splitLines(text string) [][]string {
	var lines [][]string
	for s := range strings.SplitSeq(text, "\n") {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
