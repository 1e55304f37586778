package buffer

import (
	"slices"
	"strings"

	"github.com/iw2rmb/ghostwrite/internal/grapheme"
)

// InsertText inserts text at the cursor.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	b.Apply(TextEdit{Range: Range{Start: b.cursor, End: b.cursor}, Text: s})
}

// InsertGrapheme inserts a single grapheme cluster at the cursor.
func (b *Buffer) InsertGrapheme(g string) {
	b.InsertText(g)
}

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// Append inserts s at the end of the document and moves the cursor there.
//
// The append is recorded as one undo step regardless of where the cursor was.
func (b *Buffer) Append(s string) {
	if s == "" {
		return
	}
	end := b.End()
	b.Apply(TextEdit{Range: Range{Start: end, End: end}, Text: s})
}

// SetText replaces the whole document and moves the cursor to its end.
func (b *Buffer) SetText(s string) {
	if s == b.Text() {
		return
	}
	b.Apply(TextEdit{Range: Range{Start: Pos{}, End: b.End()}, Text: s})
}

// Reset clears the document. It is undoable like any other edit.
func (b *Buffer) Reset() {
	b.SetText("")
}

// DeleteBackward removes the grapheme or line break before the cursor.
func (b *Buffer) DeleteBackward() {
	b.Apply(TextEdit{Range: Range{Start: b.step(b.cursor, -1), End: b.cursor}})
}

// DeleteForward removes the grapheme or line break after the cursor.
func (b *Buffer) DeleteForward() {
	b.Apply(TextEdit{Range: Range{Start: b.cursor, End: b.step(b.cursor, 1)}})
}

// replaceRange swaps the text in r for text and returns where the inserted
// text ends. It reports false, leaving lines untouched, when r already
// holds text.
func (b *Buffer) replaceRange(r Range, text string) (Pos, bool) {
	r = Range{Start: b.clampPos(r.Start), End: b.clampPos(r.End)}.ordered()
	if b.textIn(r) == text {
		return b.cursor, false
	}

	head := b.lines[r.Start.Row][:r.Start.GraphemeCol]
	tail := b.lines[r.End.Row][r.End.GraphemeCol:]

	ins := splitLines(text)
	last := len(ins) - 1
	end := Pos{Row: r.Start.Row + last, GraphemeCol: len(ins[last])}
	if last == 0 {
		end.GraphemeCol += len(head)
	}
	ins[0] = append(slices.Clone(head), ins[0]...)
	ins[last] = append(ins[last], tail...)

	b.lines = slices.Concat(b.lines[:r.Start.Row], ins, b.lines[r.End.Row+1:])
	return end, true
}

// textIn joins the graphemes r covers. r must be ordered and in bounds.
func (b *Buffer) textIn(r Range) string {
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		line := b.lines[row]
		from, to := 0, len(line)
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line[from:to]))
	}
	return sb.String()
}
