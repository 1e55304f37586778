package buffer

// Apply runs edits in order as a single undo step. Each range is read
// against the document as left by the edits before it, and is clamped into
// bounds. The cursor lands at the end of the last edit that changed
// anything; edits that change nothing are skipped.
//
// Every edit, from a keystroke to accepting a suggestion, goes through here.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}

	before := b.snapshot()
	cursor, changed := b.cursor, false
	for _, e := range edits {
		next, ok := b.replaceRange(e.Range, e.Text)
		if ok {
			cursor, changed = next, true
		}
	}
	if !changed {
		return
	}

	b.cursor = b.clampPos(cursor)
	b.markTextChanged()
	b.recordUndo(before)
}
