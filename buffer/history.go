package buffer

// state is what one undo step restores.
type state struct {
	text   string
	cursor Pos
}

// stack is a LIFO of states that forgets its oldest entry past limit.
// A limit below one keeps nothing.
type stack struct {
	items []state
	limit int
}

func (s *stack) push(st state) {
	if s.limit < 1 {
		return
	}
	s.items = append(s.items, st)
	if over := len(s.items) - s.limit; over > 0 {
		s.items = append(s.items[:0], s.items[over:]...)
	}
}

func (s *stack) pop() (state, bool) {
	n := len(s.items)
	if n == 0 {
		return state{}, false
	}
	st := s.items[n-1]
	s.items = s.items[:n-1]
	return st, true
}

func (s *stack) clear() { s.items = s.items[:0] }

func (s *stack) len() int { return len(s.items) }

type history struct {
	undo stack
	redo stack
}

func newHistory(limit int) history {
	return history{undo: stack{limit: limit}, redo: stack{limit: limit}}
}

func (b *Buffer) snapshot() state {
	return state{text: b.Text(), cursor: b.cursor}
}

// recordUndo stores the state from before an edit. Any new edit forks the
// timeline, so redo is dropped.
func (b *Buffer) recordUndo(prev state) {
	b.hist.undo.push(prev)
	b.hist.redo.clear()
}

func (b *Buffer) CanUndo() bool { return b.hist.undo.len() > 0 }

func (b *Buffer) CanRedo() bool { return b.hist.redo.len() > 0 }

// Undo restores the entry to before the last edit.
func (b *Buffer) Undo() bool { return b.travel(&b.hist.undo, &b.hist.redo) }

// Redo re-applies the last undone edit.
func (b *Buffer) Redo() bool { return b.travel(&b.hist.redo, &b.hist.undo) }

// travel swaps the current state for the top of from, saving the current
// one on to.
func (b *Buffer) travel(from, to *stack) bool {
	next, ok := from.pop()
	if !ok {
		return false
	}
	to.push(b.snapshot())
	b.lines = splitLines(next.text)
	b.cursor = b.clampPos(next.cursor)
	b.markTextChanged()
	return true
}
