package buffer

import "testing"

func at(row, col int) Pos { return Pos{Row: row, GraphemeCol: col} }

func TestApply_EditsSeeEarlierEdits(t *testing.T) {
	b := New("went home", Options{})
	v := b.Version()

	b.Apply(
		TextEdit{Range: Range{Start: at(0, 0), End: at(0, 0)}, Text: "I "},
		TextEdit{Range: Range{Start: at(0, 2), End: at(0, 6)}, Text: "ran"},
	)

	if got, want := b.Text(), "I ran home"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), at(0, 5); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version: got %d, want %d", got, v+1)
	}

	b.Undo()
	if got, want := b.Text(), "went home"; got != want {
		t.Fatalf("undo restores both edits at once: got %q, want %q", got, want)
	}
}

func TestApply_ClampsRanges(t *testing.T) {
	b := New("dear\ndiary", Options{})

	b.Apply(
		TextEdit{Range: Range{Start: at(7, 40), End: at(7, 40)}, Text: ","},
		TextEdit{Range: Range{Start: at(-1, -3), End: at(-1, -3)}, Text: "Oh "},
	)

	if got, want := b.Text(), "Oh dear\ndiary,"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), at(0, 3); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestApply_NothingChangedRecordsNothing(t *testing.T) {
	b := New("a", Options{})
	v, tv := b.Version(), b.TextVersion()

	b.Apply()
	b.Apply(TextEdit{Range: Range{Start: at(0, 0), End: at(0, 0)}})
	b.Apply(TextEdit{Range: Range{Start: at(0, 0), End: at(0, 1)}, Text: "a"})

	if b.Version() != v || b.TextVersion() != tv {
		t.Fatalf("versions moved: got %d/%d, want %d/%d", b.Version(), b.TextVersion(), v, tv)
	}
	if b.CanUndo() {
		t.Fatalf("no-op apply must not record undo")
	}
}
