package editor

import (
	"fmt"
	"testing"
)

func TestVisualLine_Mapping_InsertionAddsCellsButDocStaysAnchored(t *testing.T) {
	vl := BuildVisualLine("ab", VirtualText{
		Insertions: []VirtualInsertion{{GraphemeCol: 1, Text: "XX"}},
	}, 4)

	if got, want := fmt.Sprintf("%v", vl.VisualCellToDocGraphemeCol), "[0 1 1 1]"; got != want {
		t.Fatalf("visual->doc: got %s, want %s", got, want)
	}
	if got, want := vl.DocGraphemeColToVisualCell[1], 3; got != want {
		t.Fatalf("doc col 1 visual cell: got %d, want %d", got, want)
	}
}

func TestVisualLine_Mapping_EOLPrecedesEOLInsertions(t *testing.T) {
	vl := BuildVisualLine("ab", VirtualText{
		Insertions: []VirtualInsertion{{GraphemeCol: 2, Text: " cd", Role: VirtualRoleGhost}},
	}, 4)

	if got, want := vl.VisualLen(), 5; got != want {
		t.Fatalf("visual len: got %d, want %d", got, want)
	}
	if got, want := vl.VisualCellForDocGraphemeCol(2), 2; got != want {
		t.Fatalf("EOL visual cell: got %d, want %d", got, want)
	}
	if got := vl.Tokens[2]; got.Kind != VisualTokenVirtual || got.Role != VirtualRoleGhost {
		t.Fatalf("token 2: got %+v, want ghost insertion", got)
	}
}

func TestVisualLine_Mapping_WideGraphemeMapsAllCellsToOneDocCol(t *testing.T) {
	vl := BuildVisualLine("\u754c", VirtualText{}, 4)
	if got, want := len(vl.VisualCellToDocGraphemeCol), 2; got != want {
		t.Fatalf("visual len: got %d, want %d", got, want)
	}
	if got, want := fmt.Sprintf("%v", vl.VisualCellToDocGraphemeCol), "[0 0]"; got != want {
		t.Fatalf("visual->doc: got %s, want %s", got, want)
	}
}

func TestVisualLine_Mapping_TabExpansionDeterministic(t *testing.T) {
	vl := BuildVisualLine("a\tb", VirtualText{}, 4)
	if got, want := fmt.Sprintf("%v", vl.VisualCellToDocGraphemeCol), "[0 1 1 1 2]"; got != want {
		t.Fatalf("visual->doc: got %s, want %s", got, want)
	}
}

func TestVisualLine_Mapping_CombiningClusterIsSingleGrapheme(t *testing.T) {
	vl := BuildVisualLine("e\u0301x", VirtualText{}, 4)
	if got, want := vl.RawGraphemeLen, 2; got != want {
		t.Fatalf("raw len: got %d, want %d", got, want)
	}
	if got, want := fmt.Sprintf("%v", vl.VisualCellToDocGraphemeCol), "[0 1]"; got != want {
		t.Fatalf("visual->doc: got %s, want %s", got, want)
	}
}

func TestVisualLine_InsertionLineBreaksAreFolded(t *testing.T) {
	vl := BuildVisualLine("", VirtualText{
		Insertions: []VirtualInsertion{{GraphemeCol: 0, Text: "a\nb"}},
	}, 4)
	if got, want := vl.VisualLen(), 3; got != want {
		t.Fatalf("visual len: got %d, want %d", got, want)
	}
	if got := vl.Tokens[1].Text; got != " " {
		t.Fatalf("folded break: got %q, want space", got)
	}
}
