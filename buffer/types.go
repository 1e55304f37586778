package buffer

// Pos addresses the entry by line and grapheme offset, both 0-based.
type Pos struct {
	Row         int
	GraphemeCol int
}

// Before reports whether p comes earlier in the entry than q.
func (p Pos) Before(q Pos) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.GraphemeCol < q.GraphemeCol
}

// Range spans [Start, End). The ends may arrive in either order.
type Range struct {
	Start Pos
	End   Pos
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

func (r Range) ordered() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// TextEdit replaces Range with Text, which may span lines.
type TextEdit struct {
	Range Range
	Text  string
}
