package editor

import (
	"strings"

	graphemeutil "github.com/iw2rmb/ghostwrite/internal/grapheme"
)

type VisualTokenKind int

const (
	VisualTokenDoc VisualTokenKind = iota
	VisualTokenVirtual
)

type VisualToken struct {
	Kind VisualTokenKind

	// Text is the rendered token text. Tabs are expanded to spaces.
	Text string

	// StartCell is the visual cell offset where this token begins.
	StartCell int

	// CellWidth is the number of terminal cells this token occupies.
	CellWidth int

	// DocStartGraphemeCol/DocEndGraphemeCol define the raw document grapheme span.
	// For virtual tokens both equal the insertion anchor.
	DocStartGraphemeCol int
	DocEndGraphemeCol   int

	// Role is meaningful only for virtual tokens.
	Role VirtualRole
}

type VisualLine struct {
	RawGraphemeLen int

	Tokens []VisualToken

	// VisualCellToDocGraphemeCol maps each visual cell to a raw document grapheme column.
	// For wide graphemes, every cell maps to the same doc column.
	// For virtual insertions, every cell maps to the insertion anchor column.
	VisualCellToDocGraphemeCol []int

	// DocGraphemeColToVisualCell maps raw document grapheme columns to a visual cell offset.
	DocGraphemeColToVisualCell []int
}

func BuildVisualLine(rawLine string, vt VirtualText, tabWidth int) VisualLine {
	rawGraphemes := graphemeutil.Split(rawLine)
	rawLen := len(rawGraphemes)
	if tabWidth <= 0 {
		tabWidth = 4
	}

	vt = normalizeVirtualText(vt, rawLen)
	ins := vt.Insertions
	insIdx := 0

	var tokens []VisualToken
	var visualCellToDoc []int
	visualCol := 0

	appendToken := func(kind VisualTokenKind, text string, cellWidth, docStart, docEnd int, role VirtualRole) {
		if cellWidth < 1 {
			cellWidth = 1
		}
		if text == "" {
			text = " "
		}
		startCell := len(visualCellToDoc)
		for i := 0; i < cellWidth; i++ {
			visualCellToDoc = append(visualCellToDoc, docStart)
		}
		tokens = append(tokens, VisualToken{
			Kind:                kind,
			Text:                text,
			StartCell:           startCell,
			CellWidth:           cellWidth,
			DocStartGraphemeCol: docStart,
			DocEndGraphemeCol:   docEnd,
			Role:                role,
		})
		visualCol += cellWidth
	}

	appendInsertion := func(in VirtualInsertion) {
		for _, gr := range graphemeutil.Split(in.Text) {
			w := graphemeutil.Width(gr)
			if gr == "\t" {
				w = tabAdvance(visualCol, tabWidth)
			}
			appendToken(VisualTokenVirtual, gr, w, in.GraphemeCol, in.GraphemeCol, in.Role)
		}
	}

	for col, gr := range rawGraphemes {
		for insIdx < len(ins) && ins[insIdx].GraphemeCol <= col {
			appendInsertion(ins[insIdx])
			insIdx++
		}

		if gr == "\t" {
			adv := tabAdvance(visualCol, tabWidth)
			appendToken(VisualTokenDoc, strings.Repeat(" ", adv), adv, col, col+1, 0)
			continue
		}
		appendToken(VisualTokenDoc, gr, graphemeutil.Width(gr), col, col+1, 0)
	}

	// Remaining insertions are anchored at EOL.
	for ; insIdx < len(ins); insIdx++ {
		appendInsertion(ins[insIdx])
	}

	visualLen := len(visualCellToDoc)
	docToVisual := make([]int, rawLen+1)
	for i := range docToVisual {
		docToVisual[i] = visualLen
	}
	for _, tok := range tokens {
		if tok.Kind != VisualTokenDoc {
			continue
		}
		docToVisual[tok.DocStartGraphemeCol] = tok.StartCell
	}
	// EOL sits after the last doc token, ahead of any EOL insertions.
	if rawLen > 0 {
		last := tokens[0]
		for _, tok := range tokens {
			if tok.Kind == VisualTokenDoc {
				last = tok
			}
		}
		docToVisual[rawLen] = last.StartCell + last.CellWidth
	} else {
		docToVisual[rawLen] = 0
	}

	return VisualLine{
		RawGraphemeLen:             rawLen,
		Tokens:                     tokens,
		VisualCellToDocGraphemeCol: visualCellToDoc,
		DocGraphemeColToVisualCell: docToVisual,
	}
}

func (vl VisualLine) VisualLen() int { return len(vl.VisualCellToDocGraphemeCol) }

func (vl VisualLine) DocGraphemeColForVisualCell(x int) int {
	if len(vl.VisualCellToDocGraphemeCol) == 0 {
		return vl.RawGraphemeLen
	}
	if x < 0 {
		x = 0
	}
	if x >= len(vl.VisualCellToDocGraphemeCol) {
		return vl.RawGraphemeLen
	}
	return clampInt(vl.VisualCellToDocGraphemeCol[x], 0, vl.RawGraphemeLen)
}

func (vl VisualLine) VisualCellForDocGraphemeCol(col int) int {
	col = clampInt(col, 0, vl.RawGraphemeLen)
	if len(vl.DocGraphemeColToVisualCell) == 0 {
		return 0
	}
	return clampInt(vl.DocGraphemeColToVisualCell[col], 0, vl.VisualLen())
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}
