package editor

import (
	graphemeutil "github.com/iw2rmb/ghostwrite/internal/grapheme"
)

// wrappedSegment is one visual row of a logical line. Segment boundaries
// always fall on token boundaries.
type wrappedSegment struct {
	startCell int
	endCell   int

	firstToken int
	endToken   int
}

type wrapUnit struct {
	token     int
	startCell int
	width     int

	isWhitespace bool
	isPunct      bool
}

func wrapSegmentsForVisualLine(vl VisualLine, mode WrapMode, width int) []wrappedSegment {
	units := wrapUnitsFromVisualLine(vl)
	if width <= 0 || len(units) == 0 {
		return []wrappedSegment{{
			startCell:  0,
			endCell:    vl.VisualLen(),
			firstToken: 0,
			endToken:   len(vl.Tokens),
		}}
	}

	segments := make([]wrappedSegment, 0, 1+vl.VisualLen()/width)
	for start := 0; start < len(units); {
		used := 0
		overflow := start
		for overflow < len(units) {
			w := maxInt(units[overflow].width, 1)
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < len(units) {
			if br, ok := findWordWrapBreak(units, start, overflow); ok {
				end = br
			} else {
				end = adjustBreakForLeadingPunctuation(units, start, overflow)
			}
		}
		if end <= start {
			end = minInt(start+1, len(units))
		}

		segments = append(segments, segmentFromUnitRange(vl, units, start, end))
		start = end
	}
	return segments
}

func wrapUnitsFromVisualLine(vl VisualLine) []wrapUnit {
	units := make([]wrapUnit, 0, len(vl.Tokens))
	for i, tok := range vl.Tokens {
		if tok.CellWidth <= 0 {
			continue
		}
		isWhitespace, isPunct := tokenClass(tok.Text)
		units = append(units, wrapUnit{
			token:        i,
			startCell:    tok.StartCell,
			width:        tok.CellWidth,
			isWhitespace: isWhitespace,
			isPunct:      isPunct,
		})
	}
	return units
}

func tokenClass(text string) (isWhitespace bool, isPunct bool) {
	if text == "" {
		return false, false
	}
	isWhitespace = true
	isPunct = true
	for _, gr := range graphemeutil.Split(text) {
		if !graphemeutil.IsSpace(gr) {
			isWhitespace = false
		}
		if !graphemeutil.IsPunct(gr) {
			isPunct = false
		}
	}
	if isWhitespace {
		isPunct = false
	}
	return isWhitespace, isPunct
}

func segmentFromUnitRange(vl VisualLine, units []wrapUnit, start, end int) wrappedSegment {
	first := units[start]
	last := units[end-1]
	seg := wrappedSegment{
		startCell:  first.startCell,
		endCell:    last.startCell + last.width,
		firstToken: first.token,
		endToken:   last.token + 1,
	}
	if end == len(units) {
		seg.endToken = len(vl.Tokens)
	}
	return seg
}

// segmentForCell returns the index of the segment that displays cell x.
// Cells past the end of the line belong to the last segment.
func segmentForCell(segments []wrappedSegment, x int) int {
	for i, seg := range segments {
		if x < seg.endCell {
			return i
		}
	}
	return maxInt(len(segments)-1, 0)
}
