package editor

import (
	"sort"
	"strings"
)

type VirtualRole int

const (
	VirtualRoleGhost       VirtualRole = iota // pending suggestion preview
	VirtualRolePlaceholder                    // hint shown while the document is empty
)

// VirtualInsertion inserts view-only text at a grapheme column within a single
// logical line.
//
// GraphemeCol is a grapheme index in the raw buffer line.
type VirtualInsertion struct {
	GraphemeCol int
	Text        string
	Role        VirtualRole
}

type VirtualText struct {
	Insertions []VirtualInsertion
}

func normalizeVirtualText(vt VirtualText, rawLineLen int) VirtualText {
	rawLineLen = maxInt(rawLineLen, 0)
	if len(vt.Insertions) == 0 {
		return vt
	}

	ins := make([]VirtualInsertion, 0, len(vt.Insertions))
	for _, in := range vt.Insertions {
		text := sanitizeSingleLine(in.Text)
		if text == "" {
			continue
		}
		ins = append(ins, VirtualInsertion{
			GraphemeCol: clampInt(in.GraphemeCol, 0, rawLineLen),
			Text:        text,
			Role:        in.Role,
		})
	}
	sort.SliceStable(ins, func(i, j int) bool {
		return ins[i].GraphemeCol < ins[j].GraphemeCol
	})
	vt.Insertions = ins
	return vt
}

// sanitizeSingleLine folds line breaks into spaces so an insertion never
// spans more than one logical line.
func sanitizeSingleLine(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
