package editor

import (
	"fmt"
	"strings"
)

// WrapMode controls how long logical lines are soft-wrapped.
type WrapMode int

const (
	WrapWord WrapMode = iota
	WrapGrapheme
)

func (w WrapMode) String() string {
	switch w {
	case WrapGrapheme:
		return "grapheme"
	default:
		return "word"
	}
}

// ParseWrapMode maps a configuration value to a WrapMode.
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "word":
		return WrapWord, nil
	case "grapheme", "char":
		return WrapGrapheme, nil
	default:
		return WrapWord, fmt.Errorf("unknown wrap mode %q", s)
	}
}
