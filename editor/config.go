package editor

import "time"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Placeholder is shown dimmed while the document is empty and no
	// suggestion is pending.
	Placeholder string

	// Style is used as given; the zero value renders unstyled text.
	// Hosts usually start from DefaultStyle.
	Style Style

	// KeyMap defaults to DefaultKeyMap when it has no accept binding.
	KeyMap KeyMap

	WrapMode WrapMode
	TabWidth int

	// RevealInterval is the delay between revealed suggestion graphemes.
	// Zero means DefaultRevealInterval; a negative value reveals instantly.
	RevealInterval time.Duration

	ReadOnly bool

	// Forwarded to buffer.Options.
	HistoryLimit int
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if len(c.KeyMap.Accept.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
