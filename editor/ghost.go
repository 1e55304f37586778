package editor

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	graphemeutil "github.com/iw2rmb/ghostwrite/internal/grapheme"
)

// DefaultRevealInterval is the delay between two revealed graphemes.
const DefaultRevealInterval = 30 * time.Millisecond

var lastID int64

func nextID() int64 {
	return atomic.AddInt64(&lastID, 1)
}

// RevealTickMsg advances the typewriter reveal of a pending suggestion.
// Ticks carry the editor id and the suggestion generation they were
// scheduled for; ticks from an older generation are dropped.
type RevealTickMsg struct {
	ID  int64
	Gen int
}

// Reveal is the progressive display state of one suggestion.
//
// The visible text is a pure function of the number of elapsed ticks, so
// a restarted reveal never duplicates or skips graphemes.
type Reveal struct {
	Text  string
	Gen   int
	Ticks int
	total int
}

// Visible returns the revealed prefix of the suggestion.
func (r Reveal) Visible() string { return RevealPrefix(r.Text, r.Ticks) }

// Done reports whether the whole suggestion is visible.
func (r Reveal) Done() bool { return r.Ticks >= r.total }

func (r Reveal) Pending() bool { return r.Text != "" }

// RevealPrefix returns the first ticks graphemes of text.
func RevealPrefix(text string, ticks int) string {
	return graphemeutil.Prefix(text, ticks)
}

// GhostSeparator returns the text placed between the entry and an accepted
// suggestion: a single space unless the entry is empty or already ends with
// a space. A trailing newline or tab still gets the separator.
func GhostSeparator(entry string) string {
	if entry == "" || graphemeutil.Last(entry) == " " {
		return ""
	}
	return " "
}

// SetSuggestion replaces the pending suggestion and restarts its reveal.
// An empty suggestion clears the ghost text.
func (m Model) SetSuggestion(s string) (Model, tea.Cmd) {
	s = sanitizeSingleLine(s)
	m.reveal = Reveal{
		Text:  s,
		Gen:   m.reveal.Gen + 1,
		total: graphemeutil.Count(s),
	}
	if s == "" {
		m.refresh()
		return m, nil
	}
	if m.cfg.RevealInterval < 0 {
		m.reveal.Ticks = m.reveal.total
		m.refresh()
		return m, nil
	}
	m.refresh()
	return m, m.revealTick(m.reveal.Gen)
}

// ClearSuggestion drops the pending suggestion. Outstanding reveal ticks
// become stale.
func (m Model) ClearSuggestion() Model {
	if !m.reveal.Pending() {
		return m
	}
	m.reveal = Reveal{Gen: m.reveal.Gen + 1}
	m.refresh()
	return m
}

// Suggestion returns the full pending suggestion.
func (m Model) Suggestion() string { return m.reveal.Text }

// RevealedSuggestion returns the part of the suggestion revealed so far.
func (m Model) RevealedSuggestion() string { return m.reveal.Visible() }

// Reveal exposes the current reveal state.
func (m Model) Reveal() Reveal { return m.reveal }

// AcceptSuggestion appends the separator and the full suggestion to the end
// of the document as one undoable edit. It reports false when there is
// nothing to accept.
func (m Model) AcceptSuggestion() (Model, bool) {
	if !m.reveal.Pending() || m.cfg.ReadOnly {
		return m, false
	}
	text := m.reveal.Text
	m.buf.Append(GhostSeparator(m.buf.Text()) + text)
	m.reveal = Reveal{Gen: m.reveal.Gen + 1}
	m.refresh()
	return m, true
}

func (m Model) revealTick(gen int) tea.Cmd {
	id := m.id
	interval := m.cfg.RevealInterval
	if interval == 0 {
		interval = DefaultRevealInterval
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return RevealTickMsg{ID: id, Gen: gen}
	})
}

func (m Model) updateReveal(msg RevealTickMsg) (Model, tea.Cmd) {
	if msg.ID != m.id || msg.Gen != m.reveal.Gen || !m.reveal.Pending() || m.reveal.Done() {
		return m, nil
	}
	m.reveal.Ticks++
	m.refresh()
	if m.reveal.Done() {
		return m, nil
	}
	return m, m.revealTick(m.reveal.Gen)
}

// ghostText is the view-only text drawn after the end of the document.
func (m *Model) ghostText() string {
	visible := m.reveal.Visible()
	if visible == "" {
		return ""
	}
	return GhostSeparator(m.buf.Text()) + visible
}

// Stop ends any running reveal for teardown. Unlike ClearSuggestion it
// always retires the current generation.
func (m Model) Stop() Model {
	m.reveal = Reveal{Gen: m.reveal.Gen + 1}
	m.refresh()
	return m
}
