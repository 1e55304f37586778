package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ghostwrite/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	km := m.cfg.KeyMap

	if key.Matches(msg, km.Accept) && !msg.Paste {
		if accepted, ok := m.AcceptSuggestion(); ok {
			return accepted, nil
		}
	}

	// Every other keystroke dismisses the pending suggestion.
	m = m.ClearSuggestion()

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			s := strings.ReplaceAll(string(msg.Runes), "\r\n", "\n")
			s = strings.ReplaceAll(s, "\r", "\n")
			m.buf.InsertText(s)
		}
		m.refresh()
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.MotionLeft)
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.MotionRight)
	case key.Matches(msg, km.Up):
		m.moveRows(-1)
	case key.Matches(msg, km.Down):
		m.moveRows(1)

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.MotionWordLeft)
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.MotionWordRight)

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.MotionLineStart)
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.MotionLineEnd)
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.MotionEntryStart)
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.MotionEntryEnd)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.buf.InsertNewline()
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Redo()
		}

	default:
		if m.cfg.ReadOnly {
			break
		}
		switch {
		case msg.Type == tea.KeyTab:
			m.buf.InsertGrapheme("\t")
		case msg.Type == tea.KeySpace:
			m.buf.InsertText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.buf.InsertText(string(msg.Runes))
		}
	}

	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, nil
}
