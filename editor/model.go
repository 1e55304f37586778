package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ghostwrite/buffer"
)

// Model is a Bubble Tea component that edits a buffer and draws a pending
// suggestion as dimmed ghost text after the end of the document.
type Model struct {
	id  int64
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	layout   wrapLayoutCache
	goal     rowGoal

	reveal Reveal

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		id:       nextID(),
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

// Buffer returns the underlying buffer. Hosts that mutate it directly see
// the change rendered on the next Update.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Text returns the current document text.
func (m Model) Text() string { return m.buf.Text() }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.refresh()
	return m
}

func (m Model) SetStyle(st Style) Model {
	m.cfg.Style = st
	m.invalidateLayoutCache()
	m.rebuildContent()
	return m
}

// SetText replaces the document as one undoable edit and clears any
// pending suggestion.
func (m Model) SetText(s string) Model {
	m = m.ClearSuggestion()
	m.buf.SetText(s)
	m.syncFromBuffer()
	m.followCursor()
	return m
}

// Reset empties the document and clears any pending suggestion.
func (m Model) Reset() Model { return m.SetText("") }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case RevealTickMsg:
		return m.updateReveal(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) syncFromBuffer() (changed bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	return true
}

func (m *Model) refresh() {
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	m.followCursor()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls so the cursor stays visible. While a suggestion is
// shown it also tries to keep the end of the ghost text in view, as long as
// that does not push the cursor out.
func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	layout := m.ensureLayoutCache()
	cur := layout.cursorVisualRow(m.buf.Cursor())
	y := m.viewport.YOffset

	if end, ok := layout.ghostEndVisualRow(); ok && end >= y+h && end-h+1 <= cur {
		y = end - h + 1
	}
	if cur < y {
		y = cur
	} else if cur >= y+h {
		y = cur - h + 1
	}
	if y != m.viewport.YOffset {
		m.viewport.SetYOffset(y)
	}
}
