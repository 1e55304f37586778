package journal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

type action int

const (
	actionNone action = iota
	actionSuggest
	actionSave
	actionClear
	actionTheme
)

// zone is a clickable cell range on one screen row.
type zone struct {
	action action
	x0, x1 int
	y      int
}

func (z zone) contains(x, y int) bool {
	return y == z.y && x >= z.x0 && x < z.x1
}

const buttonGap = 2

// frame is the geometry shared by View, resize and hitTest.
type frame struct {
	editorW, editorH int
	errView          string
	buttonsY         int
}

func (m Model) frame() frame {
	var f frame
	if m.err != "" {
		f.errView = m.theme.Error.Width(m.width).Render(m.theme.ErrorLabel.Render("Error:") + " " + m.err)
	}

	box := m.theme.BoxFocused
	f.editorW = maxInt(1, m.width-box.GetHorizontalFrameSize())

	// title, spacer, box frame, error, buttons, help
	fixed := 1 + 1 + box.GetVerticalFrameSize() + lipgloss.Height(f.errView) + 1 + 1
	if f.errView == "" {
		fixed--
	}
	f.editorH = maxInt(1, m.height-fixed)
	f.buttonsY = 2 + f.editorH + box.GetVerticalFrameSize()
	if f.errView != "" {
		f.buttonsY += lipgloss.Height(f.errView)
	}
	return f
}

func (m Model) resize() Model {
	f := m.frame()
	m.editor = m.editor.SetSize(f.editorW, f.editorH)
	m.help.Width = m.width
	return m
}

func (m Model) buttons() []string {
	label := "↻ New Suggestion"
	st := m.theme.Suggest
	if m.fetcher.Loading() {
		label = m.spinner.View() + " New Suggestion"
		st = st.Inherit(m.theme.Disabled)
	}
	return []string{
		st.Render(label),
		m.theme.Save.Render("Save Entry"),
		m.theme.Clear.Render("Clear Entry"),
	}
}

func (m Model) zones() []zone {
	f := m.frame()
	var zs []zone

	x := 0
	for i, b := range m.buttons() {
		w := lipgloss.Width(b)
		zs = append(zs, zone{action: actionSuggest + action(i), x0: x, x1: x + w, y: f.buttonsY})
		x += w + buttonGap
	}

	ind := lipgloss.Width(m.theme.Indicator.Render(m.theme.indicator()))
	zs = append(zs, zone{action: actionTheme, x0: m.width - ind, x1: m.width, y: 0})
	return zs
}

func (m Model) hitTest(x, y int) action {
	for _, z := range m.zones() {
		if z.contains(x, y) {
			return z.action
		}
	}
	return actionNone
}

func (m Model) titleBar() string {
	title := m.theme.Title.Render(Title)
	ind := m.theme.Indicator.Render(m.theme.indicator())
	gap := maxInt(1, m.width-lipgloss.Width(title)-lipgloss.Width(ind))
	return title + strings.Repeat(" ", gap) + ind
}

func (m Model) View() string {
	f := m.frame()

	box := m.theme.Box
	if m.editor.Focused() {
		box = m.theme.BoxFocused
	}

	rows := []string{
		m.titleBar(),
		"",
		box.Render(m.editor.View()),
	}
	if f.errView != "" {
		rows = append(rows, f.errView)
	}
	rows = append(rows,
		strings.Join(m.buttons(), strings.Repeat(" ", buttonGap)),
		m.help.ShortHelpView(helpKeys{app: m.keys, editor: m.editor.KeyMap()}.ShortHelp()),
	)
	base := lipgloss.JoinVertical(lipgloss.Left, rows...)

	if !m.showHelp {
		return base
	}
	h := m.help
	h.Width = maxInt(0, m.width-m.theme.Help.GetHorizontalFrameSize())
	full := h.FullHelpView(helpKeys{app: m.keys, editor: m.editor.KeyMap()}.FullHelp())
	return overlay.Composite(m.theme.Help.Render(full), base, overlay.Center, overlay.Center, 0, 0)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
