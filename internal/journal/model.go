// Package journal is the application shell: a single journal entry with
// inline continuations, three actions and a theme toggle.
package journal

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/iw2rmb/ghostwrite/editor"
	"github.com/iw2rmb/ghostwrite/internal/credential"
	"github.com/iw2rmb/ghostwrite/internal/logging"
	"github.com/iw2rmb/ghostwrite/suggest"
)

const (
	Title       = "AI Journal"
	Placeholder = "Start writing your journal entry..."
)

// KeySetter accepts a rotated API key.
type KeySetter interface {
	SetAPIKey(key string)
}

// Rotations delivers credential.RotatedMsg values.
type Rotations interface {
	Wait() tea.Cmd
}

type Options struct {
	Completer suggest.Completer

	// Text seeds the entry.
	Text string

	Debounce       time.Duration
	RequestTimeout time.Duration
	RevealInterval time.Duration
	WrapMode       editor.WrapMode
	Dark           bool

	// Keys and Rotations are optional; both are needed for key rotation.
	Keys      KeySetter
	Rotations Rotations

	Logger logging.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	opt    Options
	keys   KeyMap
	log    logging.Logger
	editor editor.Model

	fetcher     suggest.Fetcher
	textVersion uint64

	err      string
	theme    Theme
	spinner  spinner.Model
	help     help.Model
	showHelp bool

	width, height int

	initCmd tea.Cmd
}

func New(opt Options) Model {
	if opt.Logger == nil {
		opt.Logger = logging.Nop()
	}
	log := opt.Logger.With("session", uuid.NewString())

	theme := ThemeFor(opt.Dark)
	ed := editor.New(editor.Config{
		Text:           opt.Text,
		Placeholder:    Placeholder,
		Style:          theme.Editor,
		WrapMode:       opt.WrapMode,
		RevealInterval: opt.RevealInterval,
	})
	ed.Buffer().SetCursor(ed.Buffer().End())

	m := Model{
		opt:    opt,
		keys:   DefaultKeyMap(),
		log:    log,
		editor: ed,
		fetcher: suggest.New(opt.Completer, suggest.Options{
			Debounce: opt.Debounce,
			Timeout:  opt.RequestTimeout,
			Logger:   log,
		}),
		textVersion: ed.Buffer().TextVersion(),
		theme:       theme,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Line)),
		help:        help.New(),
		width:       80,
		height:      24,
	}
	m = m.resize()

	if opt.Text != "" {
		m.fetcher, m.initCmd = m.fetcher.Changed(opt.Text)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.initCmd}
	if m.opt.Rotations != nil {
		cmds = append(cmds, m.opt.Rotations.Wait())
	}
	return tea.Batch(cmds...)
}

// Entry returns the current entry text.
func (m Model) Entry() string { return m.editor.Text() }

// Suggestion returns the pending suggestion.
func (m Model) Suggestion() string { return m.editor.Suggestion() }

// Err returns the visible error message, or "".
func (m Model) Err() string { return m.err }

func (m Model) Loading() bool { return m.fetcher.Loading() }

func (m Model) Dark() bool { return m.theme.Dark }

func (m Model) Editor() editor.Model { return m.editor }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.resize(), nil

	case suggest.ResultMsg:
		return m.applyResult(msg)

	case credential.RotatedMsg:
		if m.opt.Keys != nil {
			m.opt.Keys.SetAPIKey(msg.Key)
			m.log.Info(context.Background(), "api key rotated")
		}
		if m.opt.Rotations == nil {
			return m, nil
		}
		return m, m.opt.Rotations.Wait()

	case spinner.TickMsg:
		if !m.fetcher.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	wasLoading := m.fetcher.Loading()
	m.fetcher, cmd = m.fetcher.Update(msg)
	cmds = append(cmds, cmd)
	if !wasLoading && m.fetcher.Loading() {
		cmds = append(cmds, m.spinner.Tick)
	}

	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case m.showHelp && key.Matches(msg, m.keys.Close):
		m.showHelp = false
		return m, nil
	case m.showHelp:
		// The overlay is modal; the entry underneath stays untouched.
		return m, nil
	case key.Matches(msg, m.keys.Suggest):
		return m.requestSuggestion()
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.Clear):
		return m.clear()
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme(), nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m, changed := m.entryChanged()
	return m, tea.Batch(cmd, changed)
}

// entryChanged re-arms the fetcher after any edit to the entry text.
// Cursor movement alone does not count.
func (m Model) entryChanged() (Model, tea.Cmd) {
	v := m.editor.Buffer().TextVersion()
	if v == m.textVersion {
		return m, nil
	}
	m.textVersion = v

	text := m.editor.Text()
	if text == "" {
		m.editor = m.editor.ClearSuggestion()
	}
	var cmd tea.Cmd
	m.fetcher, cmd = m.fetcher.Changed(text)
	return m, cmd
}

func (m Model) applyResult(msg suggest.ResultMsg) (tea.Model, tea.Cmd) {
	var outcome suggest.Outcome
	m.fetcher, outcome = m.fetcher.Resolve(msg)

	switch outcome {
	case suggest.Failed:
		m.err = suggest.ErrorText(msg.Err)
		return m.resize(), nil
	case suggest.Applied:
		m.err = ""
		var cmd tea.Cmd
		m.editor, cmd = m.editor.SetSuggestion(msg.Suggestion)
		return m.resize(), cmd
	}
	return m, nil
}

func (m Model) requestSuggestion() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.fetcher, cmd = m.fetcher.Trigger(m.editor.Text())
	if cmd == nil {
		return m, nil
	}
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// save has no storage behind it yet.
func (m Model) save() (tea.Model, tea.Cmd) {
	text := m.editor.Text()
	m.log.Info(context.Background(), "save requested", "chars", len(text), "lines", m.editor.Buffer().LineCount())
	return m, nil
}

func (m Model) clear() (tea.Model, tea.Cmd) {
	m.editor = m.editor.Reset()
	return m.entryChanged()
}

func (m Model) toggleTheme() Model {
	m.theme = ThemeFor(!m.theme.Dark)
	m.editor = m.editor.SetStyle(m.theme.Editor)
	m.log.Debug(context.Background(), "theme toggled", "dark", m.theme.Dark)
	return m
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.fetcher = m.fetcher.Stop()
	m.editor = m.editor.Stop()
	m.log.Info(context.Background(), "quit")
	return m, tea.Quit
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch m.hitTest(msg.X, msg.Y) {
	case actionSuggest:
		return m.requestSuggestion()
	case actionSave:
		return m.save()
	case actionClear:
		return m.clear()
	case actionTheme:
		return m.toggleTheme(), nil
	}
	return m, nil
}
