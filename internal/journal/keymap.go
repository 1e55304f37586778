package journal

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/ghostwrite/editor"
)

// KeyMap holds the shell bindings. They are matched before the editor sees
// a key.
type KeyMap struct {
	Suggest key.Binding
	Save    key.Binding
	Clear   key.Binding
	Theme   key.Binding
	Help    key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Suggest: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "new suggestion")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save entry")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear entry")),
		Theme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle theme")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// helpKeys merges shell and editor bindings for help.Model.
type helpKeys struct {
	app    KeyMap
	editor editor.KeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.editor.Accept, h.app.Suggest, h.app.Clear, h.app.Help, h.app.Quit}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		{h.app.Suggest, h.app.Save, h.app.Clear, h.app.Theme, h.app.Help, h.app.Quit},
	}
	return append(groups, h.editor.FullHelp()...)
}
