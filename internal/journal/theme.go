package journal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/ghostwrite/editor"
)

// Theme is the full set of styles for one color scheme.
type Theme struct {
	Dark bool

	Title     lipgloss.Style
	Indicator lipgloss.Style

	Box        lipgloss.Style
	BoxFocused lipgloss.Style

	Editor editor.Style

	Error      lipgloss.Style
	ErrorLabel lipgloss.Style

	Suggest  lipgloss.Style
	Save     lipgloss.Style
	Clear    lipgloss.Style
	Disabled lipgloss.Style

	Help lipgloss.Style
}

func button(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(bg)).
		Padding(0, 2)
}

func LightTheme() Theme {
	text := lipgloss.NewStyle().Foreground(lipgloss.Color("#111827"))
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),
		Indicator: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#1F2937")).Padding(0, 1),

		Box:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#D1D5DB")).Padding(0, 1),
		BoxFocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3B82F6")).Padding(0, 1),

		Editor: editor.Style{
			Text:        text,
			Cursor:      text.Reverse(true),
			Ghost:       lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Italic(true),
		},

		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("#B91C1C")).Background(lipgloss.Color("#FEE2E2")).Padding(0, 1),
		ErrorLabel: lipgloss.NewStyle().Bold(true),

		Suggest:  button("#3B82F6"),
		Save:     button("#22C55E"),
		Clear:    button("#EF4444"),
		Disabled: lipgloss.NewStyle().Faint(true),

		Help: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3B82F6")).Padding(1, 2),
	}
}

func DarkTheme() Theme {
	text := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	return Theme{
		Dark: true,

		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")),
		Indicator: lipgloss.NewStyle().Foreground(lipgloss.Color("#111827")).Background(lipgloss.Color("#FACC15")).Padding(0, 1),

		Box:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4B5563")).Padding(0, 1),
		BoxFocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3B82F6")).Padding(0, 1),

		Editor: editor.Style{
			Text:        text,
			Cursor:      text.Reverse(true),
			Ghost:       lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true),
		},

		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("#B91C1C")).Background(lipgloss.Color("#FEE2E2")).Padding(0, 1),
		ErrorLabel: lipgloss.NewStyle().Bold(true),

		Suggest:  button("#2563EB"),
		Save:     button("#16A34A"),
		Clear:    button("#DC2626"),
		Disabled: lipgloss.NewStyle().Faint(true),

		Help: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#FACC15")).Padding(1, 2),
	}
}

// ThemeFor picks the theme for dark.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// indicator is the toggle label, naming the scheme a click switches to.
func (t Theme) indicator() string {
	if t.Dark {
		return "☀ light"
	}
	return "☾ dark"
}
