package ui

import "github.com/charmbracelet/lipgloss"

var (
	cPurple    = lipgloss.AdaptiveColor{Light: "93", Dark: "99"}
	cCyan      = lipgloss.AdaptiveColor{Light: "31", Dark: "39"}
	cGold      = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	cOrange    = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	cGray      = lipgloss.AdaptiveColor{Light: "245", Dark: "243"}
	cText      = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	cChipText  = lipgloss.AdaptiveColor{Light: "255", Dark: "235"}
	cHighlight = lipgloss.AdaptiveColor{Light: "189", Dark: "57"}
)

// Styles is the picker's visual configuration. The zero value renders unstyled text.
type Styles struct {
	Prompt      string
	Placeholder string

	Chip        lipgloss.Style
	ChipFocused lipgloss.Style
	Empty       lipgloss.Style

	Row          lipgloss.Style
	RowHighlight lipgloss.Style
	Secondary    lipgloss.Style
	Marker       string

	NoMatch lipgloss.Style
	Hint    lipgloss.Style
	Toast   lipgloss.Style

	// ChipMaxWidth caps chip labels before styling; 0 means unlimited.
	ChipMaxWidth int
}

// DefaultStyles returns the styles used by the typeahead binary.
func DefaultStyles() Styles {
	return Styles{
		Prompt:      "> ",
		Placeholder: "Type to search",

		Chip: lipgloss.NewStyle().
			Foreground(cChipText).
			Background(cCyan).
			Padding(0, 1),
		ChipFocused: lipgloss.NewStyle().
			Foreground(cText).
			Background(cPurple).
			Bold(true).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().Foreground(cGray).Italic(true),

		Row: lipgloss.NewStyle().Foreground(cText),
		RowHighlight: lipgloss.NewStyle().
			Foreground(cGold).
			Background(cHighlight).
			Bold(true),
		Secondary: lipgloss.NewStyle().Foreground(cGray),
		Marker:    "▸ ",

		NoMatch: lipgloss.NewStyle().Foreground(cGray).Italic(true),
		Hint:    lipgloss.NewStyle().Foreground(cGray),
		Toast:   lipgloss.NewStyle().Foreground(cOrange).Bold(true),

		ChipMaxWidth: 24,
	}
}

// PlainStyles keeps the layout of DefaultStyles without any color or emphasis.
// Tests and --no-color use it.
func PlainStyles() Styles {
	s := DefaultStyles()
	plain := lipgloss.NewStyle()
	s.Chip = plain.Padding(0, 1)
	s.ChipFocused = plain.Padding(0, 1).Reverse(true)
	s.Empty = plain
	s.Row = plain
	s.RowHighlight = plain
	s.Secondary = plain
	s.NoMatch = plain
	s.Hint = plain
	s.Toast = plain
	return s
}
