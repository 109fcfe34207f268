package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is the full-screen host around a single Picker. It quits when the picker
// reports it is done or when the quit key is pressed.
type App struct {
	picker  Picker
	title   string
	keys    KeyMap
	styles  Styles
	result  []string
	aborted bool
}

// NewApp wraps picker under a one-line title.
func NewApp(picker Picker, title string) App {
	return App{
		picker: picker.WithOffsetY(titleHeight(title)),
		title:  title,
		keys:   picker.keys,
		styles: picker.styles,
	}
}

// Init focuses the picker.
func (a App) Init() tea.Cmd {
	return func() tea.Msg { return tea.FocusMsg{} }
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.picker = a.picker.WithWidth(min(msg.Width, max(a.picker.Width, 20)))
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.aborted = true
			return a, tea.Quit
		}

	case PickerDoneMsg:
		a.result = msg.IDs
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.title == "" {
		return a.picker.View() + "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Hint.Render(a.title),
		a.picker.View(),
	) + "\n"
}

// Result returns the ids selected when the picker finished, and whether the user
// aborted instead.
func (a App) Result() ([]string, bool) {
	if a.aborted {
		return nil, true
	}
	if a.result == nil {
		return a.picker.SelectedIDs(), false
	}
	return a.result, false
}

func titleHeight(title string) int {
	if title == "" {
		return 0
	}
	return lipgloss.Height(title)
}
