package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker's keyboard shortcuts.
// Each binding includes the actual keys and help text for display.
// Plain letters are never bound since they belong to the query.
type KeyMap struct {
	// Dropdown
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Backspace key.Binding

	// Chips
	Left   key.Binding
	Right  key.Binding
	Delete key.Binding

	// Actions
	Copy key.Binding
	Done key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default picker keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/↓", "Move highlight"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↑/↓", "Move highlight"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Select highlighted item"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("Backspace", "Edit query, or remove last item when empty"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "Walk selected items (empty query)"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("←/→", "Walk selected items (empty query)"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "backspace"),
			key.WithHelp("Delete", "Remove focused item"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("Ctrl+Y", "Copy selected ids"),
		),
		Done: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Finish and print selection"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "Abort without output"),
		),
	}
}

// HelpRows returns one row per distinct help entry, in display order.
// Bindings that share help text appear once.
func (k KeyMap) HelpRows() [][2]string {
	bindings := []key.Binding{
		k.Up, k.Down, k.Enter, k.Backspace,
		k.Left, k.Right, k.Delete,
		k.Copy, k.Done, k.Quit,
	}
	seen := make(map[string]bool, len(bindings))
	var rows [][2]string
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" || seen[h.Key+h.Desc] {
			continue
		}
		seen[h.Key+h.Desc] = true
		rows = append(rows, [2]string{h.Key, h.Desc})
	}
	return rows
}
