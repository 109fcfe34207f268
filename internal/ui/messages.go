package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/domain"
)

// PickerItemAddedMsg is sent after an item joins the selection.
type PickerItemAddedMsg struct {
	Item domain.Item
}

// PickerItemRemovedMsg is sent after an item leaves the selection.
type PickerItemRemovedMsg struct {
	ID string
}

// PickerDoneMsg is sent when the user finishes with the picker.
type PickerDoneMsg struct {
	IDs []string
}

// PickerCopiedMsg reports the outcome of a clipboard copy.
type PickerCopiedMsg struct {
	Count int
	Err   error
}

type toastTickMsg struct{}

const toastDuration = 2 * time.Second

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
