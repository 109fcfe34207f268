package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"typeahead/internal/debug"
	"typeahead/internal/domain"
	"typeahead/internal/selection"
)

// writeClipboard is a variable so tests can avoid touching the system clipboard.
var writeClipboard = clipboard.WriteAll

// Picker is a multi-select typeahead field: a row of chips for the selection, a text
// input, and a dropdown of ranked candidates. All selection rules live in the
// wrapped selection.State; the picker decodes terminal input into its events and
// turns the resulting effects into messages.
type Picker struct {
	// Configuration
	Width   int // Display width; 0 disables wrapping and truncation
	OffsetY int // Screen row of the picker's first line, for mouse hit testing

	keys   KeyMap
	styles Styles

	// State
	input textinput.Model
	state selection.State
	pool  []domain.Item
	chips chipNav
	toast string
}

// NewPicker wraps state, offering candidates from pool.
func NewPicker(state selection.State, pool []domain.Item) Picker {
	ti := textinput.New()
	ti.CharLimit = 200

	p := Picker{
		Width: 60,
		keys:  DefaultKeyMap(),
		input: ti,
		state: state,
		pool:  pool,
		chips: newChipNav(),
	}
	return p.WithStyles(DefaultStyles()).WithWidth(p.Width)
}

// WithWidth sets the display width.
func (p Picker) WithWidth(w int) Picker {
	p.Width = w
	p.input.Width = max(1, w-lipgloss.Width(p.styles.Prompt)-1)
	return p
}

// WithStyles replaces the visual configuration.
func (p Picker) WithStyles(st Styles) Picker {
	p.styles = st
	p.input.Prompt = st.Prompt
	p.input.Placeholder = st.Placeholder
	return p
}

// WithPlaceholder sets the placeholder text.
func (p Picker) WithPlaceholder(s string) Picker {
	p.styles.Placeholder = s
	p.input.Placeholder = s
	return p
}

// WithOffsetY records where the picker's first line lands on screen.
func (p Picker) WithOffsetY(y int) Picker {
	p.OffsetY = y
	return p
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns updated state.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	switch msg := msg.(type) {
	case toastTickMsg:
		p.toast = ""
		return p, nil

	case PickerCopiedMsg:
		if msg.Err != nil {
			p.toast = fmt.Sprintf("Copy failed: %v", msg.Err)
		} else {
			p.toast = fmt.Sprintf("Copied %d id(s)", msg.Count)
		}
		return p, scheduleToastTick()

	case tea.FocusMsg:
		cmd := p.Focus()
		return p, cmd

	case tea.BlurMsg:
		p.Blur()
		return p, nil

	case tea.MouseMsg:
		return p.handleMouse(msg)

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	// Cursor blink and similar
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Picker) handleKey(msg tea.KeyMsg) (Picker, tea.Cmd) {
	if key.Matches(msg, p.keys.Copy) {
		return p, p.copySelection()
	}
	if !p.state.Mode().Focused() {
		return p, nil
	}
	if p.chips.active() {
		return p.handleChipKey(msg)
	}

	switch {
	case key.Matches(msg, p.keys.Done):
		ids := p.state.SelectedIDs()
		p.Blur()
		return p, msgCmd(PickerDoneMsg{IDs: ids})

	case key.Matches(msg, p.keys.Up):
		return p.apply(p.state.KeyPressed(selection.KeyArrowUp, p.pool))

	case key.Matches(msg, p.keys.Down):
		return p.apply(p.state.KeyPressed(selection.KeyArrowDown, p.pool))

	case key.Matches(msg, p.keys.Enter):
		return p.apply(p.state.KeyPressed(selection.KeyEnter, p.pool))

	case key.Matches(msg, p.keys.Left) && p.input.Value() == "":
		if p.chips.enter(p.state.SelectedCount()) {
			return p, nil
		}

	case key.Matches(msg, p.keys.Backspace):
		// The state decides whether this removes a chip; the input only sees it as an
		// edit, which is a no-op on an empty query.
		var removeCmd, editCmd tea.Cmd
		p, removeCmd = p.apply(p.state.KeyPressed(selection.KeyBackspace, p.pool))
		p, editCmd = p.editInput(msg)
		return p, tea.Batch(removeCmd, editCmd)
	}

	return p.editInput(msg)
}

func (p Picker) handleChipKey(msg tea.KeyMsg) (Picker, tea.Cmd) {
	selected := p.state.Selected()
	if p.chips.index >= len(selected) {
		p.chips.exit()
		return p, nil
	}

	switch {
	case key.Matches(msg, p.keys.Delete):
		id := selected[p.chips.index].ID()
		p.chips.removed(len(selected) - 1)
		return p.apply(p.state.RemoveItem(id))

	case key.Matches(msg, p.keys.Left):
		p.chips.left()

	case key.Matches(msg, p.keys.Right):
		p.chips.right(len(selected))

	case key.Matches(msg, p.keys.Down), key.Matches(msg, p.keys.Done):
		p.chips.exit()

	case msg.Type == tea.KeyRunes:
		// Typing leaves chip navigation and starts a query.
		p.chips.exit()
		return p.editInput(msg)
	}
	return p, nil
}

func (p Picker) handleMouse(msg tea.MouseMsg) (Picker, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return p, nil
	}
	if !p.state.Mode().Focused() {
		return p, nil
	}
	row := msg.Y - p.OffsetY - p.boxTop()
	box := p.visibleBox()
	if row < 0 || row >= len(box) {
		return p, nil
	}
	p.chips.exit()
	return p.apply(p.state.ItemPicked(box[row].ID(), p.pool))
}

// editInput lets the text input handle msg and reports any change to the state.
func (p Picker) editInput(msg tea.Msg) (Picker, tea.Cmd) {
	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	after := p.input.Value()
	if after == before {
		return p, cmd
	}
	debug.Event("picker.query", "text", after)
	var effectCmd tea.Cmd
	p, effectCmd = p.apply(p.state.TextChanged(after))
	return p, tea.Batch(cmd, effectCmd)
}

// apply installs the next state and maps its effects onto messages for the host.
func (p Picker) apply(next selection.State, effects selection.Effects) (Picker, tea.Cmd) {
	p.state = next
	if p.input.Value() != p.state.Query() {
		p.input.SetValue(p.state.Query())
	}

	var cmds []tea.Cmd
	for _, e := range effects {
		debug.Event("picker."+e.Kind.String(), "id", e.ID, "selected", p.state.SelectedCount())
		switch e.Kind {
		case selection.ItemAdded:
			if it, ok := domain.Find(p.pool, e.ID); ok {
				cmds = append(cmds, msgCmd(PickerItemAddedMsg{Item: it}))
			}
		case selection.ItemRemoved:
			cmds = append(cmds, msgCmd(PickerItemRemovedMsg{ID: e.ID}))
		}
	}
	return p, tea.Batch(cmds...)
}

func (p Picker) copySelection() tea.Cmd {
	ids := p.state.SelectedIDs()
	return func() tea.Msg {
		err := writeClipboard(strings.Join(ids, "\n"))
		return PickerCopiedMsg{Count: len(ids), Err: err}
	}
}

// visibleBox is the part of the box the view draws as rows.
func (p Picker) visibleBox() []domain.Item {
	if !p.state.Mode().Focused() || p.state.AtCapacity() {
		return nil
	}
	return p.state.Box(p.pool)
}

// boxTop is the number of lines above the first dropdown row.
func (p Picker) boxTop() int {
	return lipgloss.Height(p.chipsView()) + 1
}

// Focus focuses the picker and returns the cursor blink command.
func (p *Picker) Focus() tea.Cmd {
	var effects selection.Effects
	p.state, effects = p.state.Focus()
	for _, e := range effects {
		debug.Event("picker." + e.Kind.String())
	}
	return p.input.Focus()
}

// Blur removes focus from the picker and leaves chip navigation.
func (p *Picker) Blur() {
	var effects selection.Effects
	p.state, effects = p.state.Blur()
	for _, e := range effects {
		debug.Event("picker." + e.Kind.String())
	}
	p.chips.exit()
	p.input.Blur()
}

// Focused returns whether the picker is focused.
func (p Picker) Focused() bool {
	return p.state.Mode().Focused()
}

// State returns the wrapped selection state.
func (p Picker) State() selection.State {
	return p.state
}

// SelectedIDs returns the selected ids in commit order.
func (p Picker) SelectedIDs() []string {
	return p.state.SelectedIDs()
}

// InputValue returns the current text input value.
func (p Picker) InputValue() string {
	return p.input.Value()
}

// InChipNav reports whether keyboard focus is on the chips.
func (p Picker) InChipNav() bool {
	return p.chips.active()
}

// ChipIndex returns the focused chip, or -1 outside chip navigation.
func (p Picker) ChipIndex() int {
	return p.chips.index
}

// Toast returns the transient status line.
func (p Picker) Toast() string {
	return p.toast
}
