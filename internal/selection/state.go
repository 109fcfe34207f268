// Package selection implements the multi-select typeahead state machine.
//
// A State is an immutable value: every event method returns the next State plus
// the Effects the host should act on. The candidate pool is owned by the host and
// passed to the methods that need it; everything derived from it (the unselected
// items and the box) is recomputed on each call.
//
// States carry no locks. Hosts deliver one event at a time.
package selection

import (
	"slices"

	"typeahead/internal/domain"
	"typeahead/internal/rank"
)

// State is one snapshot of the picker.
type State struct {
	opts *Options

	mode       Mode
	query      string
	selected   []domain.Item
	highlight  int
	enterGuard bool // armed by a commit, consumed by the next event
}

// New validates opts and builds a blurred State with the initial selection resolved
// against available, in the given order.
func New(opts Options, initialSelectedIDs []string, available []domain.Item) (State, error) {
	if err := opts.validate(); err != nil {
		return State{}, err
	}
	if opts.Rank == nil {
		opts.Rank = rank.Rank
	}
	selected, err := domain.Resolve(initialSelectedIDs, available)
	if err != nil {
		return State{}, initialSelectionError(err)
	}
	if len(selected) > opts.MaxItems {
		return State{}, configError("initial selection exceeds max items")
	}
	return State{
		opts:      &opts,
		mode:      Blurred,
		selected:  slices.Clip(selected),
		highlight: opts.HighlightReset.floor(),
	}, nil
}

// TextChanged records the raw input text. An empty string moves to Idle, anything
// else to Editing; the highlight returns to its floor either way. Text only arrives
// from a focused input, so this also leaves Blurred.
func (s State) TextChanged(text string) (State, Effects) {
	s.enterGuard = false
	s.highlight = s.floor()
	s.query = text
	if text == "" {
		s.mode = Idle
	} else {
		s.mode = Editing
	}
	return s, nil
}

// KeyPressed applies a decoded key against the box derived from available.
func (s State) KeyPressed(key Key, available []domain.Item) (State, Effects) {
	if !s.mode.Focused() {
		return s, nil
	}
	guarded := s.enterGuard
	s.enterGuard = false
	s = s.settle(available)

	if key == KeyBackspace {
		return s.removeLast()
	}
	if s.AtCapacity() {
		return s, nil
	}
	if key == KeyEnter && guarded && s.opts.SwallowEnterAfterCommit && s.mode == Cleared {
		s.mode = Idle
		return s, nil
	}

	switch key {
	case KeyArrowUp:
		s.highlight = max(s.floor(), s.highlight-1)
	case KeyArrowDown:
		last := len(s.Box(available)) - 1
		s.highlight = max(s.floor(), min(last, s.highlight+1))
	case KeyEnter:
		if it, ok := s.Highlighted(available); ok {
			return s.commit(it)
		}
	}
	return s, nil
}

// ItemPicked commits the item with id from available, regardless of the highlight.
// Unknown, already selected or over-capacity picks are ignored, as are picks while
// blurred.
func (s State) ItemPicked(id string, available []domain.Item) (State, Effects) {
	if !s.mode.Focused() {
		return s, nil
	}
	s.enterGuard = false
	s = s.settle(available)
	it, ok := domain.Find(available, id)
	if !ok {
		return s, nil
	}
	return s.commit(it)
}

// RemoveItem drops a specific selected item, as when a chip is deleted directly.
func (s State) RemoveItem(id string) (State, Effects) {
	s.enterGuard = false
	if !domain.Contains(s.selected, id) {
		return s, nil
	}
	s.selected = slices.DeleteFunc(slices.Clone(s.selected), func(it domain.Item) bool {
		return it.ID() == id
	})
	s.highlight = s.floor()
	return s, removed(id)
}

// Focus enters Initial.
func (s State) Focus() (State, Effects) {
	s.mode = Initial
	s.highlight = s.floor()
	s.enterGuard = false
	return s, Effects{{Kind: FocusAcknowledged}}
}

// Blur enters Blurred. Blurring twice yields an equal State.
func (s State) Blur() (State, Effects) {
	s.mode = Blurred
	s.highlight = s.floor()
	s.enterGuard = false
	return s, Effects{{Kind: BlurAcknowledged}}
}

// commit appends it to the selection. Duplicates and commits at capacity are no-ops.
func (s State) commit(it domain.Item) (State, Effects) {
	if s.AtCapacity() || domain.Contains(s.selected, it.ID()) {
		return s, nil
	}
	s.selected = append(slices.Clip(s.selected), it)
	s.mode = Cleared
	s.query = ""
	s.highlight = s.floor()
	s.enterGuard = true
	return s, added(it.ID())
}

func (s State) removeLast() (State, Effects) {
	if len(s.selected) == 0 || s.query != "" {
		return s, nil
	}
	switch s.opts.BackspaceRemove {
	case RemoveNever:
		return s, nil
	case RemoveInIdleOnly:
		if s.mode != Idle {
			return s, nil
		}
	}
	last := s.selected[len(s.selected)-1]
	s.selected = slices.Clip(s.selected[:len(s.selected)-1])
	s.highlight = s.floor()
	return s, removed(last.ID())
}

// Box returns the rows shown in the dropdown for the current mode. The result never
// contains a selected item and never exceeds the configured box length.
func (s State) Box(available []domain.Item) []domain.Item {
	unselected := domain.Diff(available, s.selected)
	switch s.mode {
	case Blurred, Initial:
		return domain.Head(unselected, s.opts.BoxLength)
	case Editing:
		ranked := s.opts.Rank(s.query, unselected, s.opts.BoxLength)
		return domain.Head(domain.Diff(ranked, s.selected), s.opts.BoxLength)
	case Cleared:
		if s.opts.CommitBox == CommitBoxDefaults {
			return domain.Head(unselected, s.opts.BoxLength)
		}
	}
	return nil
}

// Highlighted returns the box row under the highlight, if the highlight is on a row.
func (s State) Highlighted(available []domain.Item) (domain.Item, bool) {
	if s.highlight < 0 {
		return domain.Item{}, false
	}
	box := s.Box(available)
	if s.highlight >= len(box) {
		return domain.Item{}, false
	}
	return box[s.highlight], true
}

// Unselected returns available minus the selection, in pool order.
func (s State) Unselected(available []domain.Item) []domain.Item {
	return domain.Diff(available, s.selected)
}

func (s State) Mode() Mode         { return s.mode }
func (s State) Query() string      { return s.query }
func (s State) Highlight() int     { return s.highlight }
func (s State) Options() Options   { return *s.opts }
func (s State) AtCapacity() bool   { return len(s.selected) >= s.opts.MaxItems }
func (s State) SelectedCount() int { return len(s.selected) }

// Selected returns a copy of the selected items in commit order.
func (s State) Selected() []domain.Item {
	return slices.Clone(s.selected)
}

// SelectedIDs returns the selected ids in commit order.
func (s State) SelectedIDs() []string {
	return domain.IDs(s.selected)
}

// Equal reports whether two states would behave identically for every future event.
func (s State) Equal(other State) bool {
	return s.opts == other.opts &&
		s.mode == other.mode &&
		s.query == other.query &&
		s.highlight == other.highlight &&
		s.enterGuard == other.enterGuard &&
		slices.EqualFunc(s.selected, other.selected, domain.Item.Equal)
}

// settle pulls a highlight left past the end of the box by a pool change back onto
// the last row.
func (s State) settle(available []domain.Item) State {
	if n := len(s.Box(available)); s.highlight >= n {
		s.highlight = max(s.floor(), n-1)
	}
	return s
}

func (s State) floor() int {
	return s.opts.HighlightReset.floor()
}
