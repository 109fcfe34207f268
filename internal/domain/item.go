package domain

import "strings"

// Item is one selectable candidate.
//
// Identity is the id alone: two items with the same id are the same candidate even
// when their display strings differ. Items are immutable once constructed.
type Item struct {
	id              string
	selectedDisplay string
	primaryText     string
	secondaryText   string
	searchTokens    []string
}

// NewItem constructs an Item, rejecting a blank id.
// An empty selectedDisplay falls back to primaryText, and an empty primaryText to the id.
func NewItem(id, selectedDisplay, primaryText, secondaryText string, searchTokens []string) (Item, error) {
	if strings.TrimSpace(id) == "" {
		return Item{}, invalidItemError("item id is required")
	}
	if primaryText == "" {
		primaryText = id
	}
	if selectedDisplay == "" {
		selectedDisplay = primaryText
	}
	var tokens []string
	for _, tok := range searchTokens {
		if strings.TrimSpace(tok) != "" {
			tokens = append(tokens, tok)
		}
	}
	return Item{
		id:              id,
		selectedDisplay: selectedDisplay,
		primaryText:     primaryText,
		secondaryText:   secondaryText,
		searchTokens:    tokens,
	}, nil
}

// MustItem is NewItem for literals known to be valid. It panics on a blank id.
func MustItem(id, selectedDisplay, primaryText, secondaryText string, searchTokens ...string) Item {
	it, err := NewItem(id, selectedDisplay, primaryText, secondaryText, searchTokens)
	if err != nil {
		panic(err)
	}
	return it
}

func (it Item) ID() string              { return it.id }
func (it Item) SelectedDisplay() string { return it.selectedDisplay }
func (it Item) PrimaryText() string     { return it.primaryText }
func (it Item) SecondaryText() string   { return it.secondaryText }

// SearchTokens returns a copy of the extra match fields.
func (it Item) SearchTokens() []string {
	return append([]string(nil), it.searchTokens...)
}

// Equal compares every field, not just identity.
func (it Item) Equal(other Item) bool {
	if it.id != other.id ||
		it.selectedDisplay != other.selectedDisplay ||
		it.primaryText != other.primaryText ||
		it.secondaryText != other.secondaryText ||
		len(it.searchTokens) != len(other.searchTokens) {
		return false
	}
	for i := range it.searchTokens {
		if it.searchTokens[i] != other.searchTokens[i] {
			return false
		}
	}
	return true
}

func (it Item) String() string {
	return it.id
}
