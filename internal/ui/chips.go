package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"typeahead/internal/domain"
)

// chipNav tracks keyboard focus among the selected-item chips.
// index is -1 while the cursor sits in the text input.
type chipNav struct {
	index int
}

func newChipNav() chipNav {
	return chipNav{index: -1}
}

func (c chipNav) active() bool {
	return c.index >= 0
}

// enter focuses the last chip. It reports false when there are no chips.
func (c *chipNav) enter(count int) bool {
	if count == 0 {
		return false
	}
	c.index = count - 1
	return true
}

func (c *chipNav) exit() {
	c.index = -1
}

func (c *chipNav) left() {
	if c.index > 0 {
		c.index--
	}
}

// right moves to the next chip, leaving navigation past the last one.
func (c *chipNav) right(count int) {
	if c.index < count-1 {
		c.index++
		return
	}
	c.exit()
}

// removed keeps focus on the chip that slid into the deleted slot, or the new
// last chip, and leaves navigation once nothing is left.
func (c *chipNav) removed(remaining int) {
	switch {
	case remaining == 0:
		c.exit()
	case c.index >= remaining:
		c.index = remaining - 1
	}
}

// renderChips styles each selected item's display label.
func renderChips(items []domain.Item, focused int, st Styles) []string {
	out := make([]string, 0, len(items))
	for i, it := range items {
		label := it.SelectedDisplay()
		if st.ChipMaxWidth > 0 {
			label = truncate.StringWithTail(label, uint(st.ChipMaxWidth), "…")
		}
		if i == focused {
			out = append(out, st.ChipFocused.Render(label))
		} else {
			out = append(out, st.Chip.Render(label))
		}
	}
	return out
}

// wrapElements joins rendered elements with spaces, breaking lines at width.
func wrapElements(elements []string, width int) string {
	if width <= 0 || len(elements) == 0 {
		return strings.Join(elements, " ")
	}

	var lines []string
	var currentLine []string
	currentWidth := 0

	for _, elem := range elements {
		elemWidth := lipgloss.Width(elem)
		spaceNeeded := elemWidth
		if len(currentLine) > 0 {
			spaceNeeded++
		}

		if currentWidth+spaceNeeded > width && len(currentLine) > 0 {
			lines = append(lines, strings.Join(currentLine, " "))
			currentLine = []string{elem}
			currentWidth = elemWidth
		} else {
			currentLine = append(currentLine, elem)
			currentWidth += spaceNeeded
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}

	return strings.Join(lines, "\n")
}
