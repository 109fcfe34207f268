package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"typeahead/internal/domain"
	"typeahead/internal/selection"
)

const (
	emptySelectionLabel = "Nothing selected"
	noMatchLabel        = "No matches"
	ellipsis            = "…"
)

// View renders chips, the input line, the dropdown and any toast, top to bottom.
func (p Picker) View() string {
	var b strings.Builder
	b.WriteString(p.chipsView())
	b.WriteString("\n")
	b.WriteString(p.input.View())

	if rows := p.rowsView(); rows != "" {
		b.WriteString("\n")
		b.WriteString(rows)
	}
	if p.toast != "" {
		b.WriteString("\n")
		b.WriteString(p.styles.Toast.Render(p.toast))
	}
	return b.String()
}

func (p Picker) chipsView() string {
	chips := renderChips(p.state.Selected(), p.chips.index, p.styles)
	if len(chips) == 0 {
		return p.styles.Empty.Render(emptySelectionLabel)
	}
	return wrapElements(chips, p.Width)
}

func (p Picker) rowsView() string {
	if !p.state.Mode().Focused() {
		return ""
	}
	if p.state.AtCapacity() {
		opts := p.state.Options()
		return p.styles.Hint.Render(fmt.Sprintf("Selection full (%d/%d)", p.state.SelectedCount(), opts.MaxItems))
	}

	box := p.visibleBox()
	if len(box) == 0 {
		if p.state.Mode() == selection.Editing {
			return p.styles.NoMatch.Render(noMatchLabel)
		}
		return ""
	}

	lines := make([]string, len(box))
	for i, it := range box {
		lines[i] = p.renderRow(it, i == p.state.Highlight())
	}
	return strings.Join(lines, "\n")
}

func (p Picker) renderRow(it domain.Item, highlighted bool) string {
	marker := p.styles.Marker
	markerWidth := lipgloss.Width(marker)
	if !highlighted {
		marker = strings.Repeat(" ", markerWidth)
	}

	primary := it.PrimaryText()
	secondary := it.SecondaryText()
	if p.Width > 0 {
		avail := max(1, p.Width-markerWidth)
		primary = truncate.StringWithTail(primary, uint(avail), ellipsis)
		rest := avail - lipgloss.Width(primary) - 2
		if rest > 1 {
			secondary = truncate.StringWithTail(secondary, uint(rest), ellipsis)
		} else {
			secondary = ""
		}
	}

	style := p.styles.Row
	if highlighted {
		style = p.styles.RowHighlight
	}
	row := marker + style.Render(primary)
	if secondary != "" {
		row += "  " + p.styles.Secondary.Render(secondary)
	}
	return row
}
