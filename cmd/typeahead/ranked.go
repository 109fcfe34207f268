package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"typeahead/internal/domain"
	"typeahead/internal/rank"
)

// printRanked writes the matches for query as a table, best first, with their costs.
func printRanked(w io.Writer, query string, pool []domain.Item, limit int) {
	matches := rank.Scored(query, pool, limit)
	if len(matches) == 0 {
		fmt.Fprintf(w, "No matches for %q\n", query)
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "ID", "TEXT", "DETAIL", "COST"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("  ")
	for i, m := range matches {
		table.Append([]string{
			strconv.Itoa(i + 1),
			m.Item.ID(),
			m.Item.PrimaryText(),
			m.Item.SecondaryText(),
			strconv.FormatFloat(m.Cost, 'f', 3, 64),
		})
	}
	table.Render()
}
