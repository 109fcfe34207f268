package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"typeahead/internal/ui"
)

const helpWidth = 72

// keyHelpMarkdown lays the key map out as a markdown table.
func keyHelpMarkdown(keys ui.KeyMap) string {
	var b strings.Builder
	b.WriteString("# typeahead keys\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, row := range keys.HelpRows() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", row[0], row[1])
	}
	b.WriteString("\nSelected ids are printed one per line when the picker finishes.\n")
	return b.String()
}

func printKeyHelp(w io.Writer, keys ui.KeyMap, plain bool) error {
	style := "dark"
	if plain {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(helpWidth),
	)
	if err != nil {
		return fmt.Errorf("create help renderer: %w", err)
	}
	out, err := renderer.Render(keyHelpMarkdown(keys))
	if err != nil {
		return fmt.Errorf("render help: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
