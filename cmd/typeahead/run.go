package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/catalog"
	"typeahead/internal/config"
	"typeahead/internal/debug"
	"typeahead/internal/domain"
	"typeahead/internal/selection"
	"typeahead/internal/ui"
)

var errNoSources = errors.New("no catalog sources: pass -catalog or -db, or set catalog.paths")

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(ui.App) programRunner

// selectionOptions builds picker options from the resolved configuration.
func selectionOptions() (selection.Options, error) {
	opts := selection.DefaultOptions()
	opts.MaxItems = config.GetInt(config.KeyMaxItems)
	opts.BoxLength = config.GetInt(config.KeyBoxLength)
	opts.SwallowEnterAfterCommit = config.GetBool(config.KeySwallowEnterAfterCommit)

	var err error
	if opts.HighlightReset, err = selection.ParseHighlightReset(config.GetString(config.KeyHighlightReset)); err != nil {
		return selection.Options{}, err
	}
	if opts.BackspaceRemove, err = selection.ParseBackspaceRemove(config.GetString(config.KeyBackspaceRemove)); err != nil {
		return selection.Options{}, err
	}
	if opts.CommitBox, err = selection.ParseCommitBox(config.GetString(config.KeyCommitBox)); err != nil {
		return selection.Options{}, err
	}
	return opts, nil
}

// catalogSources lists the configured files followed by the database, if any.
func catalogSources() []string {
	sources := config.GetStringSlice(config.KeyCatalogPaths)
	if db := strings.TrimSpace(config.GetString(config.KeyCatalogDatabase)); db != "" {
		sources = append(sources, db)
	}
	return sources
}

func loadPool(ctx context.Context, sources []string) ([]domain.Item, error) {
	if len(sources) == 0 {
		return nil, errNoSources
	}
	pool, err := catalog.Load(ctx, sources...)
	if err != nil {
		return nil, err
	}
	debug.Event("catalog.loaded", "sources", len(sources), "items", len(pool))
	return pool, nil
}

type interactiveConfig struct {
	opts        selection.Options
	pool        []domain.Item
	initialIDs  []string
	styles      ui.Styles
	width       int
	placeholder string
	title       string
}

// runInteractive runs the picker and prints the selected ids, one per line.
// It returns the process exit code.
func runInteractive(w io.Writer, cfg interactiveConfig, factory programFactory) int {
	app, err := buildApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if factory == nil {
		fmt.Fprintln(os.Stderr, "Error: program factory is nil")
		return 1
	}
	prog := factory(app)
	if prog == nil {
		fmt.Fprintln(os.Stderr, "Error: program is nil")
		return 1
	}
	final, err := prog.Run()
	if err != nil {
		debug.Logf("run UI: %v", err)
		fmt.Fprintf(os.Stderr, "Error: run UI: %v\n", err)
		return 1
	}
	done, ok := final.(ui.App)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unexpected final model %T\n", final)
		return 1
	}
	ids, aborted := done.Result()
	if aborted {
		return exitAborted
	}
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
	return 0
}

func buildApp(cfg interactiveConfig) (ui.App, error) {
	state, err := selection.New(cfg.opts, cfg.initialIDs, cfg.pool)
	if err != nil {
		return ui.App{}, fmt.Errorf("initialize picker: %w", err)
	}
	picker := ui.NewPicker(state, cfg.pool).WithStyles(cfg.styles)
	if cfg.placeholder != "" {
		picker = picker.WithPlaceholder(cfg.placeholder)
	}
	if cfg.width > 0 {
		picker = picker.WithWidth(cfg.width)
	}
	return ui.NewApp(picker, cfg.title), nil
}
