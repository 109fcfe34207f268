package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"typeahead/internal/config"
	"typeahead/internal/debug"
	"typeahead/internal/ui"
)

// exitAborted matches the shell convention for a run cancelled with Ctrl+C.
const exitAborted = 130

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	keysFlag := flag.Bool("keys", false, "Print the key bindings and exit")
	debugFlag := flag.Bool("debug", false, "Write a debug log (see debug.log-path)")
	noColorFlag := flag.Bool("no-color", false, "Disable colors")
	catalogFlag := flag.String("catalog", strings.Join(config.GetStringSlice(config.KeyCatalogPaths), ","), "Comma separated catalog files (.json, .yaml, .toml, .db)")
	dbFlag := flag.String("db", config.GetString(config.KeyCatalogDatabase), "SQLite catalog database")
	maxItemsFlag := flag.Int("max-items", config.GetInt(config.KeyMaxItems), "Maximum number of selected items")
	boxLengthFlag := flag.Int("box-length", config.GetInt(config.KeyBoxLength), "Maximum number of dropdown rows")
	widthFlag := flag.Int("width", config.GetInt(config.KeyWidth), "Picker width in cells")
	placeholderFlag := flag.String("placeholder", config.GetString(config.KeyPlaceholder), "Input placeholder text")
	selectFlag := flag.String("select", "", "Comma separated ids selected at start")
	queryFlag := flag.String("query", "", "Print the ranked matches for a query and exit")
	titleFlag := flag.String("title", "", "Line shown above the picker")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}
	if *noColorFlag {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if *keysFlag {
		if err := printKeyHelp(os.Stdout, ui.DefaultKeyMap(), *noColorFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	if err := config.ApplyOverrides(flagOverrides(runtimeFlags{
		catalog:     catalogFlag,
		db:          dbFlag,
		maxItems:    maxItemsFlag,
		boxLength:   boxLengthFlag,
		width:       widthFlag,
		placeholder: placeholderFlag,
	}, visited)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := debug.Init(*debugFlag, config.GetString(config.KeyDebugLogPath)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if debug.Enabled() {
		fmt.Fprintf(os.Stderr, "Debug log: %s\n", debug.Path())
	}

	styles := ui.DefaultStyles()
	if *noColorFlag {
		styles = ui.PlainStyles()
	}
	code := run(context.Background(), runRequest{
		query:      *queryFlag,
		queryMode:  isVisited(visited, "query"),
		initialIDs: splitList(*selectFlag),
		styles:     styles,
		title:      *titleFlag,
	})
	debug.Close()
	os.Exit(code)
}

type runRequest struct {
	query      string
	queryMode  bool
	initialIDs []string
	styles     ui.Styles
	title      string
}

// run loads the catalog and either prints ranked matches or runs the picker.
// It returns the process exit code.
func run(ctx context.Context, req runRequest) int {
	opts, err := selectionOptions()
	if err != nil {
		debug.Logf("selection options: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	sources := catalogSources()
	pool, err := loadPool(ctx, sources)
	if err != nil {
		debug.Logf("load catalog %v: %v", sources, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if req.queryMode {
		printRanked(os.Stdout, req.query, pool, opts.BoxLength)
		return 0
	}

	return runInteractive(os.Stdout, interactiveConfig{
		opts:        opts,
		pool:        pool,
		initialIDs:  req.initialIDs,
		styles:      req.styles,
		width:       config.GetInt(config.KeyWidth),
		placeholder: config.GetString(config.KeyPlaceholder),
		title:       req.title,
	}, func(app ui.App) programRunner {
		return tea.NewProgram(app, tea.WithMouseCellMotion(), tea.WithReportFocus(), tea.WithOutput(os.Stderr))
	})
}

func isVisited(visited map[string]struct{}, name string) bool {
	_, ok := visited[name]
	return ok
}

type runtimeFlags struct {
	catalog     *string
	db          *string
	maxItems    *int
	boxLength   *int
	width       *int
	placeholder *string
}

// flagOverrides returns the config values set explicitly on the command line.
// Flags left at their defaults keep whatever the config layers resolved.
func flagOverrides(flags runtimeFlags, visited map[string]struct{}) map[string]any {
	overrides := map[string]any{}
	if isVisited(visited, "catalog") {
		overrides[config.KeyCatalogPaths] = splitList(*flags.catalog)
	}
	if isVisited(visited, "db") {
		overrides[config.KeyCatalogDatabase] = strings.TrimSpace(*flags.db)
	}
	if isVisited(visited, "max-items") {
		overrides[config.KeyMaxItems] = *flags.maxItems
	}
	if isVisited(visited, "box-length") {
		overrides[config.KeyBoxLength] = *flags.boxLength
	}
	if isVisited(visited, "width") {
		overrides[config.KeyWidth] = *flags.width
	}
	if isVisited(visited, "placeholder") {
		overrides[config.KeyPlaceholder] = *flags.placeholder
	}
	return overrides
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
