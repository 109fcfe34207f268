// Package catalog loads candidate pools for the picker from files and SQLite databases.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"

	"typeahead/internal/domain"
)

// Record is the on-disk shape of one item.
type Record struct {
	ID        string   `json:"id" yaml:"id" toml:"id"`
	Display   string   `json:"display,omitempty" yaml:"display,omitempty" toml:"display,omitempty"`
	Text      string   `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Secondary string   `json:"secondary,omitempty" yaml:"secondary,omitempty" toml:"secondary,omitempty"`
	Tokens    []string `json:"tokens,omitempty" yaml:"tokens,omitempty" toml:"tokens,omitempty"`
}

type document struct {
	Items []Record `json:"items" yaml:"items" toml:"items"`
}

// Load reads every source concurrently and concatenates the results in argument
// order. A source is picked by extension: .json, .yaml, .yml and .toml are files,
// .db, .sqlite and .sqlite3 are databases. Ids must be unique across all sources.
func Load(ctx context.Context, sources ...string) ([]domain.Item, error) {
	results := make([][]domain.Item, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			items, err := loadSource(gctx, src)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.Item
	for _, items := range results {
		all = append(all, items...)
	}
	if err := domain.CheckUnique(all); err != nil {
		return nil, err
	}
	return all, nil
}

func loadSource(ctx context.Context, path string) ([]domain.Item, error) {
	switch ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path)
	default:
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return LoadFile(path)
	}
}

// LoadFile reads a JSON, YAML or TOML catalog. Each format holds a top-level
// "items" list of records; unknown fields are rejected.
func LoadFile(path string) ([]domain.Item, error) {
	decode, ok := decoders[ext(path)]
	if !ok {
		return nil, unsupportedError(path)
	}
	//nolint:gosec // G304: Catalog paths come from the user's own configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loadError(path, err)
	}
	var doc document
	if err := decode(data, &doc); err != nil {
		return nil, parseError(path, err)
	}
	items, err := FromRecords(doc.Items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// FromRecords converts records into items, rejecting blank and duplicate ids.
func FromRecords(records []Record) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(records))
	for i, r := range records {
		it, err := domain.NewItem(r.ID, r.Display, r.Text, r.Secondary, r.Tokens)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items = append(items, it)
	}
	if err := domain.CheckUnique(items); err != nil {
		return nil, err
	}
	return items, nil
}

var decoders = map[string]func([]byte, *document) error{
	".json": func(data []byte, doc *document) error {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(doc)
	},
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".toml": func(data []byte, doc *document) error {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(doc)
	},
}

func decodeYAML(data []byte, doc *document) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(doc)
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
