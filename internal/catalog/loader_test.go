package catalog

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"typeahead/internal/domain"
	appErrors "typeahead/internal/errors"
)

const fruitJSON = `{
  "items": [
    {"id": "apple", "text": "Apple", "secondary": "Red fruit", "tokens": ["pome"]},
    {"id": "banana", "display": "🍌", "text": "Banana"}
  ]
}`

const fruitYAML = `
items:
  - id: cherry
    text: Cherry
    secondary: Stone fruit
  - id: grape
    text: Grape
    tokens: [vine, wine]
`

const fruitTOML = `
[[items]]
id = "kiwi"
text = "Kiwi"

[[items]]
id = "lemon"
text = "Lemon"
tokens = ["citrus"]
`

func TestLoadFileFormats(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
		wantIDs []string
	}{
		{"JSON", "fruit.json", fruitJSON, []string{"apple", "banana"}},
		{"YAML", "fruit.yaml", fruitYAML, []string{"cherry", "grape"}},
		{"YML", "fruit.yml", fruitYAML, []string{"cherry", "grape"}},
		{"TOML", "fruit.toml", fruitTOML, []string{"kiwi", "lemon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, dir, tt.file, tt.content)
			items, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile returned error: %v", err)
			}
			if diff := cmp.Diff(tt.wantIDs, domain.IDs(items)); diff != "" {
				t.Fatalf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFileFields(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), "fruit.json", fruitJSON)
	items, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}

	want := []domain.Item{
		domain.MustItem("apple", "", "Apple", "Red fruit", "pome"),
		domain.MustItem("banana", "🍌", "Banana", ""),
	}
	if diff := cmp.Diff(want, items, cmp.Comparer(domain.Item.Equal)); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if got := items[0].SelectedDisplay(); got != "Apple" {
		t.Fatalf("expected display to fall back to text, got %q", got)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode appErrors.Code
	}{
		{"Unsupported", "fruit.csv", "id,text\n", appErrors.CodeUnsupported},
		{"Malformed", "fruit.json", `{"items": [`, appErrors.CodeParseFailed},
		{"UnknownField", "fruit.yaml", "items:\n  - id: a\n    colour: red\n", appErrors.CodeParseFailed},
		{"BlankID", "fruit.toml", "[[items]]\nid = \" \"\n", appErrors.CodeInvalidItem},
		{"Duplicate", "fruit.json", `{"items": [{"id": "a"}, {"id": "a"}]}`, appErrors.CodeDuplicateItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, dir, tt.name+"-"+tt.file, tt.content)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := appErrors.CodeOf(err); got != tt.wantCode {
				t.Fatalf("expected code %s, got %s (%v)", tt.wantCode, got, err)
			}
		})
	}

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "absent.json"))
		if !appErrors.IsCode(err, appErrors.CodeCatalogLoad) {
			t.Fatalf("expected catalog load error, got %v", err)
		}
	})
}

func TestLoadSQLite(t *testing.T) {
	dbPath := testCatalogDB(t)

	items, err := LoadSQLite(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("LoadSQLite returned error: %v", err)
	}

	want := []domain.Item{
		domain.MustItem("usr-2", "Alice", "Alice Liddell", "Platform team", "oncall", "sre"),
		domain.MustItem("usr-1", "", "Bob Builder", ""),
		domain.MustItem("usr-3", "", "usr-3", "Design"),
	}
	if diff := cmp.Diff(want, items, cmp.Comparer(domain.Item.Equal)); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSQLiteMissingDatabase(t *testing.T) {
	_, err := LoadSQLite(context.Background(), filepath.Join(t.TempDir(), "absent.db"))
	if !appErrors.IsCode(err, appErrors.CodeCatalogLoad) {
		t.Fatalf("expected catalog load error, got %v", err)
	}
}

func TestLoadConcatenatesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeCatalog(t, dir, "a.yaml", fruitYAML)
	jsonPath := writeCatalog(t, dir, "b.json", fruitJSON)
	dbPath := testCatalogDB(t)

	items, err := Load(context.Background(), yamlPath, dbPath, jsonPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []string{"cherry", "grape", "usr-2", "usr-1", "usr-3", "apple", "banana"}
	if diff := cmp.Diff(want, domain.IDs(items)); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsDuplicatesAcrossSources(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalog(t, dir, "a.json", fruitJSON)
	b := writeCatalog(t, dir, "b.yaml", "items:\n  - id: banana\n    text: Plantain\n")

	_, err := Load(context.Background(), a, b)
	if !appErrors.IsCode(err, appErrors.CodeDuplicateItem) {
		t.Fatalf("expected duplicate item error, got %v", err)
	}
}

func TestLoadPropagatesSourceError(t *testing.T) {
	dir := t.TempDir()
	good := writeCatalog(t, dir, "good.json", fruitJSON)

	_, err := Load(context.Background(), good, filepath.Join(dir, "bad.ini"))
	if !appErrors.IsCode(err, appErrors.CodeUnsupported) {
		t.Fatalf("expected unsupported error, got %v", err)
	}
}

func TestLoadNoSources(t *testing.T) {
	items, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %v", domain.IDs(items))
	}
}

func TestBuildReadOnlyDSN(t *testing.T) {
	got := buildReadOnlyDSN("/tmp/catalog.db")
	want := "file:///tmp/catalog.db?_busy_timeout=3000&mode=ro"
	if got != want {
		t.Fatalf("buildReadOnlyDSN() = %q, want %q", got, want)
	}
}

func writeCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// testCatalogDB creates a catalog database and returns its path.
func testCatalogDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	stmts := []string{
		`CREATE TABLE items (
			id TEXT PRIMARY KEY,
			display TEXT,
			text TEXT,
			secondary TEXT,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE item_tokens (
			item_id TEXT NOT NULL,
			token TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`INSERT INTO items VALUES
			('usr-1', NULL, 'Bob Builder', NULL, 2),
			('usr-2', 'Alice', 'Alice Liddell', 'Platform team', 1),
			('usr-3', NULL, NULL, 'Design', 3)`,
		`INSERT INTO item_tokens VALUES
			('usr-2', 'sre', 2),
			('usr-2', 'oncall', 1)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return dbPath
}
