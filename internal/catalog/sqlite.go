package catalog

import (
	"context"
	"database/sql"
	"net/url"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"typeahead/internal/domain"
)

// LoadSQLite reads a catalog database in read-only mode. Items come from the
// items table ordered by position; search tokens come from item_tokens.
//
//	items(id TEXT PRIMARY KEY, display TEXT, text TEXT, secondary TEXT, position INTEGER)
//	item_tokens(item_id TEXT, token TEXT, position INTEGER)
func LoadSQLite(ctx context.Context, dbPath string) ([]domain.Item, error) {
	dbPath = strings.TrimSpace(dbPath)
	db, err := openReadOnly(ctx, dbPath)
	if err != nil {
		return nil, loadError(dbPath, err)
	}
	defer func() {
		_ = db.Close()
	}()

	tokens, err := queryTokens(ctx, db)
	if err != nil {
		return nil, loadError(dbPath, err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, display, text, secondary
		FROM items
		ORDER BY position, rowid
	`)
	if err != nil {
		return nil, loadError(dbPath, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []Record
	for rows.Next() {
		var (
			id                       string
			display, text, secondary sql.NullString
		)
		if err := rows.Scan(&id, &display, &text, &secondary); err != nil {
			return nil, loadError(dbPath, err)
		}
		records = append(records, Record{
			ID:        id,
			Display:   display.String,
			Text:      text.String,
			Secondary: secondary.String,
			Tokens:    tokens[id],
		})
	}
	if err := rows.Err(); err != nil {
		return nil, loadError(dbPath, err)
	}
	return FromRecords(records)
}

func queryTokens(ctx context.Context, db *sql.DB) (map[string][]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT item_id, token
		FROM item_tokens
		ORDER BY item_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	tokens := make(map[string][]string)
	for rows.Next() {
		var id, token string
		if err := rows.Scan(&id, &token); err != nil {
			return nil, err
		}
		tokens[id] = append(tokens[id], token)
	}
	return tokens, rows.Err()
}

func openReadOnly(ctx context.Context, dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", buildReadOnlyDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// buildReadOnlyDSN creates a read-only DSN for the given path.
func buildReadOnlyDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}
