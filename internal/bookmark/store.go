// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bookmark persists the flat list of bookmarked listing IDs in a
// SQLite database. Bookmarks keep the order in which they were first added.
package bookmark

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/praxis-listings/pkg/types"
)

const dbFile = "bookmarks.db"

// Store manages the bookmark database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates DataDir/bookmarks.db and its schema.
func NewStore(cfg types.BookmarkConfig) (*Store, error) {
	dir := cfg.DataDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS bookmarks (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id TEXT NOT NULL UNIQUE,
		added_at TEXT NOT NULL
	)`)
	return err
}

// Add bookmarks id. Adding an existing bookmark is a no-op and keeps its
// original position. It reports whether the bookmark is new.
func (s *Store) Add(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, fmt.Errorf("bookmark id is required")
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO bookmarks (item_id, added_at) VALUES (?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("adding bookmark %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("adding bookmark %s: %w", id, err)
	}
	return n > 0, nil
}

// Remove deletes id and reports whether it was bookmarked.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE item_id = ?`, strings.TrimSpace(id))
	if err != nil {
		return false, fmt.Errorf("removing bookmark %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("removing bookmark %s: %w", id, err)
	}
	return n > 0, nil
}

// List returns every bookmarked ID in insertion order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT item_id FROM bookmarks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Has reports whether id is bookmarked.
func (s *Store) Has(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM bookmarks WHERE item_id = ?`, strings.TrimSpace(id)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking bookmark %s: %w", id, err)
	}
	return n > 0, nil
}

// Clear removes all bookmarks and returns how many there were.
func (s *Store) Clear(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks`)
	if err != nil {
		return 0, fmt.Errorf("clearing bookmarks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing bookmarks: %w", err)
	}
	return int(n), nil
}

// Filter keeps the items whose IDs are bookmarked, in their given order.
func (s *Store) Filter(ctx context.Context, items []types.ContentItem) ([]types.ContentItem, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	marked := make(map[string]bool, len(ids))
	for _, id := range ids {
		marked[id] = true
	}

	out := make([]types.ContentItem, 0, len(ids))
	for _, it := range items {
		if marked[it.ID] {
			out = append(out, it)
		}
	}
	return out, nil
}
