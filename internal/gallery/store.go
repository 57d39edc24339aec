package gallery

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/codealpha/showcase/internal/db"
)

// Store persists the catalog so every session loads the same ordered list.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// ImportKind records where a catalog came from.
type ImportKind string

const (
	ImportDirectory ImportKind = "directory"
	ImportManifest  ImportKind = "manifest"
)

// Replace swaps the stored catalog for items, in order, and records the import.
// Items without an ID get a UUID.
func (s *Store) Replace(ctx context.Context, kind ImportKind, source string, items []Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM gallery_items`); err != nil {
		return fmt.Errorf("clearing gallery items: %w", err)
	}

	for i, it := range items {
		if it.ID == "" {
			it.ID = ItemID(uuid.New().String())
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO gallery_items (id, position, title, category, src, alt)
			VALUES (?, ?, ?, ?, ?, ?)`,
			string(it.ID), i, it.Title, it.Category, it.Image.Src, it.Image.Alt,
		)
		if err != nil {
			return fmt.Errorf("inserting gallery item %q: %w", it.Title, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO gallery_imports (id, source, kind, item_count) VALUES (?, ?, ?, ?)`,
		uuid.New().String(), source, string(kind), len(items),
	)
	if err != nil {
		return fmt.Errorf("recording import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing gallery import: %w", err)
	}
	return nil
}

// Items returns the stored items in display order.
func (s *Store) Items(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, category, src, alt
		FROM gallery_items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying gallery items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var id string
		if err := rows.Scan(&id, &it.Title, &it.Category, &it.Image.Src, &it.Image.Alt); err != nil {
			return nil, fmt.Errorf("scanning gallery item: %w", err)
		}
		it.ID = ItemID(id)
		items = append(items, it)
	}
	return items, rows.Err()
}

// Load reads the stored items into a catalog.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(items)
}

// Count returns the number of stored items.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gallery_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting gallery items: %w", err)
	}
	return n, nil
}

// Import is one recorded catalog import.
type Import struct {
	Source    string     `json:"source"`
	Kind      ImportKind `json:"kind"`
	ItemCount int        `json:"item_count"`
}

// LastImport returns the most recent import, or nil if there was none.
func (s *Store) LastImport(ctx context.Context) (*Import, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source, kind, item_count FROM gallery_imports
		ORDER BY imported_at DESC, rowid DESC LIMIT 1`)
	if err != nil {
		return nil, fmt.Errorf("querying imports: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var imp Import
	var kind string
	if err := rows.Scan(&imp.Source, &kind, &imp.ItemCount); err != nil {
		return nil, fmt.Errorf("scanning import: %w", err)
	}
	imp.Kind = ImportKind(kind)
	return &imp, nil
}
