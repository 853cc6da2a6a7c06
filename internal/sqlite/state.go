// Package sqlite provides the document-bound durable store: the registry
// blob kept in a SQLite cell table.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akwrites/penlight/internal/store"
)

// StateStore implements store.Store on an app_state row.
type StateStore struct {
	db  *DB
	key string
}

// NewStateStore creates a StateStore reading and writing the given key.
// An empty key uses store.StateKey.
func NewStateStore(db *DB, key string) *StateStore {
	if key == "" {
		key = store.StateKey
	}
	return &StateStore{db: db, key: key}
}

// Get retrieves the blob for the store's key.
func (s *StateStore) Get(ctx context.Context) ([]byte, bool, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT blob FROM app_state WHERE key = ?`, s.key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get state: %w", err)
	}
	return blob, true, nil
}

// Set writes the blob for the store's key, replacing any previous value.
func (s *StateStore) Set(ctx context.Context, blob []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, blob, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at
	`, s.key, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set state: %w", err)
	}
	return nil
}
