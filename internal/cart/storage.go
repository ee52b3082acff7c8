package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

// SlotStore persists the cart as a single JSON document under one well-known
// key in an embedded SQLite database — the storefront's durable local storage.
// There is no versioning or migration scheme; format changes are not backward
// compatible.
type SlotStore struct {
	db  *sql.DB
	key string
}

// OpenSlotStore opens (creating if needed) the storage database at path and
// binds the store to the given slot key.
func OpenSlotStore(path, key string) (*SlotStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cart: failed to open storage at %s: %w", path, err)
	}
	store, err := NewSlotStore(db, key)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewSlotStore wraps an existing database handle and ensures the slot table
// exists.
func NewSlotStore(db *sql.DB, key string) (*SlotStore, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	if err != nil {
		return nil, fmt.Errorf("cart: failed to create slot table: %w", err)
	}
	return &SlotStore{db: db, key: key}, nil
}

// Load reads the persisted cart list. An absent or corrupt slot value is
// treated as an empty cart, never as an error: the degraded state is logged
// and an empty list returned.
func (s *SlotStore) Load(ctx context.Context) []domain.CartItem {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?;`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.CartItem{}
	}
	if err != nil {
		log.WithError(err).Warn("failed to read cart slot, treating as empty")
		return []domain.CartItem{}
	}
	var items []domain.CartItem
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		log.WithError(err).Warn("corrupt cart slot value, treating as empty")
		return []domain.CartItem{}
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items
}

// Save serializes the full cart list and upserts it into the slot. The
// persisted value is always the complete, valid JSON serialization; there are
// no partial updates.
func (s *SlotStore) Save(ctx context.Context, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	value, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart: failed to serialize cart: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value;`,
		s.key, string(value))
	if err != nil {
		return fmt.Errorf("cart: failed to persist cart: %w", err)
	}
	return nil
}

// Ping reports whether the storage database is reachable.
func (s *SlotStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database handle.
func (s *SlotStore) Close() error {
	return s.db.Close()
}
