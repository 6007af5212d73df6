package prefs

import (
	"context"
	"database/sql"

	"fieldsync/internal/adapters/storage"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new preference store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves the value stored under a key.
// PRE: key is non-empty
// POST: Returns the value, or ErrNotFound if the key is absent
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM pref WHERE key = ?", key)
	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return value, err
}

// Set stores a value under a key, replacing any previous value.
// PRE: key is non-empty
// POST: Value is persisted (insert or update)
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO pref (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value",
		key, value,
	)
	return err
}

// Delete removes a key. Deleting an absent key is a no-op.
// PRE: key is non-empty
// POST: Key is absent
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM pref WHERE key = ?", key)
	return err
}
