// Package storage holds the client's persisted state: the session token and
// user profile, kept in a prefixed key/value store so collaborators never
// touch ambient global storage directly.
package storage

import (
	"database/sql"

	"time-tracker-client/internal/errors"

	_ "modernc.org/sqlite"
)

// Store is the session-store capability injected into collaborators that
// need persisted client state. Keys are namespaced by the application prefix
// before hitting disk.
type Store interface {
	// Get returns the value for a key and whether it exists.
	Get(key string) (string, bool, error)

	// Set stores a value under a key, replacing any previous value.
	Set(key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error

	// Clear removes every key under the application prefix.
	Clear() error

	// Close releases the underlying store.
	Close() error
}

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	prefix string
}

// New opens (or creates) the store at the given path. Keys are namespaced
// with the application prefix. Use ":memory:" for tests.
func New(dbPath, prefix string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open client state store", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS client_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewStorageError("initialize client state store", err)
	}

	return &SQLiteStore{db: db, prefix: prefix}, nil
}

// Get returns the value for a key and whether it exists.
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		`SELECT value FROM client_state WHERE key = ?`, s.prefix+key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewStorageError("read client state", err)
	}
	return value, true, nil
}

// Set stores a value under a key, replacing any previous value.
func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO client_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		s.prefix+key, value,
	)
	if err != nil {
		return errors.NewStorageError("write client state", err)
	}
	return nil
}

// Delete removes a key.
func (s *SQLiteStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM client_state WHERE key = ?`, s.prefix+key)
	if err != nil {
		return errors.NewStorageError("delete client state", err)
	}
	return nil
}

// Clear removes every key under the application prefix. The prefix is
// matched literally with substr rather than LIKE, since prefixes such as
// "timetracker_" contain LIKE wildcards and would otherwise bleed into
// sibling namespaces sharing the database.
func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(
		`DELETE FROM client_state WHERE substr(key, 1, ?) = ?`,
		len(s.prefix), s.prefix,
	)
	if err != nil {
		return errors.NewStorageError("clear client state", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
