// Package store persists provider credentials in SQLite. Absence of a
// credential is a valid, expected state for every consumer.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err = store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS credentials (
        name TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

// GetCredential looks up a credential by name. The second return value is
// false when the credential is absent; absence is not an error.
func (s *SQLiteStore) GetCredential(name string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM credentials WHERE name = ?", name).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// SetCredential stores or replaces a credential.
func (s *SQLiteStore) SetCredential(name, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO credentials (name, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		name, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

// ClearCredential removes a credential. Clearing an absent credential is a
// no-op.
func (s *SQLiteStore) ClearCredential(name string) error {
	_, err := s.db.Exec("DELETE FROM credentials WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

// ListCredentialNames returns the names of all stored credentials, never
// their values.
func (s *SQLiteStore) ListCredentialNames() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM credentials ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan credential name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
