package securerequests

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// CookieStore persists the client's cookie dictionary in SQLite via
// modernc.org/sqlite (pure Go), so cookies survive across processes.
type CookieStore struct {
	db *sql.DB
}

// NewCookieStore opens (or creates) the store at dbPath; use ":memory:"
// for testing.
func NewCookieStore(dbPath string) (*CookieStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("cookiestore: open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cookiestore: ping database: %w", err)
	}

	createTableSQL := `
		CREATE TABLE IF NOT EXISTS cookies (
			name       TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("cookiestore: create table: %w", err)
	}

	return &CookieStore{db: db}, nil
}

// Save upserts a serialized cookie value under its name.
func (s *CookieStore) Save(ctx context.Context, name, value string) error {
	query := `
		INSERT INTO cookies (name, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query, name, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("cookiestore: save cookie: %w", err)
	}
	return nil
}

// LoadAll returns every persisted cookie as a name → serialized-value map.
func (s *CookieStore) LoadAll(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, value FROM cookies`)
	if err != nil {
		return nil, fmt.Errorf("cookiestore: load cookies: %w", err)
	}
	defer rows.Close()

	cookies := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("cookiestore: scan cookie: %w", err)
		}
		cookies[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cookiestore: iterate cookies: %w", err)
	}
	return cookies, nil
}

// Delete removes a cookie by name. Deleting an absent name is not an error.
func (s *CookieStore) Delete(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cookies WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("cookiestore: delete cookie: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *CookieStore) Close() error {
	return s.db.Close()
}
