// LingoTeach - language-teaching voice skill backend
// License: MIT

package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS preferences (
	id       TEXT PRIMARY KEY,
	language TEXT NOT NULL
)`

// SQLiteStore keeps preferences in a local SQLite database.
// Used for local runs where no DynamoDB table is available.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create preferences table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, identity string) (string, bool, error) {
	var code string
	err := s.db.QueryRowContext(ctx,
		"SELECT language FROM preferences WHERE id = ?", identity).Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference: %w", err)
	}
	return code, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, identity, code string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (id, language) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET language = excluded.language`,
		identity, code)
	if err != nil {
		return fmt.Errorf("put preference: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
