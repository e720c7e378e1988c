package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

// SQLiteStore keeps collections as ordered rows of JSON payloads in a SQLite file
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if needed) the database at path and applies the schema.
// ":memory:" opens a private in-memory database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	if err := applySchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func applySchema(ctx context.Context, db *sql.DB) error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Load reads the rows of a collection in sequence order
func (s *SQLiteStore) Load(collection string, out interface{}) error {
	rows, err := s.db.Query(`SELECT payload FROM collection_records WHERE collection = ? ORDER BY seq ASC`, collection)
	if err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	defer rows.Close()

	var parts []json.RawMessage
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return fmt.Errorf("load %s: %w", collection, err)
		}
		parts = append(parts, json.RawMessage(payload))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}

	return joinRecords(parts, out)
}

// Save replaces every row of a collection inside one transaction
func (s *SQLiteStore) Save(collection string, records interface{}) error {
	parts, err := splitRecords(records)
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM collection_records WHERE collection = ?`, collection); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO collection_records (collection, seq, payload) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	defer stmt.Close()

	for i, part := range parts {
		if _, err := stmt.Exec(collection, i, string(part)); err != nil {
			return fmt.Errorf("save %s: %w", collection, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

// Ping checks the database connection
func (s *SQLiteStore) Ping() error {
	return s.db.Ping()
}

// Close releases the database resources
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
