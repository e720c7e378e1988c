// Package storage persists whole record collections. Every backend loads and saves a
// collection as one ordered sequence; there is no partial update.
package storage

import (
	"encoding/json"
	"fmt"
	"reflect"

	"team-board-backend/internal/config"
	"team-board-backend/internal/database"
	apperrors "team-board-backend/internal/errors"
)

// Collection names
const (
	CollectionUsers       = "users"
	CollectionTeams       = "teams"
	CollectionMemberships = "user_team_links"
	CollectionBoards      = "boards"
	CollectionTasks       = "tasks"
)

// Collections lists every collection the application persists
var Collections = []string{
	CollectionUsers,
	CollectionTeams,
	CollectionMemberships,
	CollectionBoards,
	CollectionTasks,
}

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// Store is a durable whole-collection store.
//
// Load decodes the named collection into out, which must be a pointer to a slice. A
// collection that was never saved loads as an empty slice. Save replaces the named
// collection with records, which must be a slice.
type Store interface {
	Load(collection string, out interface{}) error
	Save(collection string, records interface{}) error
	Ping() error
	Close() error
}

// Open builds the store selected by cfg.StorageBackend
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case config.StorageFile:
		return NewFileStore(cfg.DataDir)
	case config.StorageSQLite:
		return OpenSQLite(cfg.SQLitePath)
	case config.StoragePostgres:
		return OpenPostgres(cfg.DatabaseURL, &database.Options{ConnectAttempts: cfg.DBConnectRetries})
	case config.StorageMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownStorageBackend, cfg.StorageBackend)
	}
}

// splitRecords encodes each element of the records slice as its own JSON document
func splitRecords(records interface{}) ([]json.RawMessage, error) {
	if records == nil {
		return []json.RawMessage{}, nil
	}
	if kind := reflect.TypeOf(records).Kind(); kind != reflect.Slice && kind != reflect.Array {
		return nil, fmt.Errorf("records must be a slice, got %T", records)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil, fmt.Errorf("split records: %w", err)
	}
	if parts == nil {
		parts = []json.RawMessage{}
	}
	return parts, nil
}

// joinRecords decodes a sequence of JSON documents into out, a pointer to a slice
func joinRecords(parts []json.RawMessage, out interface{}) error {
	if parts == nil {
		parts = []json.RawMessage{}
	}
	raw, err := json.Marshal(parts)
	if err != nil {
		return fmt.Errorf("join records: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode records: %w", err)
	}
	return nil
}
