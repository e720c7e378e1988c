package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// legacyFileNames keeps the on-disk names used by existing data directories
var legacyFileNames = map[string]string{
	CollectionUsers:       "users.json",
	CollectionTeams:       "team.json",
	CollectionMemberships: "user_team_linking.json",
	CollectionBoards:      "board.json",
	CollectionTasks:       "task.json",
}

// FileStore keeps each collection as a JSON file inside one directory
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the data directory if needed and returns a store rooted at it
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("empty data directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file backing a collection
func (s *FileStore) Path(collection string) string {
	name, ok := legacyFileNames[collection]
	if !ok {
		name = collection + ".json"
	}
	return filepath.Join(s.dir, name)
}

// Load reads a collection file. The file may hold several JSON arrays one after
// another (one per line); their elements are concatenated in order.
func (s *FileStore) Load(collection string, out interface{}) error {
	f, err := os.Open(s.Path(collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return joinRecords(nil, out)
		}
		return fmt.Errorf("open %s: %w", collection, err)
	}
	defer f.Close()

	var parts []json.RawMessage
	dec := json.NewDecoder(f)
	for {
		var chunk []json.RawMessage
		if err := dec.Decode(&chunk); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("read %s: %w", collection, err)
		}
		parts = append(parts, chunk...)
	}

	return joinRecords(parts, out)
}

// Save writes the whole collection through a temporary file renamed over the old one
func (s *FileStore) Save(collection string, records interface{}) error {
	parts, err := splitRecords(records)
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	data, err := json.Marshal(parts)
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	if err := os.Rename(tmpName, s.Path(collection)); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

// Ping checks the data directory is still reachable
func (s *FileStore) Ping() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

// Close is a no-op for the file store
func (s *FileStore) Close() error {
	return nil
}
