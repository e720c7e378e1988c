package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink persists a rendered report under a name and returns where it went
type Sink interface {
	Write(name string, data []byte) (string, error)
}

// FileSink writes reports into a directory, replacing any previous file of the same name
type FileSink struct {
	dir string
}

var _ Sink = (*FileSink)(nil)

// NewFileSink creates a sink rooted at dir
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// Write stores data as dir/name and returns that path. The data goes to a
// temporary file in the same directory that is then renamed over dir/name,
// so readers see either the previous export or the new one.
func (s *FileSink) Write(name string, data []byte) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid export file name %q", name)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temporary export: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("replace export: %w", err)
	}
	return path, nil
}
