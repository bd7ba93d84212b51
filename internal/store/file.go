package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iwvelando/unit-economics/internal/economics"
	"gopkg.in/yaml.v3"
)

// FileStore keeps a single snapshot in a YAML file.
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to path. The file is created on the
// first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the snapshot file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot file.
func (s *FileStore) Load(ctx context.Context) (economics.Model, error) {
	if err := ctx.Err(); err != nil {
		return economics.Model{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return economics.Model{}, ErrNoSnapshot
		}
		return economics.Model{}, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return economics.Model{}, fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}
	if err := snapshot.check(); err != nil {
		return economics.Model{}, fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}
	return snapshot.model(), nil
}

// Save writes the snapshot to a temporary file next to the target and renames
// it into place, so a reader never sees a partial file.
func (s *FileStore) Save(ctx context.Context, m economics.Model) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(newSnapshot(m)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.yaml")
	if err != nil {
		return fmt.Errorf("create temporary snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temporary snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temporary snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for file stores.
func (s *FileStore) Close() error {
	return nil
}
