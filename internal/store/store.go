// Package store persists snapshots of the model so a session can be resumed.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/unit-economics/internal/config"
	"github.com/iwvelando/unit-economics/internal/economics"
	"github.com/iwvelando/unit-economics/pkg/constants"
)

// SnapshotVersion is the envelope version written by this package.
const SnapshotVersion = 1

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot saved")

// Store saves and restores one named model snapshot.
type Store interface {
	Load(ctx context.Context) (economics.Model, error)
	Save(ctx context.Context, m economics.Model) error
	Close() error
}

// Snapshot is the persisted envelope around a model.
type Snapshot struct {
	Version int             `yaml:"version" json:"version"`
	SavedAt time.Time       `yaml:"savedAt" json:"savedAt"`
	Model   economics.Model `yaml:"model" json:"model"`
}

// now is replaced in tests.
var now = time.Now

func newSnapshot(m economics.Model) Snapshot {
	return Snapshot{
		Version: SnapshotVersion,
		SavedAt: now().UTC(),
		Model:   m.Clone(),
	}
}

// model returns the stored model with empty lists as nil, whichever way the
// encoding wrote them.
func (s Snapshot) model() economics.Model {
	return s.Model.Clone()
}

func (s Snapshot) check() error {
	if s.Version < 1 || s.Version > SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", s.Version)
	}
	return nil
}

// Open creates the store selected by cfg. Empty settings take their
// defaults.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	cfg = cfg.WithDefaults()
	switch cfg.Backend {
	case constants.StorageBackendFile:
		return NewFileStore(cfg.Path), nil
	case constants.StorageBackendSQLite:
		s, err := OpenSQLite(ctx, cfg.Path, cfg.Name)
		if err != nil {
			return nil, err
		}
		return s, nil
	case constants.StorageBackendRedis:
		s, err := OpenRedis(ctx, cfg.Redis, cfg.Name)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
}
