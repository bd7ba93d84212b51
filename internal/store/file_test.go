package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/unit-economics/internal/economics"
)

func TestFileStore(t *testing.T) {
	exerciseStore(t, NewFileStore(filepath.Join(t.TempDir(), "nested", "snapshot.yaml")))
}

func TestFileStore_LeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "snapshot.yaml"))

	if err := s.Save(context.Background(), economics.DefaultModel()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "snapshot.yaml" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected directory contents: %v", names)
	}

	content, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, key := range []string{"version: 1", "savedAt:", "customPackages:", "fixedCosts:"} {
		if !strings.Contains(string(content), key) {
			t.Errorf("snapshot file missing %q", key)
		}
	}
}

func TestFileStore_CorruptSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "model: [oops"},
		{"wrong shape", "model:\n  wholesale: 12\n"},
		{"unknown version", "version: 9\nmodel: {}\n"},
		{"missing version", "model: {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "snapshot.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			_, err := NewFileStore(path).Load(context.Background())
			if err == nil {
				t.Fatal("expected a decode error")
			}
			if errors.Is(err, ErrNoSnapshot) {
				t.Fatal("corrupt snapshot must not be reported as missing")
			}
		})
	}
}

func TestFileStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewFileStore(filepath.Join(t.TempDir(), "snapshot.yaml"))
	if err := s.Save(ctx, economics.DefaultModel()); !errors.Is(err, context.Canceled) {
		t.Errorf("Save() error = %v, want context.Canceled", err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}
