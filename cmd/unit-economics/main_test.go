package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/iwvelando/unit-economics/internal/economics"
	"github.com/iwvelando/unit-economics/internal/store"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, dir, extra string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	content := "logging:\n  level: error\n  format: json\n  outputFile: " + filepath.Join(dir, "run.log") + "\n" +
		"storage:\n  backend: file\n  path: " + filepath.Join(dir, "snapshot.yaml") + "\n" + extra
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestRunCSV(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	if err := run([]string{"-config", writeConfig(t, dir, ""), "-output-format", "csv"}, &stdout); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Total Revenue,43920.90\n") {
		t.Errorf("unexpected CSV output:\n%s", stdout.String())
	}
}

func TestRunInvalidOutputFormat(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	err := run([]string{"-config", writeConfig(t, dir, ""), "-output-format", "xml"}, &stdout)
	if err == nil || !strings.Contains(err.Error(), "output.format") {
		t.Fatalf("expected output format error, got %v", err)
	}
}

func TestRunMissingConfig(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, &stdout); err == nil {
		t.Fatal("expected an error for a missing configuration")
	}
}

func TestRunSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfig(t, dir, "wholesale:\n  minOrder: 100\n  materials: 2.5\n  markup: 50\n  orderVolume: 2\n")

	var stdout bytes.Buffer
	if err := run([]string{"-config", configPath, "-output-format", "json", "-save"}, &stdout); err != nil {
		t.Fatalf("run() with -save error = %v", err)
	}

	saved, err := store.NewFileStore(filepath.Join(dir, "snapshot.yaml")).Load(context.Background())
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if saved.Wholesale.MinOrder != 100 {
		t.Errorf("saved model has minOrder %d, want 100", saved.Wholesale.MinOrder)
	}

	// A config without the wholesale section, loading the snapshot, must
	// still compute from the saved wholesale figures.
	plain := writeConfig(t, dir, "")
	stdout.Reset()
	if err := run([]string{"-config", plain, "-output-format", "csv", "-load"}, &stdout); err != nil {
		t.Fatalf("run() with -load error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Wholesale Revenue,750.00\n") {
		t.Errorf("expected wholesale revenue from the snapshot:\n%s", stdout.String())
	}
}

func TestRunLoadWithoutSnapshotFallsBack(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	if err := run([]string{"-config", writeConfig(t, dir, ""), "-output-format", "csv", "-load"}, &stdout); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Wholesale Revenue,8424.00\n") {
		t.Errorf("expected the configured model when no snapshot exists:\n%s", stdout.String())
	}
}

func TestLoadSnapshotReturnsStoredModel(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(filepath.Join(dir, "snapshot.yaml"))
	m := economics.DefaultModel()
	m.Custom.SalesPlan.Buckets = nil
	m.Custom.Decoration = ""
	if err := s.Save(context.Background(), m); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := loadSnapshot(context.Background(), zap.NewNop(), s, economics.Model{})
	if !reflect.DeepEqual(loaded, m) {
		t.Errorf("loaded snapshot differs from the saved model:\n got %+v\nwant %+v", loaded.Custom, m.Custom)
	}
}
