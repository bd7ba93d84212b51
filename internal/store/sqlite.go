package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/iwvelando/unit-economics/internal/economics"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const sqliteDialect = "sqlite3"

//go:embed migrations/*.sql
var migrationFS embed.FS

// goose keeps its base filesystem and dialect in package state.
var migrateMu sync.Mutex

// SQLiteStore keeps named snapshots in a SQLite database, one row per name.
type SQLiteStore struct {
	db   *sql.DB
	name string
}

// OpenSQLite opens the database at path, applies pending migrations and
// returns a store for the snapshot called name.
func OpenSQLite(ctx context.Context, path, name string) (*SQLiteStore, error) {
	db, err := openDB(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, name: name}, nil
}

// openDB opens a SQLite database, sets the pragmas and validates connectivity.
func openDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return db, nil
}

// migrate runs all pending embedded migrations.
func migrate(db *sql.DB) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrationFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(sqliteDialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("run goose up migrations: %w", err)
	}
	return nil
}

// Load reads the snapshot row.
func (s *SQLiteStore) Load(ctx context.Context) (economics.Model, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE name = ?`, s.name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return economics.Model{}, ErrNoSnapshot
		}
		return economics.Model{}, fmt.Errorf("query snapshot %s: %w", s.name, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		return economics.Model{}, fmt.Errorf("decode snapshot %s: %w", s.name, err)
	}
	if err := snapshot.check(); err != nil {
		return economics.Model{}, fmt.Errorf("decode snapshot %s: %w", s.name, err)
	}
	return snapshot.model(), nil
}

// Save inserts or replaces the snapshot row.
func (s *SQLiteStore) Save(ctx context.Context, m economics.Model) error {
	snapshot := newSnapshot(m)
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, version, saved_at, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			version = excluded.version,
			saved_at = excluded.saved_at,
			payload = excluded.payload
	`, s.name, snapshot.Version, snapshot.SavedAt.Format(time.RFC3339Nano), string(payload))
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", s.name, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
