// Package sqlite provides a SQLite-backed contribution cache implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/daisuke8000/grass-fireworks/internal/platform/storage/sqlitemigrate"
	"github.com/daisuke8000/grass-fireworks/internal/services/fireworks/storage"
	"github.com/daisuke8000/grass-fireworks/internal/services/fireworks/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists daily contribution counts in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite contribution cache and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Put upserts the cached count for one user and day.
func (s *Store) Put(ctx context.Context, entry storage.ContributionEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	username := strings.TrimSpace(entry.Username)
	if username == "" {
		return fmt.Errorf("username is required")
	}
	day := strings.TrimSpace(entry.Day)
	if day == "" {
		return fmt.Errorf("day is required")
	}
	if entry.Count < 0 {
		return fmt.Errorf("count must not be negative")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO contribution_counts (username, day, count, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(username, day) DO UPDATE SET
		   count = excluded.count,
		   fetched_at = excluded.fetched_at`,
		username,
		day,
		entry.Count,
		toMillis(entry.FetchedAt),
	)
	if err != nil {
		return fmt.Errorf("put contribution count: %w", err)
	}
	return nil
}

// Get returns the cached count for one user and day. The second return
// reports whether an entry was found.
func (s *Store) Get(ctx context.Context, username, day string) (storage.ContributionEntry, bool, error) {
	if err := ctx.Err(); err != nil {
		return storage.ContributionEntry{}, false, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ContributionEntry{}, false, fmt.Errorf("storage is not configured")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return storage.ContributionEntry{}, false, fmt.Errorf("username is required")
	}
	day = strings.TrimSpace(day)
	if day == "" {
		return storage.ContributionEntry{}, false, fmt.Errorf("day is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT username, day, count, fetched_at
		 FROM contribution_counts
		 WHERE username = ? AND day = ?`,
		username,
		day,
	)
	var entry storage.ContributionEntry
	var fetchedAt int64
	if err := row.Scan(&entry.Username, &entry.Day, &entry.Count, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return storage.ContributionEntry{}, false, nil
		}
		return storage.ContributionEntry{}, false, fmt.Errorf("get contribution count: %w", err)
	}
	entry.FetchedAt = fromMillis(fetchedAt)
	return entry, true, nil
}

// PruneBefore deletes entries for days strictly older than the cutoff
// day. Stale rows are harmless but the table grows one row per user per
// day, so the server prunes on startup.
func (s *Store) PruneBefore(ctx context.Context, day string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	day = strings.TrimSpace(day)
	if day == "" {
		return 0, fmt.Errorf("day is required")
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM contribution_counts WHERE day < ?`, day)
	if err != nil {
		return 0, fmt.Errorf("prune contribution counts: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune contribution counts: %w", err)
	}
	return affected, nil
}
