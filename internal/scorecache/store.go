package scorecache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"simcheck/internal/config"
)

// ErrLocked indicates another simcheck run holds the cache lock.
var ErrLocked = errors.New("score cache is locked by another run")

// Store manages score persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Open initializes or connects to the score database, acquires the run lock,
// and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.CacheDir, "scores.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	dbPath := filepath.Join(cfg.Paths.CacheDir, "scores.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, lock: lock, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

func (s *Store) applyMigrations(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS scores (
            digest1    TEXT NOT NULL,
            digest2    TEXT NOT NULL,
            mode       TEXT NOT NULL,
            score      REAL NOT NULL,
            created_at TEXT NOT NULL,
            PRIMARY KEY (digest1, digest2, mode)
        )`)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Close releases the database connection and the run lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && dbErr == nil {
			dbErr = err
		}
	}
	return dbErr
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Lookup returns the cached score for two canonical texts, if present.
func (s *Store) Lookup(ctx context.Context, canonical1, canonical2, mode string) (float64, bool, error) {
	d1, d2 := digestPair(canonical1, canonical2)

	var score float64
	err := s.db.QueryRowContext(ctx,
		`SELECT score FROM scores WHERE digest1 = ? AND digest2 = ? AND mode = ?`,
		d1, d2, mode,
	).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup score: %w", err)
	}
	return score, true, nil
}

// Save stores the score for two canonical texts, replacing any previous entry.
func (s *Store) Save(ctx context.Context, canonical1, canonical2, mode string, score float64) error {
	d1, d2 := digestPair(canonical1, canonical2)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO scores (digest1, digest2, mode, score, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		d1, d2, mode, score, now,
	)
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}

// Clear removes every cached score.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scores`); err != nil {
		return fmt.Errorf("clear scores: %w", err)
	}
	return nil
}

// Stats describes the cache contents.
type Stats struct {
	Entries   int64
	SizeBytes int64
	Path      string
}

// Stats reports the number of cached scores and the database size on disk.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Path: s.path}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scores`).Scan(&stats.Entries); err != nil {
		return Stats{}, fmt.Errorf("count scores: %w", err)
	}
	if info, err := os.Stat(s.path); err == nil {
		stats.SizeBytes = info.Size()
	}
	return stats, nil
}

// digestPair hashes both texts and orders the digests so that lookups are
// independent of argument order.
func digestPair(a, b string) (string, string) {
	da := digest(a)
	db := digest(b)
	if da > db {
		da, db = db, da
	}
	return da, db
}

func digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
