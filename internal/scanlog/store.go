package scanlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

// Entry is one recorded scan outcome.
type Entry struct {
	ScanID         string
	Path           string
	Provider       string
	VideoTracks    int
	AudioTracks    int
	SubtitleTracks int
	Warnings       int
	CreatedAt      time.Time
}

// Store manages scan history persistence backed by SQLite. A file lock next
// to the database keeps concurrent metaprobe invocations from interleaving
// writes.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

const schema = `
CREATE TABLE IF NOT EXISTS scans (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    scan_id TEXT NOT NULL,
    path TEXT NOT NULL,
    provider TEXT NOT NULL,
    video_tracks INTEGER NOT NULL DEFAULT 0,
    audio_tracks INTEGER NOT NULL DEFAULT 0,
    subtitle_tracks INTEGER NOT NULL DEFAULT 0,
    warnings INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scans_path ON scans(path);
`

// Open initializes or connects to the history database at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("history database %s is locked by another process", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open history db: %w", err)
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
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}

	return &Store{db: db, path: path, lock: lock}, nil
}

// Close releases the database connection and the writer lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if unlockErr := s.lock.Unlock(); err == nil {
		err = unlockErr
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts one scan outcome. A zero CreatedAt means now.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	created := entry.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO scans (
            scan_id, path, provider,
            video_tracks, audio_tracks, subtitle_tracks, warnings, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ScanID,
		entry.Path,
		entry.Provider,
		entry.VideoTracks,
		entry.AudioTracks,
		entry.SubtitleTracks,
		entry.Warnings,
		created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT scan_id, path, provider,
            video_tracks, audio_tracks, subtitle_tracks, warnings, created_at
        FROM scans ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ForPath returns the entries recorded for one file, most recent first.
func (s *Store) ForPath(ctx context.Context, path string) ([]Entry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT scan_id, path, provider,
            video_tracks, audio_tracks, subtitle_tracks, warnings, created_at
        FROM scans WHERE path = ? ORDER BY id DESC`,
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("query scans for path: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		var created string
		if err := rows.Scan(
			&entry.ScanID,
			&entry.Path,
			&entry.Provider,
			&entry.VideoTracks,
			&entry.AudioTracks,
			&entry.SubtitleTracks,
			&entry.Warnings,
			&created,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse history timestamp %q: %w", created, err)
		}
		entry.CreatedAt = parsed
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}
