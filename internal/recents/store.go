package recents

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"inkwell/internal/config"
)

// Entry kinds recorded for recently opened paths.
const (
	KindFile      = "file"
	KindFolder    = "folder"
	KindWorkspace = "workspace"
)

const schema = `
CREATE TABLE IF NOT EXISTS recent_paths (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    path      TEXT NOT NULL UNIQUE,
    kind      TEXT NOT NULL,
    opened_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_recent_paths_opened_at ON recent_paths(opened_at);
`

// Entry is one remembered path.
type Entry struct {
	Path     string
	Kind     string
	OpenedAt time.Time
}

// Store persists the recently-opened registry in SQLite.
type Store struct {
	db           *sql.DB
	path         string
	workspaceExt string
	maxEntries   int
}

// Open initializes or connects to the recents database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.RecentsDBPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{
		db:           db,
		path:         dbPath,
		workspaceExt: cfg.Drops.WorkspaceExt,
		maxEntries:   cfg.Recents.MaxEntries,
	}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Add remembers the given paths, bumping entries that already exist. It
// implements the drop handler's recents-recorder contract.
func (s *Store) Add(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin recents tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, path := range paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO recent_paths (path, kind, opened_at) VALUES (?, ?, ?)
             ON CONFLICT(path) DO UPDATE SET opened_at = excluded.opened_at`,
			trimmed,
			s.classify(trimmed),
			now,
		)
		if err != nil {
			return fmt.Errorf("record recent path: %w", err)
		}
	}

	if s.maxEntries > 0 {
		_, err = tx.ExecContext(
			ctx,
			`DELETE FROM recent_paths WHERE id NOT IN (
               SELECT id FROM recent_paths ORDER BY opened_at DESC, id DESC LIMIT ?)`,
			s.maxEntries,
		)
		if err != nil {
			return fmt.Errorf("prune recents: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit recents tx: %w", err)
	}
	return nil
}

// List returns remembered paths, most recently opened first. A non-positive
// limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT path, kind, opened_at FROM recent_paths ORDER BY opened_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recents: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var openedAt string
		if err := rows.Scan(&entry.Path, &entry.Kind, &openedAt); err != nil {
			return nil, fmt.Errorf("scan recent entry: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, openedAt)
		if err != nil {
			return nil, fmt.Errorf("parse opened_at %q: %w", openedAt, err)
		}
		entry.OpenedAt = ts
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recents: %w", err)
	}
	return entries, nil
}

// Remove forgets the given paths and reports how many were present.
func (s *Store) Remove(ctx context.Context, paths []string) (int64, error) {
	if len(paths) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(paths)), ",")
	args := make([]any, 0, len(paths))
	for _, path := range paths {
		args = append(args, path)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM recent_paths WHERE path IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("remove recents: %w", err)
	}
	return res.RowsAffected()
}

// Clear empties the registry and reports how many entries were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recent_paths`)
	if err != nil {
		return 0, fmt.Errorf("clear recents: %w", err)
	}
	return res.RowsAffected()
}

// classify derives the entry kind from the path alone. Folders are detected
// by the absence of an extension; the registry never stats paths, so a
// dotless file records as a folder. Good enough for display purposes.
func (s *Store) classify(path string) string {
	ext := filepath.Ext(path)
	switch {
	case s.workspaceExt != "" && strings.EqualFold(ext, s.workspaceExt):
		return KindWorkspace
	case ext == "":
		return KindFolder
	default:
		return KindFile
	}
}
