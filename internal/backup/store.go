package backup

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"inkwell/internal/dnd"
	"inkwell/internal/logging"
)

// ErrNoBackup marks resolution attempts against a backup that does not exist.
var ErrNoBackup = errors.New("no backup")

// ErrNotText marks text-only resolution of non-text content.
var ErrNotText = errors.New("content is not text")

// Store keeps unsaved-content backups on the filesystem. Each backup lives at
// <root>/<scheme>/<sha256 of the owning resource identity>; the first line of
// the file is that identity, the remainder is the payload.
type Store struct {
	root   string
	logger *slog.Logger
}

// NewStore creates a backup store rooted at the given directory.
func NewStore(root string, logger *slog.Logger) *Store {
	return &Store{root: root, logger: logging.NewComponentLogger(logger, "backup")}
}

// PathFor returns the backup file location for a resource identity.
func (s *Store) PathFor(res dnd.Resource) string {
	scheme := res.Scheme
	if scheme == "" {
		scheme = dnd.SchemeFile
	}
	sum := sha256.Sum256([]byte(res.String()))
	return filepath.Join(s.root, scheme, hex.EncodeToString(sum[:]))
}

// BackupResource returns the file resource under which a backup for res is
// stored, whether or not one exists yet.
func (s *Store) BackupResource(res dnd.Resource) dnd.Resource {
	return dnd.FileResource(s.PathFor(res))
}

// Has reports whether a backup exists for the resource.
func (s *Store) Has(res dnd.Resource) bool {
	_, err := os.Stat(s.PathFor(res))
	return err == nil
}

// Resolve reads the raw content stored at a backup location. It implements
// the drop handler's content resolver contract.
func (s *Store) Resolve(_ context.Context, res dnd.Resource, opts dnd.ResolveOptions) (dnd.Content, error) {
	if res.Scheme != "" && res.Scheme != dnd.SchemeFile {
		return dnd.Content{}, fmt.Errorf("resolve backup: unsupported scheme %q", res.Scheme)
	}
	raw, err := os.ReadFile(res.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dnd.Content{}, fmt.Errorf("%w: %s", ErrNoBackup, res.Path)
		}
		return dnd.Content{}, fmt.Errorf("read backup: %w", err)
	}
	if opts.AcceptTextOnly && !utf8.Valid(raw) {
		return dnd.Content{}, fmt.Errorf("%w: %s", ErrNotText, res.Path)
	}
	return dnd.Content{Value: string(raw)}, nil
}

// Parse strips the identity line that precedes the payload in a backup file.
func (s *Store) Parse(content dnd.Content) dnd.Snapshot {
	if idx := strings.IndexByte(content.Value, '\n'); idx >= 0 {
		return dnd.Snapshot{Text: content.Value[idx+1:]}
	}
	// No payload after the identity line.
	return dnd.Snapshot{Text: ""}
}

// Backup persists a snapshot under the target identity. The write is staged
// to a temp file and renamed so a crash never leaves a torn backup behind.
func (s *Store) Backup(_ context.Context, target dnd.Resource, snap dnd.Snapshot) error {
	path := s.PathFor(target)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}

	tmp := path + ".tmp"
	payload := target.String() + "\n" + snap.Text
	if err := os.WriteFile(tmp, []byte(payload), 0o600); err != nil {
		return fmt.Errorf("stage backup: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("commit backup: %w", err)
	}

	s.logger.Debug("backup written",
		logging.String(logging.FieldResource, target.String()),
		logging.String(logging.FieldPath, path))
	return nil
}

// Discard removes the backup for a resource. Missing backups are not an error.
func (s *Store) Discard(res dnd.Resource) error {
	err := os.Remove(s.PathFor(res))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("discard backup: %w", err)
	}
	return nil
}

// Entry describes one stored backup.
type Entry struct {
	Resource string
	Path     string
	Size     int64
	ModTime  time.Time
}

// List enumerates stored backups, newest first. The owning resource identity
// is read from each file's first line.
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || strings.HasSuffix(path, ".tmp") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		resource, err := readIdentityLine(path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			Resource: resource,
			Path:     path,
			Size:     info.Size(),
			ModTime:  info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ModTime.After(entries[j].ModTime) })
	return entries, nil
}

func readIdentityLine(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", scanner.Err()
}
