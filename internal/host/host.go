package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofrs/flock"

	"inkwell/internal/backup"
	"inkwell/internal/config"
	"inkwell/internal/dnd"
	"inkwell/internal/editors"
	"inkwell/internal/logging"
	"inkwell/internal/recents"
	"inkwell/internal/untitled"
	"inkwell/internal/windows"
	"inkwell/internal/workspaces"
)

// ErrAlreadyRunning reports that another host owns the state directory.
var ErrAlreadyRunning = errors.New("another inkwell instance is already running")

// Host wires the drop handler to real collaborator implementations and
// enforces single-instance access to the state directory.
type Host struct {
	cfg    *config.Config
	logger *slog.Logger

	Recents    *recents.Store
	Backups    *backup.Store
	Untitled   *untitled.Service
	Workspaces *workspaces.Service
	Windows    *windows.Manager
	Layout     *editors.Layout

	handler *dnd.Handler

	lockPath string
	lock     *flock.Flock
}

// New constructs a host from configuration, acquiring the instance lock and
// opening the recents store. Callers must Close the returned host.
func New(cfg *config.Config, logger *slog.Logger) (*Host, error) {
	if cfg == nil {
		return nil, errors.New("host requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	lockPath := cfg.LockPath()
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire instance lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock: %s)", ErrAlreadyRunning, lockPath)
	}

	recentsStore, err := recents.Open(cfg)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	h := &Host{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "host"),
		Recents:    recentsStore,
		Backups:    backup.NewStore(cfg.Paths.BackupsDir, logger),
		Untitled:   untitled.NewService(logger),
		Workspaces: workspaces.NewService(cfg.Paths.WorkspacesDir, cfg.Drops.WorkspaceExt, logger),
		Windows:    windows.NewManager(logger),
		Layout:     editors.NewLayout(logger),
		lockPath:   lockPath,
		lock:       lock,
	}

	handler, err := dnd.NewHandler(dnd.Collaborators{
		Stats:      osStat{},
		Contents:   h.Backups,
		Backups:    h.Backups,
		Windows:    h.Windows,
		Workspaces: h.Workspaces,
		Untitled:   h.Untitled,
		Layout:     h.Layout,
		Recents:    h.Recents,
		Alerts:     logAlerter{logger: h.logger},
	}, cfg.Drops.WorkspaceExt, logger)
	if err != nil {
		_ = recentsStore.Close()
		_ = lock.Unlock()
		return nil, err
	}
	h.handler = handler

	h.logger.Debug("host ready", logging.String(logging.FieldPath, cfg.Paths.StateDir))
	return h, nil
}

// HandleDrop routes one drop batch through the handler.
func (h *Host) HandleDrop(ctx context.Context, batch dnd.Batch) (bool, error) {
	return h.handler.HandleDrop(ctx, batch)
}

// Wait blocks until outstanding asynchronous drop work has finished.
func (h *Host) Wait() {
	h.handler.Wait()
}

// Close waits for in-flight drop work, then releases the recents store and
// the instance lock.
func (h *Host) Close() error {
	h.handler.Wait()

	var errs []error
	if err := h.Recents.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := h.lock.Unlock(); err != nil {
		errs = append(errs, fmt.Errorf("release instance lock: %w", err))
	}
	return errors.Join(errs...)
}

// osStat resolves file-scheme resources against the real filesystem.
type osStat struct{}

func (osStat) Stat(_ context.Context, res dnd.Resource) (dnd.Info, error) {
	if res.Scheme != "" && res.Scheme != dnd.SchemeFile {
		return dnd.Info{}, fmt.Errorf("stat: unsupported scheme %q", res.Scheme)
	}
	info, err := os.Stat(res.Path)
	if err != nil {
		return dnd.Info{}, err
	}
	return dnd.Info{IsDirectory: info.IsDir()}, nil
}

// logAlerter surfaces asynchronous drop failures to the user via the host
// log. A windowed frontend would raise a dialog here instead.
type logAlerter struct {
	logger *slog.Logger
}

func (a logAlerter) DropFailed(_ context.Context, err error) {
	a.logger.Error("drop failed", logging.Error(err))
}
