package dnd

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"inkwell/internal/logging"
)

// Collaborators bundles the injected services the handler routes between.
// Every field is required.
type Collaborators struct {
	Stats      StatResolver
	Contents   ContentResolver
	Backups    BackupStore
	Windows    WindowController
	Workspaces WorkspaceService
	Untitled   UntitledService
	Layout     EditorLayout
	Recents    RecentsRecorder
	Alerts     Alerter
}

func (c Collaborators) validate() error {
	switch {
	case c.Stats == nil, c.Contents == nil, c.Backups == nil, c.Windows == nil,
		c.Workspaces == nil, c.Untitled == nil, c.Layout == nil, c.Recents == nil, c.Alerts == nil:
		return errors.New("dnd: all collaborators are required")
	}
	return nil
}

// Handler classifies one drop batch at a time and routes it to the dirty
// migration or external resolution path. It is stateless across drops; two
// drops in flight are independent.
type Handler struct {
	co           Collaborators
	workspaceExt string
	logger       *slog.Logger

	async sync.WaitGroup
}

// NewHandler constructs a drop handler. workspaceExt is the extension that
// marks a dropped file as a workspace description (for example ".inkspace").
func NewHandler(co Collaborators, workspaceExt string, logger *slog.Logger) (*Handler, error) {
	if err := co.validate(); err != nil {
		return nil, err
	}
	if workspaceExt == "" {
		return nil, errors.New("dnd: workspace extension is required")
	}
	return &Handler{
		co:           co,
		workspaceExt: workspaceExt,
		logger:       logging.NewComponentLogger(logger, "dnd"),
	}, nil
}

// HandleDrop processes one drop batch. The result reports whether a workspace
// or window opening was initiated as a consequence of the drop; callers use it
// to decide whether external resources still need recording elsewhere, since
// window openings record themselves.
//
// Exactly one path runs per drop: a batch that is a single in-app candidate
// with backed-up unsaved content migrates that content; a batch containing any
// external candidate resolves those externals; anything else is a no-op. When
// the chosen path does not open anything, every external candidate is reported
// to the recently-opened registry. Errors from external resolution (focus,
// and asynchronously, workspace creation or window opening) are real failures;
// migration problems degrade to a silent no-op.
func (h *Handler) HandleDrop(ctx context.Context, batch Batch) (bool, error) {
	logger := h.logger.With(logging.String(logging.FieldDropID, uuid.NewString()))
	logger.Debug("classifying drop", logging.Int(logging.FieldCount, len(batch)))

	opened := false
	switch {
	case len(batch) == 1 && !batch[0].IsExternal && batch[0].BackupResource != nil:
		opened = h.migrateDirty(ctx, logger, batch[0])
	case batch.hasExternal():
		var err error
		opened, err = h.resolveExternals(ctx, logger, batch.externals())
		if err != nil {
			return false, err
		}
	}

	if !opened {
		h.recordExternals(ctx, logger, batch)
	}
	return opened, nil
}

// Wait blocks until any asynchronously executing open plan has finished.
// Intended for shutdown and tests.
func (h *Handler) Wait() {
	h.async.Wait()
}

func (h *Handler) recordExternals(ctx context.Context, logger *slog.Logger, batch Batch) {
	paths := make([]string, 0, len(batch))
	for _, cand := range batch {
		if cand.IsExternal {
			paths = append(paths, cand.Resource.Path)
		}
	}
	if len(paths) == 0 {
		return
	}
	if err := h.co.Recents.Add(ctx, paths); err != nil {
		logger.Warn("record recently opened", logging.Error(err), logging.Int(logging.FieldCount, len(paths)))
	}
}
