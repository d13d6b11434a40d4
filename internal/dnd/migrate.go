package dnd

import (
	"context"
	"log/slog"

	"inkwell/internal/logging"
)

// backupResolveOptions is the fixed option set used when reading dropped
// backup content. Only text payloads migrate.
var backupResolveOptions = ResolveOptions{AcceptTextOnly: true}

// migrateDirty transfers one dropped in-app dirty document into this session.
// The result is always false: a dirty transfer never counts as opening a
// workspace, and every failure degrades to a no-op so the drop gesture can
// never take down the editing session.
func (h *Handler) migrateDirty(ctx context.Context, logger *slog.Logger, cand Candidate) bool {
	target := cand.Resource

	// A dropped untitled document must land in a fresh untitled identity so
	// it cannot collide with one already open here.
	if target.Scheme == SchemeUntitled {
		fresh, err := h.co.Untitled.CreateUntitled(ctx)
		if err != nil {
			logger.Debug("mint untitled identity", logging.Error(err))
			return false
		}
		cand.Resource = fresh
		target = fresh
	}

	// Never clobber in-progress edits on the target.
	if h.co.Layout.IsDirty(target) || h.co.Layout.IsOpen(target) {
		logger.Debug("migration target busy", logging.String(logging.FieldResource, target.String()))
		return false
	}

	content, err := h.co.Contents.Resolve(ctx, *cand.BackupResource, backupResolveOptions)
	if err != nil {
		logger.Debug("resolve dropped backup", logging.Error(err))
		return false
	}
	if err := h.co.Backups.Backup(ctx, target, h.co.Backups.Parse(content)); err != nil {
		logger.Debug("persist migrated backup", logging.Error(err))
		return false
	}

	logger.Debug("migrated dirty drop", logging.String(logging.FieldResource, target.String()))
	return false
}
