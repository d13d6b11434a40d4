package editors

import (
	"log/slog"
	"sync"

	"inkwell/internal/dnd"
	"inkwell/internal/logging"
)

// Layout tracks which resources are open in editors and which carry unsaved
// changes. It implements the drop handler's editor-layout query.
type Layout struct {
	mu     sync.RWMutex
	open   map[string]struct{}
	dirty  map[string]struct{}
	logger *slog.Logger
}

// NewLayout constructs an empty editor layout.
func NewLayout(logger *slog.Logger) *Layout {
	return &Layout{
		open:   make(map[string]struct{}),
		dirty:  make(map[string]struct{}),
		logger: logging.NewComponentLogger(logger, "editors"),
	}
}

// OpenEditor records a resource as open.
func (l *Layout) OpenEditor(res dnd.Resource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.open[res.String()] = struct{}{}
}

// CloseEditor removes a resource from the layout and clears its dirty state.
func (l *Layout) CloseEditor(res dnd.Resource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.open, res.String())
	delete(l.dirty, res.String())
}

// MarkDirty flags unsaved changes on a resource.
func (l *Layout) MarkDirty(res dnd.Resource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dirty[res.String()] = struct{}{}
}

// MarkClean clears the dirty flag, typically after a save.
func (l *Layout) MarkClean(res dnd.Resource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.dirty, res.String())
}

// IsOpen reports whether the resource is open in any editor.
func (l *Layout) IsOpen(res dnd.Resource) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.open[res.String()]
	return ok
}

// IsDirty reports whether the resource carries unsaved changes.
func (l *Layout) IsDirty(res dnd.Resource) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.dirty[res.String()]
	return ok
}
