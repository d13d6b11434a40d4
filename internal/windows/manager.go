package windows

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"inkwell/internal/dnd"
	"inkwell/internal/logging"
)

// Window is one top-level editor window.
type Window struct {
	ID       int
	Location dnd.Resource
	Title    string
	OpenedAt time.Time
}

// Manager tracks the host's window set and implements the drop handler's
// window-controller contract. One window is always active; opening with
// reuse replaces the active window's location instead of spawning.
type Manager struct {
	mu      sync.Mutex
	windows []*Window
	active  int
	focused bool
	nextID  int
	logger  *slog.Logger
}

// NewManager constructs a manager holding one empty window.
func NewManager(logger *slog.Logger) *Manager {
	m := &Manager{logger: logging.NewComponentLogger(logger, "windows")}
	m.windows = []*Window{m.newWindow(dnd.Resource{})}
	return m
}

// Focus brings the active window to the foreground.
func (m *Manager) Focus(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.focused = true
	m.logger.Debug("window focused", logging.Int("window_id", m.windows[m.active].ID))
	return nil
}

// Open opens the given locations, one window each. With ForceReuseWindow the
// first location lands in the active window; the rest always spawn.
func (m *Manager) Open(_ context.Context, locations []dnd.Resource, opts dnd.OpenOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, loc := range locations {
		if i == 0 && opts.ForceReuseWindow {
			win := m.windows[m.active]
			win.Location = loc
			win.Title = windowTitle(loc)
			m.logger.Info("window reused",
				logging.Int("window_id", win.ID),
				logging.String(logging.FieldResource, loc.String()))
			continue
		}
		win := m.newWindow(loc)
		m.windows = append(m.windows, win)
		m.active = len(m.windows) - 1
		m.logger.Info("window opened",
			logging.Int("window_id", win.ID),
			logging.String(logging.FieldResource, loc.String()))
	}
	return nil
}

// Active returns a copy of the active window.
func (m *Manager) Active() Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.windows[m.active]
}

// Focused reports whether the active window has been brought to front.
func (m *Manager) Focused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focused
}

// List returns a snapshot of all windows in opening order.
func (m *Manager) List() []Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Window, 0, len(m.windows))
	for _, win := range m.windows {
		out = append(out, *win)
	}
	return out
}

func (m *Manager) newWindow(loc dnd.Resource) *Window {
	m.nextID++
	return &Window{
		ID:       m.nextID,
		Location: loc,
		Title:    windowTitle(loc),
		OpenedAt: time.Now(),
	}
}
