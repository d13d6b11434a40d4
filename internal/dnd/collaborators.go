package dnd

import "context"

// Info describes the result of a stat lookup.
type Info struct {
	IsDirectory bool
}

// StatResolver answers whether a resource names a directory.
type StatResolver interface {
	Stat(ctx context.Context, res Resource) (Info, error)
}

// Content is resolved text content.
type Content struct {
	Value string
}

// ResolveOptions constrains content resolution.
type ResolveOptions struct {
	// AcceptTextOnly fails resolution when the stored content is not text.
	AcceptTextOnly bool
}

// ContentResolver reads the text content stored at a resource.
type ContentResolver interface {
	Resolve(ctx context.Context, res Resource, opts ResolveOptions) (Content, error)
}

// Snapshot is a backup store's internal representation of resolved content.
type Snapshot struct {
	Text string
}

// BackupStore persists unsaved content keyed by resource identity.
type BackupStore interface {
	Parse(content Content) Snapshot
	Backup(ctx context.Context, target Resource, snap Snapshot) error
}

// OpenOptions configures window opening.
type OpenOptions struct {
	// ForceReuseWindow opens the first location in the current window
	// instead of a new one.
	ForceReuseWindow bool
}

// WindowController focuses the current window and opens locations in windows.
type WindowController interface {
	Focus(ctx context.Context) error
	// Open opens one window per location unless reuse is requested.
	Open(ctx context.Context, locations []Resource, opts OpenOptions) error
}

// WorkspaceService synthesizes a persisted workspace definition from folders
// and returns the resource of its configuration file.
type WorkspaceService interface {
	Create(ctx context.Context, folders []Resource) (Resource, error)
}

// UntitledService mints untitled-document identities.
type UntitledService interface {
	CreateUntitled(ctx context.Context) (Resource, error)
}

// EditorLayout reports the current editor state for a resource.
type EditorLayout interface {
	IsOpen(res Resource) bool
	IsDirty(res Resource) bool
}

// RecentsRecorder remembers paths in the recently-opened registry.
type RecentsRecorder interface {
	Add(ctx context.Context, paths []string) error
}

// Alerter surfaces drop failures that the user needs to see, such as a
// workspace that could not be created or a window that could not open.
type Alerter interface {
	DropFailed(ctx context.Context, err error)
}
