package testsupport

import (
	"path/filepath"
	"testing"

	"inkwell/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.BackupsDir = filepath.Join(base, "backups")
	cfg.Paths.WorkspacesDir = filepath.Join(base, "workspaces")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithWorkspaceExt overrides the workspace file extension on the test config.
func WithWorkspaceExt(ext string) ConfigOption {
	return func(c *config.Config) {
		c.Drops.WorkspaceExt = ext
	}
}
