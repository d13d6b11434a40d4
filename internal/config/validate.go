package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDrops(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return fmt.Errorf("paths.state_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.BackupsDir) == "" {
		return fmt.Errorf("paths.backups_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.WorkspacesDir) == "" {
		return fmt.Errorf("paths.workspaces_dir must not be empty")
	}
	return nil
}

func (c *Config) validateDrops() error {
	ext := c.Drops.WorkspaceExt
	if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("drops.workspace_ext: %q is not a file extension", ext)
	}
	if strings.ContainsAny(ext[1:], "./\\") {
		return fmt.Errorf("drops.workspace_ext: %q must be a single extension", ext)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
