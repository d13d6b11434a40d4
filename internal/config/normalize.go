package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDrops()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.BackupsDir, err = expandPath(c.Paths.BackupsDir); err != nil {
		return fmt.Errorf("paths.backups_dir: %w", err)
	}
	if c.Paths.WorkspacesDir, err = expandPath(c.Paths.WorkspacesDir); err != nil {
		return fmt.Errorf("paths.workspaces_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDrops() {
	ext := strings.ToLower(strings.TrimSpace(c.Drops.WorkspaceExt))
	if ext == "" {
		ext = defaultWorkspaceExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Drops.WorkspaceExt = ext
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Recents.MaxEntries <= 0 {
		c.Recents.MaxEntries = defaultRecentsMax
	}
}
