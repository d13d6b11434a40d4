package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inkwell/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "inkwell")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Paths.BackupsDir != filepath.Join(wantState, "backups") {
		t.Fatalf("unexpected backups dir: %q", cfg.Paths.BackupsDir)
	}
	if cfg.Drops.WorkspaceExt != ".inkspace" {
		t.Fatalf("unexpected workspace ext: %q", cfg.Drops.WorkspaceExt)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.RecentsDBPath() != filepath.Join(wantState, "recents.db") {
		t.Fatalf("unexpected recents db path: %q", cfg.RecentsDBPath())
	}
}

func TestLoadParsesFileAndNormalizesExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := strings.Join([]string{
		"[paths]",
		`state_dir = "` + filepath.Join(dir, "state") + `"`,
		`backups_dir = "` + filepath.Join(dir, "backups") + `"`,
		`workspaces_dir = "` + filepath.Join(dir, "ws") + `"`,
		`log_dir = "` + filepath.Join(dir, "logs") + `"`,
		"[drops]",
		`workspace_ext = "Workbench"`,
		"[logging]",
		`format = "json"`,
		`level = "debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected config file to exist at %q", path)
	}
	if cfg.Drops.WorkspaceExt != ".workbench" {
		t.Fatalf("expected normalized extension, got %q", cfg.Drops.WorkspaceExt)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty state dir", func(c *config.Config) { c.Paths.StateDir = "" }},
		{"extension with separator", func(c *config.Config) { c.Drops.WorkspaceExt = ".a/b" }},
		{"bare dot extension", func(c *config.Config) { c.Drops.WorkspaceExt = "." }},
		{"unknown log format", func(c *config.Config) { c.Logging.Format = "yaml" }},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "trace" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Logging.Format = "console"
			cfg.Logging.Level = "info"
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(dir, "state")
	cfg.Paths.BackupsDir = filepath.Join(dir, "backups")
	cfg.Paths.WorkspacesDir = filepath.Join(dir, "ws")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, d := range []string{cfg.Paths.StateDir, cfg.Paths.BackupsDir, cfg.Paths.WorkspacesDir, cfg.Paths.LogDir} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", d, err)
		}
	}
}

func TestCreateSampleRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected error on existing file")
	}
}
