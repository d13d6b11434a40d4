package main

import (
	"testing"
)

func TestBackupsListEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, stderr, err := runCLI(t, []string{"backups", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("backups list: %v (stderr: %s)", err, stderr)
	}
	requireContains(t, stdout, "No backups stored")
}

func TestBackupsRejectsUnknownSubcommand(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"backups", "prune"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
}
