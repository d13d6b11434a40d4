package host_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"inkwell/internal/dnd"
	"inkwell/internal/host"
	"inkwell/internal/logging"
	"inkwell/internal/testsupport"
	"inkwell/internal/workspaces"
)

func newHost(t *testing.T) *host.Host {
	t.Helper()
	h, err := host.New(testsupport.NewConfig(t), logging.NewNop())
	if err != nil {
		t.Fatalf("host.New: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestSecondInstanceRejected(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	first, err := host.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("host.New: %v", err)
	}
	defer first.Close()

	if _, err := host.New(cfg, logging.NewNop()); !errors.Is(err, host.ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestDropFolderOpensWindow(t *testing.T) {
	h := newHost(t)
	folder := t.TempDir()

	opened, err := h.HandleDrop(context.Background(), dnd.Batch{
		{Resource: dnd.FileResource(folder), IsExternal: true},
	})
	if err != nil {
		t.Fatalf("HandleDrop: %v", err)
	}
	if !opened {
		t.Fatal("expected folder drop to open")
	}
	h.Wait()

	if !h.Windows.Focused() {
		t.Fatal("expected window focus")
	}
	if got := h.Windows.Active().Location.Path; got != folder {
		t.Fatalf("active window location = %q, want %q", got, folder)
	}

	entries, err := h.Recents.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("opened drops must not add to recents, got %v", entries)
	}
}

func TestDropMultipleFoldersCreatesCompositeWorkspace(t *testing.T) {
	h := newHost(t)
	base := t.TempDir()
	var batch dnd.Batch
	var want []string
	for _, name := range []string{"api", "web"} {
		dir := filepath.Join(base, name)
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		batch = append(batch, dnd.Candidate{Resource: dnd.FileResource(dir), IsExternal: true})
		want = append(want, dir)
	}

	opened, err := h.HandleDrop(context.Background(), batch)
	if err != nil {
		t.Fatalf("HandleDrop: %v", err)
	}
	if !opened {
		t.Fatal("expected composite opening")
	}
	h.Wait()

	loc := h.Windows.Active().Location
	if filepath.Ext(loc.Path) != ".inkspace" {
		t.Fatalf("active window should show the workspace configuration, got %q", loc.Path)
	}
	def, err := workspaces.Load(loc.Path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(def.Folders) != 2 || def.Folders[0].Path != want[0] || def.Folders[1].Path != want[1] {
		t.Fatalf("unexpected members: %v", def.Folders)
	}
}

func TestDropPlainFileRecordsRecent(t *testing.T) {
	h := newHost(t)
	file := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	opened, err := h.HandleDrop(context.Background(), dnd.Batch{
		{Resource: dnd.FileResource(file), IsExternal: true},
	})
	if err != nil {
		t.Fatalf("HandleDrop: %v", err)
	}
	if opened {
		t.Fatal("a plain file opens nothing")
	}
	h.Wait()

	entries, err := h.Recents.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Path != file {
		t.Fatalf("unexpected recents: %v", entries)
	}
	if time.Since(entries[0].OpenedAt) > time.Minute {
		t.Fatalf("stale opened_at: %v", entries[0].OpenedAt)
	}
}

func TestDropDirtyDocumentMigratesBackup(t *testing.T) {
	h := newHost(t)
	ctx := context.Background()

	// Simulate the source instance: unsaved content backed up under an
	// untitled identity.
	source := dnd.UntitledResource("source-window-doc")
	if err := h.Backups.Backup(ctx, source, dnd.Snapshot{Text: "draft paragraph"}); err != nil {
		t.Fatalf("Backup: %v", err)
	}
	backupRes := h.Backups.BackupResource(source)

	opened, err := h.HandleDrop(ctx, dnd.Batch{
		{Resource: source, BackupResource: &backupRes},
	})
	if err != nil {
		t.Fatalf("HandleDrop: %v", err)
	}
	if opened {
		t.Fatal("dirty migration never opens a workspace")
	}

	entries, err := h.Backups.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected source plus migrated backup, got %d", len(entries))
	}
	var migrated bool
	for _, e := range entries {
		if e.Resource != source.String() {
			migrated = true
			content, err := h.Backups.Resolve(ctx, dnd.FileResource(e.Path), dnd.ResolveOptions{AcceptTextOnly: true})
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if snap := h.Backups.Parse(content); snap.Text != "draft paragraph" {
				t.Fatalf("migrated payload = %q", snap.Text)
			}
		}
	}
	if !migrated {
		t.Fatal("expected a backup under a fresh identity")
	}
}
