package windows

import (
	"context"
	"testing"

	"inkwell/internal/dnd"
	"inkwell/internal/logging"
)

func TestOpenWithReuseReplacesActiveWindow(t *testing.T) {
	m := NewManager(logging.NewNop())
	initial := m.Active()

	locations := []dnd.Resource{
		dnd.FileResource("/projects/my-app"),
		dnd.FileResource("/projects/side_project"),
	}
	if err := m.Open(context.Background(), locations, dnd.OpenOptions{ForceReuseWindow: true}); err != nil {
		t.Fatalf("Open: %v", err)
	}

	all := m.List()
	if len(all) != 2 {
		t.Fatalf("windows = %d, want 2", len(all))
	}
	if all[0].ID != initial.ID {
		t.Fatal("first location should reuse the initial window")
	}
	if all[0].Location.Path != "/projects/my-app" {
		t.Fatalf("reused window location = %q", all[0].Location.Path)
	}
	if all[1].Location.Path != "/projects/side_project" {
		t.Fatalf("second window location = %q", all[1].Location.Path)
	}
	if m.Active().ID != all[1].ID {
		t.Fatal("last opened window should be active")
	}
}

func TestOpenWithoutReuseSpawnsPerLocation(t *testing.T) {
	m := NewManager(logging.NewNop())

	if err := m.Open(context.Background(), []dnd.Resource{dnd.FileResource("/a")}, dnd.OpenOptions{}); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := len(m.List()); got != 2 {
		t.Fatalf("windows = %d, want 2 (initial plus spawned)", got)
	}
}

func TestFocusMarksActiveWindow(t *testing.T) {
	m := NewManager(logging.NewNop())
	if m.Focused() {
		t.Fatal("fresh manager should be unfocused")
	}
	if err := m.Focus(context.Background()); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	if !m.Focused() {
		t.Fatal("expected focus flag")
	}
}

func TestWindowTitles(t *testing.T) {
	cases := []struct {
		loc  dnd.Resource
		want string
	}{
		{dnd.Resource{}, "Welcome"},
		{dnd.UntitledResource("abc"), "Untitled"},
		{dnd.FileResource("/projects/my-app"), "My App"},
		{dnd.FileResource("/projects/team.inkspace"), "Team"},
		{dnd.FileResource("/projects/..."), "Untitled"},
	}
	for _, tc := range cases {
		if got := windowTitle(tc.loc); got != tc.want {
			t.Errorf("windowTitle(%v) = %q, want %q", tc.loc, got, tc.want)
		}
	}
}
