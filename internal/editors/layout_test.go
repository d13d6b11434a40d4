package editors

import (
	"testing"

	"inkwell/internal/dnd"
	"inkwell/internal/logging"
)

func TestLayoutTracksOpenAndDirty(t *testing.T) {
	layout := NewLayout(logging.NewNop())
	res := dnd.FileResource("/doc.txt")

	if layout.IsOpen(res) || layout.IsDirty(res) {
		t.Fatal("fresh layout should be empty")
	}

	layout.OpenEditor(res)
	layout.MarkDirty(res)
	if !layout.IsOpen(res) || !layout.IsDirty(res) {
		t.Fatal("expected open and dirty")
	}

	layout.MarkClean(res)
	if layout.IsDirty(res) {
		t.Fatal("expected clean after save")
	}

	layout.CloseEditor(res)
	if layout.IsOpen(res) {
		t.Fatal("expected closed")
	}
}

func TestLayoutDistinguishesSchemes(t *testing.T) {
	layout := NewLayout(logging.NewNop())
	layout.OpenEditor(dnd.UntitledResource("/doc.txt"))

	if layout.IsOpen(dnd.FileResource("/doc.txt")) {
		t.Fatal("untitled and file identities must not alias")
	}
}

func TestCloseClearsDirtyState(t *testing.T) {
	layout := NewLayout(logging.NewNop())
	res := dnd.UntitledResource("scratch")

	layout.OpenEditor(res)
	layout.MarkDirty(res)
	layout.CloseEditor(res)

	if layout.IsDirty(res) {
		t.Fatal("closing must drop the dirty flag")
	}
}
