package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPreviewDirCreatesCleanDirectory(t *testing.T) {
	id := t.Name()
	dir, err := PreviewDir(id)
	if err != nil {
		t.Fatalf("PreviewDir() error = %v", err)
	}
	defer os.RemoveAll(dir)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("preview dir missing: %v", err)
	}

	leftover := filepath.Join(dir, "stale.png")
	if err := os.WriteFile(leftover, []byte("x"), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	again, err := PreviewDir(id)
	if err != nil {
		t.Fatalf("PreviewDir() second call error = %v", err)
	}
	if again != dir {
		t.Errorf("second call dir = %q, want %q", again, dir)
	}
	entries, err := os.ReadDir(again)
	if err != nil {
		t.Fatalf("os.ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("preview dir entries = %d, want 0", len(entries))
	}
}
