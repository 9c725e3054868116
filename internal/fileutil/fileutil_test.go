package fileutil_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/idelchi/goseal/internal/fileutil"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "artifact")
	data := []byte("some artifact bytes")

	if err := fileutil.WriteFileAtomic(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if !bytes.Equal(got, data) {
		t.Errorf("content mismatch")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %o, want 0600", perm)
	}

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}

	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "artifact")

	if err := fileutil.WriteFileAtomic(path, []byte("first"), 0o600); err != nil {
		t.Fatalf("first write: %v", err)
	}

	if err := fileutil.WriteFileAtomic(path, []byte("second"), 0o600); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}

	if err := fileutil.WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "artifact"), nil, 0o600); err == nil {
		t.Error("write into missing directory succeeded")
	}
}
