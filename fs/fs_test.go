package fs

import (
	"errors"
	"strings"
	"testing"
)

func testCreateWriteReadRemove(t *testing.T, fsys Filesystem) {
	t.Helper()
	p := "dir/file.txt"

	if err := fsys.MkdirAll("dir", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	f, err := fsys.Create(p)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_ = f.Close()

	if e := fsys.WriteFile(p, []byte("hello"), 0o644); e != nil {
		t.Fatalf("WriteFile failed: %v", e)
	}

	b, err := fsys.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(b) != "hello" {
		t.Errorf("ReadFile = %q, want %q", string(b), "hello")
	}

	if e := fsys.Remove(p); e != nil {
		t.Fatalf("Remove failed: %v", e)
	}
	ok, err := fsys.Exists(p)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Errorf("file still exists after Remove")
	}
}

func testReadDir(t *testing.T, fsys Filesystem) {
	t.Helper()
	for _, name := range []string{"d/a.txt", "d/b.txt"} {
		if err := fsys.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	infos, err := fsys.ReadDir("d")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(infos) != 2 {
		t.Errorf("ReadDir returned %d entries, want 2", len(infos))
	}

	_, err = fsys.Stat("missing")
	if err == nil {
		t.Fatalf("Stat on missing path succeeded")
	}
	if !IsNotExist(err) {
		t.Errorf("IsNotExist = false for %v", err)
	}
}

func testRenameReplaces(t *testing.T, fsys Filesystem) {
	t.Helper()
	if err := fsys.WriteFile("old.txt", []byte("new content"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fsys.WriteFile("target.txt", []byte("stale"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fsys.Rename("old.txt", "target.txt"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	b, err := fsys.ReadFile("target.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(b) != "new content" {
		t.Errorf("ReadFile = %q, want %q", string(b), "new content")
	}
	if ok, _ := fsys.Exists("old.txt"); ok {
		t.Errorf("old path still exists after Rename")
	}
}

func TestInMemoryFS(t *testing.T) {
	testCreateWriteReadRemove(t, NewInMemoryFS())
	testReadDir(t, NewInMemoryFS())
	testRenameReplaces(t, NewInMemoryFS())
}

func TestOSFS(t *testing.T) {
	testCreateWriteReadRemove(t, NewOSFS(t.TempDir()))
	testReadDir(t, NewOSFS(t.TempDir()))
	testRenameReplaces(t, NewOSFS(t.TempDir()))
}

func TestWriteFileAtomic(t *testing.T) {
	fsys := NewInMemoryFS()

	if err := WriteFileAtomic(fsys, "out.tsv", []byte("one\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	b, err := fsys.ReadFile("out.tsv")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(b) != "one\n" {
		t.Errorf("ReadFile = %q, want %q", string(b), "one\n")
	}

	// Overwrites an existing target.
	if err := WriteFileAtomic(fsys, "out.tsv", []byte("two\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic overwrite failed: %v", err)
	}
	b, _ = fsys.ReadFile("out.tsv")
	if string(b) != "two\n" {
		t.Errorf("ReadFile after overwrite = %q, want %q", string(b), "two\n")
	}

	assertNoScratch(t, fsys, ".")
}

// failRenameFS forces Rename to fail so the cleanup path can be observed.
type failRenameFS struct {
	Filesystem
}

func (f *failRenameFS) Rename(_, _ string) error {
	return errors.New("forced rename failure")
}

func TestWriteFileAtomicRenameFailure(t *testing.T) {
	fsys := &failRenameFS{Filesystem: NewInMemoryFS()}

	err := WriteFileAtomic(fsys, "out.tsv", []byte("data\n"), 0o644)
	if err == nil {
		t.Fatalf("WriteFileAtomic succeeded despite rename failure")
	}

	if ok, _ := fsys.Exists("out.tsv"); ok {
		t.Errorf("target exists after failed write")
	}
	assertNoScratch(t, fsys, ".")
}

func assertNoScratch(t *testing.T, fsys Filesystem, dir string) {
	t.Helper()
	infos, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, info := range infos {
		if strings.HasSuffix(info.Name(), ".tmp") {
			t.Errorf("scratch file left behind: %s", info.Name())
		}
	}
}
