package fs

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// WriteFileAtomic writes data to path by first writing a uniquely named
// scratch file in the same directory and then renaming it onto path. A
// reader never observes a half-written file at path, and reruns that were
// interrupted mid-write leave no scratch files behind: the scratch file is
// removed on every failure path.
func WriteFileAtomic(fsys Filesystem, path string, data []byte, perm os.FileMode) error {
	scratch := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())

	f, err := fsys.OpenFile(scratch, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("atomic write %q: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = fsys.Remove(scratch)
		return fmt.Errorf("atomic write %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = fsys.Remove(scratch)
		return fmt.Errorf("atomic write %q: %w", path, err)
	}

	if err := fsys.Rename(scratch, path); err != nil {
		_ = fsys.Remove(scratch)
		return fmt.Errorf("atomic write %q: %w", path, err)
	}
	return nil
}
