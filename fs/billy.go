package fs

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// BillyFS implements the Filesystem interface using go-billy.
type BillyFS struct {
	fs billy.Filesystem
}

// Create implements Filesystem.Create.
//
//nolint:ireturn // API returns the File interface by design for flexibility.
func (b *BillyFS) Create(name string) (File, error) {
	f, err := b.fs.Create(name)
	if err != nil {
		return nil, fmt.Errorf("billy: create %q: %w", name, err)
	}
	return &billyFile{file: f, fs: b}, nil
}

// Exists implements Filesystem.Exists.
func (b *BillyFS) Exists(path string) (bool, error) {
	_, err := b.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("billy: stat %q: %w", path, err)
	}
}

// MkdirAll implements Filesystem.MkdirAll.
func (b *BillyFS) MkdirAll(path string, perm os.FileMode) error {
	if err := b.fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("billy: mkdirall %q: %w", path, err)
	}
	return nil
}

// Open implements Filesystem.Open.
//
//nolint:ireturn // API returns the File interface by design for flexibility.
func (b *BillyFS) Open(name string) (File, error) {
	f, err := b.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("billy: open %q: %w", name, err)
	}
	return &billyFile{file: f, fs: b}, nil
}

// OpenFile implements Filesystem.OpenFile.
//
//nolint:ireturn // API returns the File interface by design for flexibility.
func (b *BillyFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	f, err := b.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, fmt.Errorf("billy: openfile %q: %w", name, err)
	}
	return &billyFile{file: f, fs: b}, nil
}

// ReadDir implements Filesystem.ReadDir.
func (b *BillyFS) ReadDir(dirname string) ([]os.FileInfo, error) {
	list, err := b.fs.ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("billy: readdir %q: %w", dirname, err)
	}
	return list, nil
}

// ReadFile implements Filesystem.ReadFile.
func (b *BillyFS) ReadFile(path string) ([]byte, error) {
	bts, err := util.ReadFile(b.fs, path)
	if err != nil {
		return nil, fmt.Errorf("billy: readfile %q: %w", path, err)
	}
	return bts, nil
}

// Remove implements Filesystem.Remove.
func (b *BillyFS) Remove(name string) error {
	if err := b.fs.Remove(name); err != nil {
		return fmt.Errorf("billy: remove %q: %w", name, err)
	}
	return nil
}

// Rename implements Filesystem.Rename. On the OS-backed filesystem this is
// os.Rename, which atomically replaces newpath within a single volume.
func (b *BillyFS) Rename(oldpath, newpath string) error {
	if err := b.fs.Rename(oldpath, newpath); err != nil {
		return fmt.Errorf("billy: rename %q -> %q: %w", oldpath, newpath, err)
	}
	return nil
}

// Stat implements Filesystem.Stat.
func (b *BillyFS) Stat(name string) (os.FileInfo, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", name, err)
	}
	return info, nil
}

// WriteFile implements Filesystem.WriteFile.
func (b *BillyFS) WriteFile(filename string, data []byte, perm os.FileMode) error {
	if err := util.WriteFile(b.fs, filename, data, perm); err != nil {
		return fmt.Errorf("billy: writefile %q: %w", filename, err)
	}
	return nil
}

// Raw returns the underlying go-billy filesystem.
//
//nolint:ireturn // returning the interface exposes the adapter target.
func (b *BillyFS) Raw() billy.Filesystem {
	return b.fs
}

// NewBillyFS creates a new BillyFS using the given go-billy filesystem.
func NewBillyFS(fsys billy.Filesystem) *BillyFS {
	return &BillyFS{fs: fsys}
}

// NewInMemoryFS creates a new in-memory filesystem.
func NewInMemoryFS() *BillyFS {
	return &BillyFS{fs: memfs.New()}
}

// NewOSFS creates a new filesystem rooted at the given path.
func NewOSFS(path string) *BillyFS {
	return &BillyFS{fs: osfs.New(path)}
}

// baseOSFS is a billy.Filesystem that acts like the native filesystem,
// resolving relative paths against the process working directory.
type baseOSFS struct {
	osfs.ChrootOS
}

//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (b *baseOSFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

func (b *baseOSFS) Root() string {
	return "/"
}

// NewBaseOSFS creates a new OS filesystem that acts like the native
// filesystem. This is what the CLI uses, so operator-supplied paths mean
// exactly what they would in a shell.
func NewBaseOSFS() *BillyFS {
	return &BillyFS{fs: &baseOSFS{}}
}
