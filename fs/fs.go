// Package fs defines the filesystem abstraction used by the tsvify packages
// and provides an implementation backed by go-billy. The abstraction exists
// so the manifest pipeline can run against an in-memory filesystem in tests
// and the native filesystem in the CLI.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File represents an open file handle supporting basic I/O operations.
// Implementations should behave consistently with the standard library.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	Seek(offset int64, whence int) (int64, error)
	Stat() (fs.FileInfo, error)
	Write(p []byte) (n int, err error)
}

// Filesystem is the set of filesystem operations the manifest pipeline
// needs. It is a deliberately small surface; callers accept this interface
// and the CLI injects the OS-backed implementation.
type Filesystem interface {
	// Create creates or truncates the named file and opens it for writing.
	Create(name string) (File, error)

	// Exists reports whether the named path exists.
	Exists(path string) (bool, error)

	// MkdirAll creates the named directory along with any necessary parents.
	MkdirAll(path string, perm os.FileMode) error

	// Open opens the named file for reading.
	Open(name string) (File, error)

	// OpenFile opens the named file with the specified flag and permissions.
	OpenFile(name string, flag int, perm os.FileMode) (File, error)

	// ReadDir reads the named directory and returns its entries.
	ReadDir(dirname string) ([]os.FileInfo, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(path string) ([]byte, error)

	// Remove removes the named file.
	Remove(name string) error

	// Rename renames oldpath to newpath, replacing newpath if it exists.
	Rename(oldpath, newpath string) error

	// Stat returns file info for the named path.
	Stat(name string) (os.FileInfo, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(filename string, data []byte, perm os.FileMode) error
}

// IsNotExist reports whether err indicates a missing file or directory,
// unwrapping any intermediate error layers.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Join joins path elements with the platform separator.
func Join(elem ...string) string {
	return filepath.Join(elem...)
}
