// Package filesystem provides an abstraction layer for the read-only
// namespace operations a traversal performs (lstat, readlink, directory
// listing), so the same walker can run against the local disk, a remote
// SFTP tree, or an in-memory filesystem in tests.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// FS is the surface a traversal needs. No file content is ever read and
// nothing is ever written through this interface.
type FS interface {
	// Lstat returns information about the named path without following
	// a trailing symbolic link.
	Lstat(path string) (os.FileInfo, error)

	// Readlink returns the target of the named symbolic link.
	Readlink(path string) (string, error)

	// List returns the names of the immediate children of the named
	// directory, non-recursively. Order is whatever the backend provides.
	List(path string) ([]string, error)

	// Join joins path elements using the backend's separator.
	Join(elem ...string) string

	// Dir returns all but the last element of the path.
	Dir(path string) string

	// IsAbs reports whether the path is absolute on this backend.
	IsAbs(path string) bool
}

// RealFileSystem implements FS using the os package.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Lstat returns information about a path without following symlinks.
func (fs *RealFileSystem) Lstat(path string) (os.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", path, err)
	}

	return info, nil
}

// Readlink returns the target of a symbolic link.
func (fs *RealFileSystem) Readlink(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("failed to read link %s: %w", path, err)
	}

	return target, nil
}

// List returns the names of the immediate children of a directory.
// The underlying directory handle is closed before List returns, so an
// abandoned traversal never holds descriptors open.
func (fs *RealFileSystem) List(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// Join joins path elements with the OS separator.
func (fs *RealFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Dir returns all but the last element of the path.
func (fs *RealFileSystem) Dir(path string) string {
	return filepath.Dir(path)
}

// IsAbs reports whether the path is absolute.
func (fs *RealFileSystem) IsAbs(path string) bool {
	return filepath.IsAbs(path)
}
