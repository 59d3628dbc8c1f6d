package filesystem

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemFileSystem is an in-memory FS implementation for testing. It supports
// regular files, directories, symbolic links and special entries, plus
// per-path error injection for lstat and listing.
type MemFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memEntry

	lstatErrs map[string]error
	listErrs  map[string]error
}

// memEntry represents one node in the in-memory filesystem.
type memEntry struct {
	mode    os.FileMode
	target  string // symlink target, if mode has ModeSymlink
	modTime time.Time
}

// memFileInfo implements os.FileInfo for in-memory entries.
type memFileInfo struct {
	name    string
	mode    os.FileMode
	modTime time.Time
}

func (fi *memFileInfo) Name() string       { return fi.name }
func (fi *memFileInfo) Size() int64        { return 0 }
func (fi *memFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi *memFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *memFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *memFileInfo) Sys() interface{}   { return nil }

// NewMemFileSystem creates a new empty in-memory filesystem.
func NewMemFileSystem() *MemFileSystem {
	return &MemFileSystem{
		entries:   make(map[string]*memEntry),
		lstatErrs: make(map[string]error),
		listErrs:  make(map[string]error),
	}
}

// Lstat returns information about a path without following symlinks.
func (fs *MemFileSystem) Lstat(p string) (os.FileInfo, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	p = path.Clean(p)
	if err, ok := fs.lstatErrs[p]; ok {
		return nil, fmt.Errorf("failed to lstat %s: %w", p, err)
	}

	entry, exists := fs.entries[p]
	if !exists {
		return nil, fmt.Errorf("failed to lstat %s: %w", p, os.ErrNotExist)
	}

	return &memFileInfo{name: path.Base(p), mode: entry.mode, modTime: entry.modTime}, nil
}

// Readlink returns the target of a symbolic link.
func (fs *MemFileSystem) Readlink(p string) (string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	p = path.Clean(p)
	entry, exists := fs.entries[p]
	if !exists {
		return "", fmt.Errorf("failed to read link %s: %w", p, os.ErrNotExist)
	}
	if entry.mode&os.ModeSymlink == 0 {
		return "", fmt.Errorf("failed to read link %s: %w", p, os.ErrInvalid)
	}

	return entry.target, nil
}

// List returns the names of the immediate children of a directory,
// sorted for determinism.
func (fs *MemFileSystem) List(p string) ([]string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	p = path.Clean(p)
	if err, ok := fs.listErrs[p]; ok {
		return nil, fmt.Errorf("failed to list directory %s: %w", p, err)
	}

	entry, exists := fs.entries[p]
	if !exists {
		return nil, fmt.Errorf("failed to list directory %s: %w", p, os.ErrNotExist)
	}
	if !entry.mode.IsDir() {
		return nil, fmt.Errorf("failed to list directory %s: not a directory", p)
	}

	prefix := p + "/"
	if p == "/" {
		prefix = "/"
	}

	var names []string
	for candidate := range fs.entries {
		if !strings.HasPrefix(candidate, prefix) {
			continue
		}
		rest := candidate[len(prefix):]
		if rest == "" || strings.Contains(rest, "/") {
			continue
		}
		names = append(names, rest)
	}
	sort.Strings(names)

	return names, nil
}

// Join joins path elements with forward slashes.
func (fs *MemFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

// Dir returns all but the last element of the path.
func (fs *MemFileSystem) Dir(p string) string {
	return path.Dir(p)
}

// IsAbs reports whether the path is absolute.
func (fs *MemFileSystem) IsAbs(p string) bool {
	return path.IsAbs(p)
}

// Helper methods for testing

// AddFile adds a regular file, creating parent directories as needed.
func (fs *MemFileSystem) AddFile(p string) {
	fs.add(p, &memEntry{mode: 0o644, modTime: time.Now()})
}

// AddDir adds a directory, creating parent directories as needed.
func (fs *MemFileSystem) AddDir(p string) {
	fs.add(p, &memEntry{mode: os.ModeDir | 0o755, modTime: time.Now()})
}

// AddSymlink adds a symbolic link pointing at target. The target does not
// have to exist; that is how broken links are modeled.
func (fs *MemFileSystem) AddSymlink(p, target string) {
	fs.add(p, &memEntry{mode: os.ModeSymlink | 0o777, target: target, modTime: time.Now()})
}

// AddSpecial adds a named pipe, standing in for any non-regular,
// non-directory entry (sockets, devices).
func (fs *MemFileSystem) AddSpecial(p string) {
	fs.add(p, &memEntry{mode: os.ModeNamedPipe | 0o644, modTime: time.Now()})
}

// FailLstat makes Lstat on the given path return the given error.
func (fs *MemFileSystem) FailLstat(p string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.lstatErrs[path.Clean(p)] = err
}

// FailList makes List on the given path return the given error.
func (fs *MemFileSystem) FailList(p string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.listErrs[path.Clean(p)] = err
}

func (fs *MemFileSystem) add(p string, entry *memEntry) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	p = path.Clean(p)
	fs.mkdirAllLocked(path.Dir(p))
	fs.entries[p] = entry
}

// mkdirAllLocked creates a directory and all parents. Assumes the lock is held.
func (fs *MemFileSystem) mkdirAllLocked(p string) {
	if p == "." || p == "/" {
		return
	}

	fs.mkdirAllLocked(path.Dir(p))

	if _, exists := fs.entries[p]; !exists {
		fs.entries[p] = &memEntry{mode: os.ModeDir | 0o755, modTime: time.Now()}
	}
}
