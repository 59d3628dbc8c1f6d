package filesystem

import (
	"fmt"
	"os"
	"path"
)

// SFTPFileSystem implements FS for a remote tree over one SFTP session.
// Traversal is single-threaded and pull-based, so a single session is
// enough; the CLI closes it through the factory's closer when done.
type SFTPFileSystem struct {
	conn *SFTPConnection
}

// NewSFTPFileSystem creates an SFTP-backed FS using an established connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return &SFTPFileSystem{conn: conn}
}

// Lstat returns information about a remote path without following symlinks.
func (fs *SFTPFileSystem) Lstat(p string) (os.FileInfo, error) {
	info, err := fs.conn.Client().Lstat(p)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat remote path %s: %w", p, err)
	}

	return info, nil
}

// Readlink returns the target of a remote symbolic link.
func (fs *SFTPFileSystem) Readlink(p string) (string, error) {
	target, err := fs.conn.Client().ReadLink(p)
	if err != nil {
		return "", fmt.Errorf("failed to read remote link %s: %w", p, err)
	}

	return target, nil
}

// List returns the names of the immediate children of a remote directory.
func (fs *SFTPFileSystem) List(p string) ([]string, error) {
	infos, err := fs.conn.Client().ReadDir(p)
	if err != nil {
		return nil, fmt.Errorf("failed to list remote directory %s: %w", p, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	return names, nil
}

// Join joins path elements with forward slashes (SFTP paths are always
// slash-separated regardless of the local OS).
func (fs *SFTPFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

// Dir returns all but the last element of the remote path.
func (fs *SFTPFileSystem) Dir(p string) string {
	return path.Dir(p)
}

// IsAbs reports whether the remote path is absolute.
func (fs *SFTPFileSystem) IsAbs(p string) bool {
	return path.IsAbs(p)
}
