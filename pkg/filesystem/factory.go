package filesystem

import (
	"fmt"
)

// CreateFileSystem creates an FS for the given path.
// Returns (filesystem, rootPath, closer, error).
//   - filesystem: the FS to traverse
//   - rootPath: the path to start from (stripped of any URL prefix)
//   - closer: a function to call when done (closes SFTP connections),
//     or nil for local paths
func CreateFileSystem(pathStr string) (FS, string, func(), error) {
	parsed, err := ParsePath(pathStr)
	if err != nil {
		return nil, "", nil, err
	}

	if !parsed.IsRemote {
		return NewRealFileSystem(), parsed.LocalPath, nil, nil
	}

	conn, err := Connect(parsed.Host, parsed.Port, parsed.User)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s@%s:%d: %w",
			parsed.User, parsed.Host, parsed.Port, err)
	}

	closer := func() {
		_ = conn.Close()
	}

	return NewSFTPFileSystem(conn), parsed.Path, closer, nil
}
