package filesystem

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParsedPath represents either a local path or an SFTP URL.
type ParsedPath struct {
	IsRemote bool

	// For local paths
	LocalPath string

	// For SFTP paths
	Host string
	Port int
	User string
	Path string // Remote path
}

// ParsePath parses a path string, detecting whether it's a local path or SFTP URL.
// SFTP URLs have the format: sftp://user@host:port/path/to/dir
// Port is optional (defaults to 22)
// Examples:
//   - sftp://joe@myserver.com/home/joe/sources
//   - sftp://joe@myserver.com:2222/projects
//   - /local/path/to/files (local path)
func ParsePath(path string) (*ParsedPath, error) {
	if strings.HasPrefix(path, "sftp://") {
		return parseSFTPURL(path)
	}

	return &ParsedPath{
		IsRemote:  false,
		LocalPath: path,
	}, nil
}

// parseSFTPURL parses an SFTP URL into its components.
func parseSFTPURL(sftpURL string) (*ParsedPath, error) {
	u, err := url.Parse(sftpURL)
	if err != nil {
		return nil, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.Scheme != "sftp" {
		return nil, fmt.Errorf("expected sftp:// scheme, got %s://", u.Scheme)
	}

	if u.User == nil || u.User.Username() == "" {
		return nil, fmt.Errorf("SFTP URL must include username (sftp://user@host/path)")
	}
	user := u.User.Username()

	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("SFTP URL must include host")
	}

	port := 22
	if portStr := u.Port(); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid port number: %w", err)
		}
		port = p
	}

	// SFTP path convention:
	//   sftp://user@host/path  → relative to home directory (strip leading /)
	//   sftp://user@host//path → absolute path /path (strip one /)
	//   sftp://user@host       → home directory (.)
	remotePath := u.Path
	switch {
	case remotePath == "" || remotePath == "/":
		remotePath = "."
	case strings.HasPrefix(remotePath, "//"):
		remotePath = remotePath[1:]
	default:
		remotePath = strings.TrimPrefix(remotePath, "/")
	}

	return &ParsedPath{
		IsRemote: true,
		Host:     host,
		Port:     port,
		User:     user,
		Path:     remotePath,
	}, nil
}
