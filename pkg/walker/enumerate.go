package walker

import (
	"strings"

	"github.com/joe/list-files/pkg/filesystem"
)

// dirEntries enumerates the immediate children of exactly one directory,
// non-recursively. Hidden (dot-prefixed) entries are excluded, so hidden
// subtrees are never descended into. The listing is read up front and the
// backend's directory handle is released before enumeration begins, which
// is what lets a consumer abandon a traversal without leaking handles.
type dirEntries struct {
	fsys  filesystem.FS
	dir   string
	names []string
	idx   int
}

// newDirEntries creates the enumerator for one directory. A directory
// that cannot be listed at all is a fatal error for the traversal, unlike
// per-entry failures which are skipped by the caller.
func newDirEntries(fsys filesystem.FS, dir string) (*dirEntries, error) {
	names, err := fsys.List(dir)
	if err != nil {
		return nil, err
	}

	visible := names[:0]
	for _, name := range names {
		if strings.HasPrefix(name, ".") {
			continue
		}
		visible = append(visible, name)
	}

	return &dirEntries{fsys: fsys, dir: dir, names: visible}, nil
}

func (e *dirEntries) next() (string, bool) {
	if e.idx >= len(e.names) {
		return "", false
	}

	name := e.names[e.idx]
	e.idx++

	return e.fsys.Join(e.dir, name), true
}
