package walker

import (
	"fmt"
	"os"

	"github.com/joe/list-files/pkg/filesystem"
)

// entryKind is the classification of a path after resolution.
type entryKind int

const (
	// kindOther covers special files (sockets, devices, pipes) and, when
	// symlinks are not being followed, the links themselves.
	kindOther entryKind = iota
	kindFile
	kindDir
)

// resolveEntry classifies a candidate path, following symbolic-link chains
// to their ultimate target when follow is set. Relative link targets are
// interpreted against the link's own containing directory. Each link path
// in a chain is recorded so that a cycle resolves as an error instead of
// looping forever; the caller treats resolution errors as skip-and-continue.
func resolveEntry(fsys filesystem.FS, p string, follow bool) (string, entryKind, error) {
	var seen map[string]struct{}

	for {
		info, err := fsys.Lstat(p)
		if err != nil {
			return "", kindOther, err
		}

		mode := info.Mode()
		switch {
		case mode.IsRegular():
			return p, kindFile, nil
		case mode.IsDir():
			return p, kindDir, nil
		case mode&os.ModeSymlink != 0:
			if !follow {
				return p, kindOther, nil
			}

			if seen == nil {
				seen = make(map[string]struct{})
			}
			if _, revisited := seen[p]; revisited {
				return "", kindOther, fmt.Errorf("symbolic link cycle at %s", p)
			}
			seen[p] = struct{}{}

			target, err := fsys.Readlink(p)
			if err != nil {
				return "", kindOther, err
			}
			if !fsys.IsAbs(target) {
				target = fsys.Join(fsys.Dir(p), target)
			}
			p = target
		default:
			return p, kindOther, nil
		}
	}
}
