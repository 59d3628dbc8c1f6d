package walker

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/joe/list-files/pkg/filesystem"
)

// candidateSource supplies the candidate paths of one traversal level:
// either the caller's root list or the children of one directory.
type candidateSource interface {
	// next returns the next candidate path, or false when the level's
	// candidates are used up.
	next() (string, bool)
}

// listSource feeds the caller-supplied starting paths, in order.
type listSource struct {
	paths []string
	idx   int
}

func (s *listSource) next() (string, bool) {
	if s.idx >= len(s.paths) {
		return "", false
	}

	p := s.paths[s.idx]
	s.idx++

	return p, true
}

// link is one level of in-progress traversal: a source of candidate paths
// plus the link to resume once this level is drained. Links form a singly
// linked stack, one per active directory depth, drained LIFO so that the
// most recently entered subdirectory finishes before its parent resumes.
type link struct {
	fsys   filesystem.FS
	ctx    Context
	source candidateSource
	cont   *link
	log    zerolog.Logger
}

// next advances this level by one step. Exactly one of the returns is
// meaningful: a regular-file path to emit, a new link to descend into
// (whose continuation is this link), or neither when the level is drained.
// A directory that cannot be enumerated is returned as a fatal error.
func (l *link) next() (file string, descend *link, err error) {
	for {
		candidate, ok := l.source.next()
		if !ok {
			return "", nil, nil
		}

		if l.ctx.excluded(candidate) {
			l.log.Debug().Str("path", candidate).Msg("Excluded by pattern")
			continue
		}

		resolved, kind, rerr := resolveEntry(l.fsys, candidate, l.ctx.FollowSymlinks)
		if rerr != nil {
			// Broken link, permission error, vanished entry: skip the
			// entry, keep the traversal going.
			l.log.Debug().Err(rerr).Str("path", candidate).Msg("Skipping unresolvable entry")
			continue
		}

		switch kind {
		case kindFile:
			return resolved, nil, nil
		case kindDir:
			entries, eerr := newDirEntries(l.fsys, resolved)
			if eerr != nil {
				return "", nil, fmt.Errorf("cannot enumerate %s: %w", resolved, eerr)
			}

			return "", &link{
				fsys:   l.fsys,
				ctx:    l.ctx,
				source: entries,
				cont:   l,
				log:    l.log,
			}, nil
		default:
			// Unfollowed symlinks and special files (sockets, devices,
			// pipes) are skipped.
			l.log.Debug().Str("path", candidate).Msg("Skipping non-regular entry")
			continue
		}
	}
}
