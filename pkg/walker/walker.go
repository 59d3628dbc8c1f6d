// Package walker implements lazy, depth-first enumeration of regular files.
//
// Given an ordered list of starting paths (files and/or directories), a
// Walker produces a single-pass sequence of regular-file paths, recursing
// into directories and resolving symbolic links along the way. Recursion
// depth never grows the call stack: each directory level in progress is one
// link in an explicit chain, and a single flat loop drains the top link and
// then resumes its continuation.
//
// Traversal is synchronous and pull-based. Each call to Next may block on
// I/O; abandoning the iterator early leaks nothing because directory
// handles are closed as each level is read.
package walker

import (
	"github.com/joe/list-files/internal/logging"
	"github.com/joe/list-files/pkg/filesystem"
)

// Walker flattens the chain of in-progress directory levels into one
// linear sequence of file paths. It is single-pass: once exhausted it
// cannot be restarted, and Next keeps returning false.
type Walker struct {
	current *link
	err     error
}

// New creates a Walker over the given starting paths. Top-level order is
// preserved; within a directory, sibling order is whatever the backend's
// listing provides. The context is shared, unmodified, by every nested
// level of the traversal.
func New(fsys filesystem.FS, roots []string, ctx Context) *Walker {
	return &Walker{
		current: &link{
			fsys:   fsys,
			ctx:    ctx,
			source: &listSource{paths: append([]string(nil), roots...)},
			log:    logging.GetLogger("walker"),
		},
	}
}

// Next returns the next regular-file path, or false when the traversal is
// exhausted or a fatal error occurred. Check Err after Next returns false.
func (w *Walker) Next() (string, bool) {
	if w.err != nil {
		return "", false
	}

	for w.current != nil {
		file, descend, err := w.current.next()
		switch {
		case err != nil:
			// A directory that cannot be enumerated ends the whole
			// traversal; per-entry failures never surface here.
			w.err = err
			w.current = nil

			return "", false
		case descend != nil:
			// Entered a subdirectory: the new level becomes current and
			// resumes this one when drained.
			w.current = descend
		case file != "":
			return file, true
		default:
			// Level drained; resume the parent.
			w.current = w.current.cont
		}
	}

	return "", false
}

// Err returns the fatal error that terminated the traversal, if any.
// Should be checked after Next returns false.
func (w *Walker) Err() error {
	return w.err
}

// chainLength reports how many links are currently on the chain. The
// invariant is length ≤ traversal depth + 1; tests verify it.
func (w *Walker) chainLength() int {
	length := 0
	for l := w.current; l != nil; l = l.cont {
		length++
	}

	return length
}
