package walker

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Context is the configuration shared by every level of one traversal.
// It is copied by value into each nested level and never mutated while a
// traversal is running.
type Context struct {
	// FollowSymlinks controls symbolic-link handling. When true, links are
	// dereferenced to their ultimate target before classification. When
	// false, a link is classified by its own type and skipped; it is never
	// emitted verbatim.
	FollowSymlinks bool

	// Excludes holds doublestar glob patterns. A candidate whose base name
	// or full slash-separated path matches any pattern is skipped, and if
	// it is a directory it is not descended into. Matching is
	// case-insensitive.
	Excludes []string
}

// excluded reports whether the candidate path matches any exclude pattern.
func (ctx Context) excluded(candidate string) bool {
	if len(ctx.Excludes) == 0 {
		return false
	}

	full := strings.ToLower(filepath.ToSlash(candidate))
	base := path.Base(full)

	for _, pattern := range ctx.Excludes {
		pattern = strings.ToLower(pattern)

		// An invalid pattern matches nothing.
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, full); err == nil && ok {
			return true
		}
	}

	return false
}
