package errors_test

import (
	"testing"

	"github.com/joe/list-files/pkg/errors"
)

func TestPatternMatcher_CaseInsensitive(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "uppercase permission denied",
			errorMsg: "PERMISSION DENIED",
			expected: errors.CategoryPermission,
		},
		{
			name:     "mixed case missing file",
			errorMsg: "No Such File Or Directory",
			expected: errors.CategoryPath,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_MatchTraversalErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "unlistable directory",
			errorMsg: "cannot enumerate /srv/data: failed to list directory /srv/data: permission denied",
			expected: errors.CategoryPermission,
		},
		{
			name:     "vanished root",
			errorMsg: "lstat /tmp/gone: no such file or directory",
			expected: errors.CategoryPath,
		},
		{
			name:     "symlink loop",
			errorMsg: "too many levels of symbolic links",
			expected: errors.CategorySymlink,
		},
		{
			name:     "detected cycle",
			errorMsg: "symbolic link cycle at /srv/loop/a",
			expected: errors.CategorySymlink,
		},
		{
			name:     "refused connection",
			errorMsg: "SSH connection failed: dial tcp 10.0.0.1:22: connection refused",
			expected: errors.CategoryConnection,
		},
		{
			name:     "unmatched message",
			errorMsg: "something entirely different",
			expected: errors.CategoryUnknown,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}
