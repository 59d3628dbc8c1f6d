package main

import (
	"bytes"
	"testing"

	"github.com/joe/list-files/internal/config"
)

func TestGroupRoots_ConsecutiveBackendsMerge(t *testing.T) {
	t.Parallel()

	groups, err := groupRoots([]string{
		"/a",
		"/b",
		"sftp://joe@host/one",
		"sftp://joe@host/two",
		"/c",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(groups) != 3 {
		t.Fatalf("Got %d groups, want 3", len(groups))
	}

	if groups[0].key != "" || len(groups[0].roots) != 2 {
		t.Errorf("First group = %+v, want two local roots", groups[0])
	}
	if groups[1].key != "joe@host:22" || len(groups[1].roots) != 2 {
		t.Errorf("Second group = %+v, want two remote roots on joe@host:22", groups[1])
	}
	if groups[1].roots[0] != "one" || groups[1].roots[1] != "two" {
		t.Errorf("Remote roots = %v, want [one two]", groups[1].roots)
	}
	if groups[2].key != "" || groups[2].roots[0] != "/c" {
		t.Errorf("Third group = %+v, want the trailing local root", groups[2])
	}
}

func TestGroupRoots_SameBackendNonConsecutiveStaysOrdered(t *testing.T) {
	t.Parallel()

	// Top-level order matters more than connection reuse: a local root
	// between two remote roots splits them into separate groups.
	groups, err := groupRoots([]string{
		"sftp://joe@host/one",
		"/local",
		"sftp://joe@host/two",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(groups) != 3 {
		t.Fatalf("Got %d groups, want 3", len(groups))
	}
}

func TestGroupRoots_InvalidURL(t *testing.T) {
	t.Parallel()

	if _, err := groupRoots([]string{"sftp://nouser.example.com/path"}); err == nil {
		t.Error("Expected error for URL without username")
	}
}

func TestPrinter_NulFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &printer{out: &buf, format: config.Nul}

	p.print("/a/b.txt")
	p.print("/c d.txt")

	want := "/a/b.txt\x00/c d.txt\x00"
	if buf.String() != want {
		t.Errorf("Output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_PlainFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &printer{out: &buf, format: config.Plain}

	p.print("/a.txt")

	if buf.String() != "/a.txt\n" {
		t.Errorf("Output = %q, want %q", buf.String(), "/a.txt\n")
	}
}

func TestPrinter_SummaryOnlyForPretty(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	p := &printer{out: &out, format: config.Plain}
	p.print("/a.txt")
	p.summary(&errOut)
	if errOut.Len() != 0 {
		t.Errorf("Plain format wrote a summary: %q", errOut.String())
	}

	p = &printer{out: &out, format: config.Pretty}
	p.print("/a.txt")
	p.print("/b.txt")
	p.summary(&errOut)
	if errOut.String() != "2 files\n" {
		t.Errorf("Summary = %q, want %q", errOut.String(), "2 files\n")
	}
}
