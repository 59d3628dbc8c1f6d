//nolint:varnamelen // Test files use idiomatic short variable names (t, fs, etc.)
package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joe/list-files/pkg/filesystem"
)

func TestRealFileSystem_List(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", ".hidden"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "sub"), 0o755); err != nil {
		t.Fatalf("Failed to create test directory: %v", err)
	}

	fs := filesystem.NewRealFileSystem()

	names, err := fs.List(tmpDir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	// Listing is non-recursive and unfiltered; hidden-entry policy
	// belongs to the walker, not the backend.
	want := []string{".hidden", "a.txt", "b.txt", "sub"}
	if len(names) != len(want) {
		t.Fatalf("List returned %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestRealFileSystem_ListMissingDirectory(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewRealFileSystem()

	if _, err := fs.List(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestRealFileSystem_LstatDoesNotFollowLinks(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "real.txt")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	link := filepath.Join(tmpDir, "alias")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	fs := filesystem.NewRealFileSystem()

	info, err := fs.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat failed: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("Lstat followed the symlink; expected link info")
	}

	got, err := fs.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink failed: %v", err)
	}
	if got != target {
		t.Errorf("Readlink = %q, want %q", got, target)
	}
}

func TestMemFileSystem_ListReturnsImmediateChildren(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMemFileSystem()
	fs.AddFile("/root/a.txt")
	fs.AddFile("/root/sub/deep.txt")
	fs.AddDir("/root/empty")

	names, err := fs.List("/root")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"a.txt", "empty", "sub"}
	if len(names) != len(want) {
		t.Fatalf("List returned %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestMemFileSystem_ParentsCreatedImplicitly(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMemFileSystem()
	fs.AddFile("/a/b/c/file.txt")

	info, err := fs.Lstat("/a/b")
	if err != nil {
		t.Fatalf("Lstat failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("Implicit parent is not a directory")
	}
}

func TestMemFileSystem_Symlinks(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMemFileSystem()
	fs.AddSymlink("/links/x", "/target")

	info, err := fs.Lstat("/links/x")
	if err != nil {
		t.Fatalf("Lstat failed: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("Expected symlink mode")
	}

	target, err := fs.Readlink("/links/x")
	if err != nil {
		t.Fatalf("Readlink failed: %v", err)
	}
	if target != "/target" {
		t.Errorf("Readlink = %q, want /target", target)
	}

	if _, err := fs.Readlink("/links"); err == nil {
		t.Error("Readlink on a directory should fail")
	}
}

func TestMemFileSystem_ErrorInjection(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMemFileSystem()
	fs.AddDir("/locked")
	fs.AddFile("/locked/secret.txt")
	fs.FailList("/locked", os.ErrPermission)
	fs.FailLstat("/locked/secret.txt", os.ErrPermission)

	if _, err := fs.List("/locked"); err == nil {
		t.Error("Expected injected List error")
	}
	if _, err := fs.Lstat("/locked/secret.txt"); err == nil {
		t.Error("Expected injected Lstat error")
	}
}
