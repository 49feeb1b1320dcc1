//go:build linux || freebsd || netbsd || openbsd

package xdgcore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/babarot/trashcan/internal/status"
)

// makeTrashedEntry creates a directory entry under filesDir the way a
// trashed directory looks: a single regular file of size len(payload)
// inside it, plus the sibling .trashinfo that makes it a real entry
// for refreshDirSizeCache. Only directory entries are counted (spec
// ref §4.7: non-directory children of files/ are intentionally
// absent from the cache).
func makeTrashedEntry(t *testing.T, dirs dirSet, name string, payload []byte) {
	t.Helper()
	entryDir := filepath.Join(dirs.filesDir, name)
	if err := os.MkdirAll(entryDir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(entryDir, "payload"), payload, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dirs.infoDir, name+trashInfoSuffix), []byte("[Trash Info]\n"), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestRefreshDirSizeCacheOneLinePerEntry(t *testing.T) {
	root := t.TempDir()
	dirs := newDirSet(root)
	if code := dirs.ensure(); code != status.Ok {
		t.Fatalf("ensure failed: %v", code)
	}

	makeTrashedEntry(t, dirs, "a.txt", []byte("hello"))
	makeTrashedEntry(t, dirs, "b.txt", []byte("worldwide"))

	if code := refreshDirSizeCache(dirs); code != status.Ok {
		t.Fatalf("refresh failed: %v", code)
	}

	data, err := os.ReadFile(filepath.Join(root, "directorysizes"))
	if err != nil {
		t.Fatal(err)
	}
	sizes := parseDirSizeCache(string(data))
	if len(sizes) != 2 {
		t.Fatalf("got %d entries, want 2: %q", len(sizes), data)
	}
	if sizes["a.txt"] != 5 {
		t.Errorf("a.txt: got size %d, want 5", sizes["a.txt"])
	}
	if sizes["b.txt"] != 9 {
		t.Errorf("b.txt: got size %d, want 9", sizes["b.txt"])
	}
}

func TestRefreshDirSizeCacheSkipsMissingInfoFile(t *testing.T) {
	root := t.TempDir()
	dirs := newDirSet(root)
	dirs.ensure()

	// a files/ directory entry with no matching .trashinfo must be skipped.
	orphan := filepath.Join(dirs.filesDir, "orphan")
	if err := os.MkdirAll(orphan, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(orphan, "payload"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if code := refreshDirSizeCache(dirs); code != status.Ok {
		t.Fatalf("refresh failed: %v", code)
	}

	data, err := os.ReadFile(filepath.Join(root, "directorysizes"))
	if err != nil {
		t.Fatal(err)
	}
	if len(parseDirSizeCache(string(data))) != 0 {
		t.Errorf("expected no entries, got %q", data)
	}
}

func TestRecursiveRegularFileSizeIgnoresSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	os.WriteFile(target, []byte("0123456789"), 0644)
	os.Symlink(target, filepath.Join(dir, "link.txt"))

	got := recursiveRegularFileSize(dir)
	if got != 10 {
		t.Errorf("got %d, want 10 (symlink must not be double-counted)", got)
	}
}

func TestRefreshDirSizeCacheAtomicSwap(t *testing.T) {
	root := t.TempDir()
	dirs := newDirSet(root)
	dirs.ensure()
	makeTrashedEntry(t, dirs, "a.txt", []byte("x"))

	if code := refreshDirSizeCache(dirs); code != status.Ok {
		t.Fatalf("first refresh failed: %v", code)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "info" && e.Name() != "files" && e.Name() != "directorysizes" {
			t.Errorf("leftover temp file after atomic swap: %q", e.Name())
		}
	}
}
