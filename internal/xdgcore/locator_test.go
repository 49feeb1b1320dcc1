//go:build linux || freebsd || netbsd || openbsd

package xdgcore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/babarot/trashcan/internal/status"
)

func TestLocateTrashHomeTrashOverride(t *testing.T) {
	dir := t.TempDir()
	SetHomeTrashDir(dir)
	defer SetHomeTrashDir("")

	dirs, code := locateTrash(resolved{})
	if code != status.Ok {
		t.Fatalf("got %v, want Ok", code)
	}
	if dirs.root != dir {
		t.Errorf("got root %q, want %q", dirs.root, dir)
	}
	if _, err := os.Stat(dirs.infoDir); err != nil {
		t.Errorf("info dir not created: %v", err)
	}
	if _, err := os.Stat(dirs.filesDir); err != nil {
		t.Errorf("files dir not created: %v", err)
	}
}

func TestLocateTrashDefaultsToHomeDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")

	src := filepath.Join(home, "x")
	os.WriteFile(src, []byte("x"), 0644)
	rs, code := resolvePath(src)
	if code != status.Ok {
		t.Fatalf("resolvePath failed: %v", code)
	}

	dirs, code := locateTrash(rs)
	if code != status.Ok {
		t.Fatalf("locateTrash failed: %v", code)
	}
	want := filepath.Join(home, ".local", "share", "Trash")
	if dirs.root != want {
		t.Errorf("got root %q, want %q", dirs.root, want)
	}
}

func TestLocateTrashForceHomeTrash(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	SetForceHomeTrash(true)
	defer SetForceHomeTrash(false)

	// A bogus device id would normally fail device matching and
	// attempt top-dir placement; forceHomeTrash must bypass that.
	dirs, code := locateTrash(resolved{device: 0xDEADBEEF})
	if code != status.Ok {
		t.Fatalf("got %v, want Ok", code)
	}
	want := filepath.Join(home, ".local", "share", "Trash")
	if dirs.root != want {
		t.Errorf("got root %q, want %q", dirs.root, want)
	}
}

func TestIsValidAdminTrashRejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	os.Mkdir(real, 0700|os.ModeSticky)
	link := filepath.Join(dir, "link")
	os.Symlink(real, link)

	if isValidAdminTrash(link) {
		t.Errorf("a symlinked admin trash directory must be rejected")
	}
}

func TestIsValidAdminTrashRejectsNonSticky(t *testing.T) {
	dir := t.TempDir()
	admin := filepath.Join(dir, ".Trash")
	os.Mkdir(admin, 0755)

	if isValidAdminTrash(admin) {
		t.Errorf("a non-sticky admin trash directory must be rejected")
	}
}

func TestIsValidAdminTrashAcceptsStickyDir(t *testing.T) {
	dir := t.TempDir()
	admin := filepath.Join(dir, ".Trash")
	if err := os.Mkdir(admin, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(admin, 0755|os.ModeSticky); err != nil {
		t.Fatal(err)
	}

	if !isValidAdminTrash(admin) {
		t.Errorf("a sticky, non-symlink admin trash directory must be accepted")
	}
}

func TestIsValidAdminTrashRejectsMissing(t *testing.T) {
	if isValidAdminTrash(filepath.Join(t.TempDir(), "nope")) {
		t.Errorf("a nonexistent path must be rejected")
	}
}
