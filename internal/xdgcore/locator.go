//go:build linux || freebsd || netbsd || openbsd

package xdgcore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/babarot/trashcan/internal/status"
)

// dirSet is a TrashDirSet (spec ref §3): a placement decision plus the
// two subdirectories every entry under it lives in.
type dirSet struct {
	root     string
	infoDir  string
	filesDir string
}

const dirMode = 0700

func newDirSet(root string) dirSet {
	return dirSet{
		root:     root,
		infoDir:  filepath.Join(root, "info"),
		filesDir: filepath.Join(root, "files"),
	}
}

func (d dirSet) ensure() status.Code {
	if err := os.MkdirAll(d.infoDir, dirMode); err != nil {
		return status.MkdirFailed
	}
	if err := os.MkdirAll(d.filesDir, dirMode); err != nil {
		return status.MkdirFailed
	}
	return status.Ok
}

// homeTrashOverride and forceHomeTrash let the config layer steer
// placement without touching the algorithm itself: an explicit trash
// root (e.g. on a deliberately chosen filesystem) or a request to
// never fall back to a top-dir trash.
var (
	homeTrashOverride string
	forceHomeTrash    bool
)

// SetHomeTrashDir overrides the home trash root directory. Passing ""
// restores the default ($XDG_DATA_HOME/Trash or
// $HOME/.local/share/Trash).
func SetHomeTrashDir(path string) {
	homeTrashOverride = path
}

// SetForceHomeTrash makes locateTrash always target home trash, even
// when the source lives on a different device (the subsequent rename
// will then fail RenameFailed rather than silently falling back to a
// cross-device copy, per the Non-goal that forbids that fallback).
func SetForceHomeTrash(force bool) {
	forceHomeTrash = force
}

// locateTrash implements TrashLocator (spec ref §4.2): choose home
// trash when the source shares its device, otherwise try top-dir case
// 1 (<mount>/.Trash/<uid>) and fall back to case 2
// (<mount>/.Trash-<uid>).
func locateTrash(src resolved) (dirSet, status.Code) {
	if homeTrashOverride != "" {
		home := newDirSet(homeTrashOverride)
		if code := home.ensure(); code != status.Ok {
			return dirSet{}, code
		}
		return home, status.Ok
	}

	dataHome, code := homeDataDir()
	if code != status.Ok {
		return dirSet{}, code
	}

	if err := os.MkdirAll(dataHome, dirMode); err != nil {
		return dirSet{}, status.MkdirFailed
	}

	if _, err := deviceOf(dataHome); err != nil {
		return dirSet{}, status.HomeStatFailed
	}

	if forceHomeTrash || sameDevice(dataHome, src.path) {
		home := newDirSet(filepath.Join(dataHome, "Trash"))
		if code := home.ensure(); code != status.Ok {
			return dirSet{}, code
		}
		return home, status.Ok
	}

	uid := os.Getuid()

	if mount, ok := mountPointForDevice(src.device); ok {
		admin := filepath.Join(mount, ".Trash")
		if isValidAdminTrash(admin) {
			case1 := newDirSet(filepath.Join(admin, strconv.Itoa(uid)))
			if code := case1.ensure(); code == status.Ok {
				return case1, status.Ok
			}
			// fall through to case 2 on creation failure
		}

		case2Root := filepath.Join(mount, fmt.Sprintf(".Trash-%d", uid))
		case2 := newDirSet(case2Root)
		if code := case2.ensure(); code != status.Ok {
			return dirSet{}, status.MkdirFailed
		}
		return case2, status.Ok
	}

	return dirSet{}, status.TopDirFailed
}

// homeDataDir resolves $XDG_DATA_HOME, falling back to
// $HOME/.local/share. Fails HomeTrashFailed if neither is set.
func homeDataDir() (string, status.Code) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return dataHome, status.Ok
	}
	home := os.Getenv("HOME")
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}
	if home == "" {
		return "", status.HomeTrashFailed
	}
	return filepath.Join(home, ".local", "share"), status.Ok
}

// isValidAdminTrash implements the case-1 sticky-bit / non-symlink
// checks (spec ref §4.2 step 5): a hostile or merely sloppy mount must
// not be able to hijack deletions into an attacker-controlled
// directory.
func isValidAdminTrash(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return false
	}
	if !info.IsDir() {
		return false
	}
	if info.Mode()&os.ModeSticky == 0 {
		return false
	}
	return true
}
