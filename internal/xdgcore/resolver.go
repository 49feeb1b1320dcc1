//go:build linux || freebsd || netbsd || openbsd

package xdgcore

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/babarot/trashcan/internal/status"
)

// resolved is the output of resolvePath: a canonical, symlink-free
// location plus the identifying device id and basename needed by the
// rest of the pipeline.
type resolved struct {
	path   string // absolute, canonical
	device uint64
	base   string
}

// resolvePath canonicalises path the way PathResolver (spec ref §4.1)
// requires: the full realpath(3) equivalent, including the final
// component. A symlink's target is resolved and trashed, not the link
// itself, matching the upstream library's use of realpath(3) (it has
// no lstat-based exception for the last path component).
func resolvePath(path string) (resolved, status.Code) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return resolved{}, status.RealPathFailed
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return resolved{}, status.RealPathFailed
	}

	base := filepath.Base(canonical)

	if base == "" || base == "/" || base == "." {
		// canonical was exactly "/" (or similar root): no basename at all.
		return resolved{}, status.NameFailed
	}

	var st syscall.Stat_t
	if err := syscall.Lstat(canonical, &st); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return resolved{}, status.RealPathFailed
		}
		return resolved{}, status.PathStatFailed
	}

	return resolved{
		path:   canonical,
		device: uint64(st.Dev),
		base:   base,
	}, status.Ok
}

func deviceOf(path string) (uint64, error) {
	var st syscall.Stat_t
	if err := syscall.Lstat(path, &st); err != nil {
		return 0, err
	}
	return uint64(st.Dev), nil
}
