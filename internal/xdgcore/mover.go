//go:build linux || freebsd || netbsd || openbsd

package xdgcore

import (
	"os"

	"github.com/babarot/trashcan/internal/status"
)

// moveIntoTrash implements Mover (spec ref §4.6): rename src to dst.
// On failure the sibling reservation info file is unlinked so the
// atomicity invariant holds — either both sides of a TrashEntry exist
// or neither does. EXDEV is not retried; it surfaces as RenameFailed
// like every other rename error, per the cross-device Non-goal.
func moveIntoTrash(src, dst, infoPath string) status.Code {
	if err := os.Rename(src, dst); err != nil {
		os.Remove(infoPath)
		return status.RenameFailed
	}
	return status.Ok
}
