//go:build linux || freebsd || netbsd || openbsd

package trashcan

import (
	"github.com/babarot/trashcan/internal/status"
	"github.com/babarot/trashcan/internal/xdgcore"
)

func softDelete(path string) status.Code {
	return xdgcore.SoftDelete(path)
}

// Configure applies CLI/config-layer overrides to the XDG core. It is
// a no-op on Windows and macOS, where none of these concepts apply.
func Configure(homeTrashDir string, forceHomeTrash bool, nameMax int) {
	xdgcore.SetHomeTrashDir(homeTrashDir)
	xdgcore.SetForceHomeTrash(forceHomeTrash)
	xdgcore.SetNameMax(nameMax)
}
