//go:build darwin

package trashcan

import (
	"github.com/babarot/trashcan/internal/backend/macbackend"
	"github.com/babarot/trashcan/internal/status"
)

func softDelete(path string) status.Code {
	return macbackend.Trash(path)
}

// Configure is a no-op on macOS: the Finder-driven adapter has no
// placement algorithm to steer.
func Configure(homeTrashDir string, forceHomeTrash bool, nameMax int) {}
