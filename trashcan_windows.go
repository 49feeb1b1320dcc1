//go:build windows

package trashcan

import (
	"github.com/babarot/trashcan/internal/backend/winbackend"
	"github.com/babarot/trashcan/internal/status"
)

func softDelete(path string) status.Code {
	return winbackend.Trash(path)
}

// Configure is a no-op on Windows: the shell-level adapter has no
// placement algorithm to steer.
func Configure(homeTrashDir string, forceHomeTrash bool, nameMax int) {}
