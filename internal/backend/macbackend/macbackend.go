//go:build darwin

// Package macbackend is the macOS trash adapter: an opaque
// collaborator that asks Finder, via osascript, to move the path to
// the trash. It implements none of the
// freedesktop protocol and shares no code with internal/xdgcore.
package macbackend

import (
	"os/exec"
	"path/filepath"

	"github.com/babarot/trashcan/internal/status"
)

const trashScript = `
on run argv
  tell application "Finder"
    repeat with f in argv
      move (f as POSIX file) to trash
    end repeat
  end tell
end run
`

// Trash moves path to the macOS trash by asking Finder to do it via
// AppleScript, the same mechanism a user dragging the file to the
// trash can triggers.
func Trash(path string) status.Code {
	bin, err := exec.LookPath("osascript")
	if err != nil {
		return status.BackendFailed
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return status.BackendFailed
	}

	cmd := exec.Command(bin, "-e", trashScript, abs)
	if err := cmd.Run(); err != nil {
		return status.BackendFailed
	}
	return status.Ok
}
