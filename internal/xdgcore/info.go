//go:build linux || freebsd || netbsd || openbsd

package xdgcore

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const trashInfoTimeFormat = "2006-01-02T15:04:05"

// infoResult is the three-valued outcome InfoFileWriter (spec ref
// §4.5) must distinguish: success, a pre-existing file at the
// candidate path (collision), or any other I/O error.
type infoResult int

const (
	infoOk infoResult = iota
	infoCollision
	infoErr
)

// writeInfoFile atomically creates path with the XDG trash-info body
// for originalPath and deletionTime. The exclusive-create flag is what
// makes the collision signal trustworthy under concurrent writers: the
// kernel guarantees exactly one O_EXCL open succeeds for a given path.
func writeInfoFile(path, originalPath string, deletionTime time.Time) infoResult {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return infoCollision
		}
		return infoErr
	}

	body := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escapePath(originalPath),
		deletionTime.Format(trashInfoTimeFormat),
	)

	_, writeErr := f.WriteString(body)
	closeErr := f.Close()

	if writeErr != nil || closeErr != nil {
		os.Remove(path)
		return infoErr
	}

	return infoOk
}
