//go:build linux || freebsd || netbsd || openbsd

// Package xdgcore implements the freedesktop.org trash specification:
// placement across home trash and per-mount top-dirs, collision-safe
// info-file reservation, atomic rename into files/, and directory-size
// cache maintenance. It is the core referenced throughout this module;
// the platform backends in internal/backend are separate thin adapters
// that share no code with it.
package xdgcore

import (
	"time"

	"github.com/babarot/trashcan/internal/status"
)

// timeNow is the clock soft_delete reads (spec ref §4.9 step 3); a
// var rather than a direct time.Now() call so tests can pin the
// deletion timestamp.
var timeNow = time.Now

// SoftDelete relocates path into the caller's XDG trash store,
// following the orchestration in spec ref §4.9: resolve, locate,
// allocate a candidate name, write its info file, and on success
// rename the source and refresh the size cache. Every failure path
// leaves no new entry behind except the documented DirCacheFailed
// case, where the move has already committed.
func SoftDelete(path string) status.Code {
	src, code := resolvePath(path)
	if code != status.Ok {
		return code
	}

	dirs, code := locateTrash(src)
	if code != status.Ok {
		return code
	}

	now := timeNow()

	var counter uint64
	forceRandom := false

	for {
		cand, code := allocateName(src.base, dirs, now, counter, forceRandom)
		if code != status.Ok {
			return code
		}

		switch writeInfoFile(cand.infoPath, src.path, now) {
		case infoOk:
			if code := moveIntoTrash(src.path, cand.filePath, cand.infoPath); code != status.Ok {
				return code
			}
			if code := refreshDirSizeCache(dirs); code != status.Ok {
				return code
			}
			return status.Ok

		case infoCollision:
			if forceRandom {
				// Already on the random-name safety valve and still
				// collided: give up rather than loop forever.
				return status.CollisionFailed
			}
			counter++
			if counter == 0 {
				// Unsigned wraparound: switch to the random-name path.
				forceRandom = true
			}
			continue

		default: // infoErr
			return status.TrashInfoFailed
		}
	}
}
