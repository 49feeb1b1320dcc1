//go:build linux || freebsd || netbsd || openbsd

package xdgcore

import (
	"crypto/rand"
	"encoding/hex"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/babarot/trashcan/internal/status"
)

// nameMaxDefault is used when a true pathconf(_PC_NAME_MAX) style
// query is unavailable, which is always true for a cgo-free Go build.
// 255 is the limit shared by every mainstream POSIX filesystem
// (ext4, xfs, btrfs, apfs, ffs); an implementation-chosen default is
// documented as acceptable by the spec's "treat unset/unlimited as
// sufficient" clause.
const nameMaxDefault = 255

const trashInfoSuffix = ".trashinfo"

// candidate is a (info_file_path, file_path) pair sharing a stem, the
// output of NameAllocator (spec ref §4.4).
type candidate struct {
	stem     string
	infoPath string
	filePath string
}

// allocateName produces the next candidate stem for basename base
// being trashed at time t into dirs, given the current collision
// counter and whether random-name mode has been forced.
func allocateName(base string, dirs dirSet, t time.Time, counter uint64, forceRandom bool) (candidate, status.Code) {
	ts := t.Format("20060102150405")
	cs := strconv.FormatUint(counter, 16)

	nameMax := nameMaxFor(dirs.filesDir)

	var stem string
	if forceRandom || (nameMax > 0 && len(base)+len(ts)+len(cs)+len(trashInfoSuffix) > nameMax) {
		stemLen := nameMax - len(trashInfoSuffix)
		if stemLen <= 0 {
			stemLen = nameMaxDefault - len(trashInfoSuffix)
		}
		if stemLen%2 != 0 {
			// Deliberate refinement over the upstream C library, which
			// rejects odd lengths outright: round down by one instead.
			stemLen--
		}
		if stemLen <= 0 {
			return candidate{}, status.NameAllocFailed
		}
		s, code := randomHexStem(stemLen)
		if code != status.Ok {
			return candidate{}, code
		}
		stem = s
	} else {
		stem = base + ts + cs
	}

	return candidate{
		stem:     stem,
		infoPath: filepath.Join(dirs.infoDir, stem+trashInfoSuffix),
		filePath: filepath.Join(dirs.filesDir, stem),
	}, status.Ok
}

// randomHexStem returns a stem of exactly n hex characters sourced from
// a cryptographically strong OS random device, n/2 bytes wide. The
// stem is uppercase, matching the upstream random-name convention.
func randomHexStem(n int) (string, status.Code) {
	buf := make([]byte, n/2)
	if _, err := rand.Read(buf); err != nil {
		return "", status.NameAllocFailed
	}
	return strings.ToUpper(hex.EncodeToString(buf)), status.Ok
}

// nameMaxOverride lets callers (config, tests) simulate a filesystem
// with a smaller NAME_MAX than nameMaxDefault, since Go has no
// cgo-free binding for pathconf(_PC_NAME_MAX) to query it for real.
var nameMaxOverride int

// SetNameMax overrides the NAME_MAX used for every subsequent
// allocation. Passing 0 restores the built-in default. Exposed for
// filesystems that document a smaller limit and for tests exercising
// the random-fallback path.
func SetNameMax(n int) {
	nameMaxOverride = n
}

// nameMaxFor returns the NAME_MAX used for dir: the SetNameMax
// override if one is set, otherwise nameMaxDefault. dir itself is not
// queried.
func nameMaxFor(dir string) int {
	if nameMaxOverride > 0 {
		return nameMaxOverride
	}
	return nameMaxDefault
}
