//go:build linux

package xdgcore

import (
	"syscall"

	"github.com/moby/sys/mountinfo"
)

// mountPointForDevice implements MountLookup (spec ref §4.3): map a
// device id to the path of the mount point backing it, by walking the
// kernel mount table via mountinfo. The first match wins; device ids
// are unique per mounted filesystem at any instant so ties cannot
// occur.
func mountPointForDevice(device uint64) (string, bool) {
	mounts, err := mountinfo.GetMounts(nil)
	if err != nil {
		return "", false
	}

	for _, m := range mounts {
		var st syscall.Stat_t
		if err := syscall.Lstat(m.Mountpoint, &st); err != nil {
			continue
		}
		if uint64(st.Dev) == device {
			return m.Mountpoint, true
		}
	}
	return "", false
}
