//go:build freebsd || netbsd || openbsd

package xdgcore

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// mountPointForDevice is the BSD MountLookup (spec ref §4.3). The BSD
// family has no /proc/self/mountinfo; getfsstat(2) is the kernel's
// in-memory mount list, the direct analogue of the Linux mountinfo
// table this module reads on linux via github.com/moby/sys/mountinfo.
func mountPointForDevice(device uint64) (string, bool) {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil || n <= 0 {
		return "", false
	}

	stats := make([]unix.Statfs_t, n)
	if _, err := unix.Getfsstat(stats, unix.MNT_NOWAIT); err != nil {
		return "", false
	}

	for _, s := range stats {
		mountpoint := bytesToString(s.Mntonname[:])
		var st syscall.Stat_t
		if err := syscall.Lstat(mountpoint, &st); err != nil {
			continue
		}
		if uint64(st.Dev) == device {
			return mountpoint, true
		}
	}
	return "", false
}

func bytesToString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
