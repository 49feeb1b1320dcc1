//go:build linux || freebsd || netbsd || openbsd

package xdgcore

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/babarot/trashcan/internal/status"
	"github.com/google/uuid"
)

// refreshDirSizeCache implements DirSizeCache (spec ref §4.7):
// rewrite <root>/directorysizes so it contains exactly one line per
// direct subdirectory of files_dir that has a matching .trashinfo
// (subdirectories without one are skipped), built via a temp-file-then-rename
// atomic swap so concurrent readers never observe a partial file.
func refreshDirSizeCache(dirs dirSet) status.Code {
	tempPath := filepath.Join(dirs.root, uuid.NewString())

	tmp, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return status.DirCacheFailed
	}

	entries, err := os.ReadDir(dirs.filesDir)
	if err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return status.DirCacheFailed
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()

		infoPath := filepath.Join(dirs.infoDir, name+trashInfoSuffix)
		infoSt, err := os.Lstat(infoPath)
		if err != nil {
			// No matching .trashinfo: silently skip, per spec.
			continue
		}

		size := recursiveRegularFileSize(filepath.Join(dirs.filesDir, name))
		line := fmt.Sprintf("%d %d %s\n", size, infoSt.ModTime().Unix(), name)
		if _, err := tmp.WriteString(line); err != nil {
			tmp.Close()
			os.Remove(tempPath)
			return status.DirCacheFailed
		}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return status.DirCacheFailed
	}

	target := filepath.Join(dirs.root, "directorysizes")
	if err := os.Rename(tempPath, target); err != nil {
		os.Remove(tempPath)
		return status.DirCacheFailed
	}

	return status.Ok
}

// recursiveRegularFileSize sums the byte size of every regular file
// reachable beneath root. Symlinks, sockets, fifos and devices
// contribute 0 and are not followed.
func recursiveRegularFileSize(root string) uint64 {
	var total uint64
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}
		if info.Mode().IsRegular() {
			total += uint64(info.Size())
		}
		return nil
	})
	return total
}

// parseDirSizeCache is a small reader used only by tests to verify
// cache consistency; the production path never reads this file back.
func parseDirSizeCache(data string) map[string]uint64 {
	out := map[string]uint64{}
	for _, line := range strings.Split(strings.TrimRight(data, "\n"), "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 3)
		if len(fields) != 3 {
			continue
		}
		size, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		out[fields[2]] = size
	}
	return out
}
