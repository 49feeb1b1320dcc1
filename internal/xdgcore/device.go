//go:build linux || freebsd || netbsd || openbsd

package xdgcore

// sameDevice reports whether a and b live on the same device. Like
// the locator's other device checks it uses lstat, so a symlink is
// not followed.
func sameDevice(a, b string) bool {
	da, err := deviceOf(a)
	if err != nil {
		return false
	}
	db, err := deviceOf(b)
	if err != nil {
		return false
	}
	return da == db
}
