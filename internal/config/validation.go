package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validateDirPath is a validation function for directory paths that
// works on any OS. The standard "dirpath" validator in
// go-playground/validator mis-flags some valid paths (notably on
// Windows); this accepts any non-existing path and only demands that
// an existing path be an actual directory.
func validateDirPath(fl validator.FieldLevel) bool {
	path := strings.TrimSpace(fl.Field().String())
	if path == "" {
		// empty means "unset", which is valid for an optional override
		return true
	}

	clean := filepath.Clean(path)

	if fi, err := os.Stat(clean); err == nil {
		return fi.IsDir()
	} else if os.IsNotExist(err) {
		return true
	}
	return false
}

// expandPath expands a leading "~" and any environment variables in
// path, returning an absolute path.
func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	path = os.ExpandEnv(path)
	return filepath.Abs(path)
}
