// Package env resolves the handful of filesystem locations the CLI
// layer needs outside the trash core itself: where its config file
// and log file live, following the freedesktop base-directory spec.
package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
)

// TRASHCAN_CONFIG_PATH is the default config file location; the log
// file location is resolved separately by internal/trashlog, which
// additionally consults $LOGS_DIRECTORY and falls back to the XDG
// cache directory via github.com/adrg/xdg.
var TRASHCAN_CONFIG_PATH string

func init() {
	if e := os.Getenv("TRASHCAN_CONFIG_PATH"); e != "" {
		TRASHCAN_CONFIG_PATH = e
		return
	}
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			configDir = filepath.Join(homeDir, defaultXDGConfigDirname)
		}
	}
	TRASHCAN_CONFIG_PATH = filepath.Join(configDir, "trashcan", "config.yaml")
}
