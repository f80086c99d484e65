package config

import (
	"os"
	"path/filepath"
)

// appDir is the per-user directory holding configs, logs and records.
const appDir = ".cubes"

// ExpandHome replaces a leading ~ with the user's home directory.
// The path is returned unchanged if home is unavailable.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// UserPath joins elems under ~/.cubes, or returns empty if home is unavailable.
func UserPath(elems ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, appDir}, elems...)...)
}

// DefaultRecordsPath is where the record table lives unless overridden.
func DefaultRecordsPath() string {
	return "~/" + appDir + "/record_table.txt"
}

// DefaultLogPath is where the TUI writes its log.
func DefaultLogPath() string {
	return "~/" + appDir + "/cubes.log"
}
