// Package pathutil provides path manipulation utilities.
package pathutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading ~ or ~/ to home.
// Returns the path unchanged if it doesn't start with ~.
func ExpandTilde(path, home string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	if home == "" {
		return "", fmt.Errorf("expand %s: home directory unknown", path)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// ResolvePath resolves a path with tilde expansion and relative path resolution.
// - ~/... paths are expanded to home
// - Absolute paths are returned as-is
// - Relative paths are resolved from baseDir (or left relative if baseDir is empty)
// - Empty paths are not allowed and return an error
func ResolvePath(path, baseDir, home string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		return ExpandTilde(path, home)
	}

	if filepath.IsAbs(path) || baseDir == "" {
		return path, nil
	}

	return filepath.Join(baseDir, path), nil
}
