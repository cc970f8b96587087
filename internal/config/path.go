// Package config holds small helpers for interpreting user-supplied
// configuration values.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a path the way users write them in config files:
// a leading ~ becomes the home directory and $VAR references are expanded.
// Unresolvable pieces are left as-is rather than erroring, since the
// consumer will fail with a clearer message when it opens the path.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
