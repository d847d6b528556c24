// Package platform resolves the per-user directories autostart storage lives
// under, for a platform identifier chosen at runtime, and describes the host.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Platform identifiers with a dedicated autostart adapter.
const (
	Linux   = "linux"
	Windows = "windows"
)

// Dirs holds the user roots a platform's storage directory is resolved against.
type Dirs struct {
	// ConfigDir is the user configuration root ($XDG_CONFIG_HOME or ~/.config).
	ConfigDir string
	// DataDir is the per-user roaming data root (%APPDATA%).
	DataDir string
}

// Current returns the identifier of the running operating system.
func Current() string { return runtime.GOOS }

// Normalize maps "" and "auto" to the running OS and lower-cases the rest.
func Normalize(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" || id == "auto" {
		return Current()
	}
	return id
}

// ResolveDirs returns the user roots for goos. Roots that cannot be
// determined are left empty only for platforms that do not need them.
func ResolveDirs(goos string) (Dirs, error) {
	switch goos {
	case Linux:
		dir, err := xdgConfigHome()
		if err != nil {
			return Dirs{}, err
		}
		return Dirs{ConfigDir: dir}, nil
	case Windows:
		dir, err := roamingAppData()
		if err != nil {
			return Dirs{}, err
		}
		return Dirs{ConfigDir: dir, DataDir: dir}, nil
	default:
		dir, _ := os.UserConfigDir()
		return Dirs{ConfigDir: dir}, nil
	}
}

// xdgConfigHome follows the XDG base directory rules: a relative
// $XDG_CONFIG_HOME is ignored.
func xdgConfigHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}
