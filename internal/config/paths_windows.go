//go:build windows

package config

import (
	"os"
	"path/filepath"
)

func configSearchPaths() []string {
	appData := os.Getenv("APPDATA")
	return []string{
		filepath.Join(appData, "Zen", "config.yaml"),
		filepath.Join(appData, "Zen", "config.toml"),
	}
}
