//go:build !windows

package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// roamingAppData falls back to %APPDATA% and then the default profile layout
// when the windows adapter is selected on a non-windows build.
func roamingAppData() (string, error) {
	if dir := os.Getenv("APPDATA"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "AppData", "Roaming"), nil
}
