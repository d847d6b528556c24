//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func roamingAppData() (string, error) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, windows.KF_FLAG_DEFAULT)
	if err != nil {
		return "", fmt.Errorf("resolve RoamingAppData: %w", err)
	}
	return dir, nil
}
