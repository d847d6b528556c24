package platform

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/host"
)

// HostInfo describes the machine the process runs on.
type HostInfo struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	Desktop         string `json:"desktop,omitempty"`
}

// Describe gathers host details via gopsutil. Desktop comes from
// $XDG_CURRENT_DESKTOP and is empty outside a desktop session.
func Describe(ctx context.Context) (HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostInfo{}, fmt.Errorf("reading host info: %w", err)
	}
	return HostInfo{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		Desktop:         os.Getenv("XDG_CURRENT_DESKTOP"),
	}, nil
}
