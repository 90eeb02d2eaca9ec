// Package static collects host facts that do not change while the
// process runs: OS, kernel, CPU model and the user@host identifier.
package static

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/monify-labs/sysfetch/pkg/models"
)

// hostInfo is replaced in tests
var hostInfo = host.InfoWithContext

// OSSource supplies the platform specific OS labels
type OSSource interface {
	OSPrettyName() string
	KernelName() string
}

// CollectSystemInfo gathers OS and kernel information. The pretty name
// comes from the platform (os-release on Linux) and falls back to the
// gopsutil platform and version.
func CollectSystemInfo(ctx context.Context, src OSSource) (*models.SystemInfo, error) {
	info, err := hostInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	return &models.SystemInfo{
		PrettyName:      prettyName(src.OSPrettyName(), info.Platform, info.PlatformVersion),
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		Arch:            info.KernelArch,
		KernelName:      src.KernelName(),
		KernelVersion:   info.KernelVersion,
	}, nil
}

func prettyName(osRelease, platform, version string) string {
	if osRelease != "" {
		return osRelease
	}
	if name := strings.TrimSpace(platform + " " + version); name != "" {
		return name
	}
	return "Unknown"
}
