package dynamic

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/monify-labs/sysfetch/pkg/models"
)

var diskUsage = disk.UsageWithContext

// CollectDiskSpace reads usage of the filesystem mounted at mountPoint
func CollectDiskSpace(ctx context.Context, mountPoint string) (*models.DiskMetrics, error) {
	usage, err := diskUsage(ctx, mountPoint)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", mountPoint, err)
	}
	if usage.Total == 0 {
		return nil, fmt.Errorf("filesystem at %s reports zero size", mountPoint)
	}

	return &models.DiskMetrics{
		MountPoint:  mountPoint,
		Total:       usage.Total,
		Used:        usage.Used,
		Free:        usage.Free,
		UsedPercent: usage.UsedPercent,
	}, nil
}
