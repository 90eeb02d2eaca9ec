package dynamic

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/monify-labs/sysfetch/pkg/models"
)

var (
	hostUptime   = host.UptimeWithContext
	hostBootTime = host.BootTimeWithContext
)

// CollectUptime gathers time since boot
func CollectUptime(ctx context.Context) (*models.UptimeMetrics, error) {
	uptime, err := hostUptime(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read uptime: %w", err)
	}

	metrics := &models.UptimeMetrics{Seconds: uptime}

	// Boot time is informational only; on failure it stays unset and is
	// omitted from the JSON report
	if bootTime, err := hostBootTime(ctx); err == nil {
		metrics.BootTime = bootTime
	}
	return metrics, nil
}
