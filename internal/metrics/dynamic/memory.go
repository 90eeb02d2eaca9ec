// Package dynamic collects usage figures that change between runs:
// memory, swap, root disk and uptime. Every collector takes a single
// reading; nothing samples in the background.
package dynamic

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/monify-labs/sysfetch/pkg/models"
)

// replaced in tests
var (
	virtualMemory = mem.VirtualMemoryWithContext
	swapMemory    = mem.SwapMemoryWithContext
)

// CollectMemory reads physical memory usage. Used is total minus
// available so reclaimable page cache does not count as used.
func CollectMemory(ctx context.Context) (*models.MemoryMetrics, error) {
	vmem, err := virtualMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read memory usage: %w", err)
	}

	used := vmem.Used
	if vmem.Available > 0 && vmem.Available <= vmem.Total {
		used = vmem.Total - vmem.Available
	}

	return &models.MemoryMetrics{
		Total:       vmem.Total,
		Used:        used,
		UsedPercent: usedPercent(used, vmem.Total),
	}, nil
}

func usedPercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}
