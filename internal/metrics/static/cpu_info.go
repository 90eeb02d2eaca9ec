package static

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/monify-labs/sysfetch/pkg/models"
)

var errNoCPU = errors.New("no cpu reported")

var (
	cpuInfo   = cpu.InfoWithContext
	cpuCounts = cpu.CountsWithContext
)

// CollectCPUInfo gathers the processor model, core counts and the highest
// clock any logical CPU reports
func CollectCPUInfo(ctx context.Context) (*models.CPUInfo, error) {
	infos, err := cpuInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cpu info: %w", err)
	}
	if len(infos) == 0 {
		return nil, errNoCPU
	}

	// Counts are best effort, a failed count stays zero
	physicalCores, _ := cpuCounts(ctx, false)
	logicalCores, _ := cpuCounts(ctx, true)

	var maxMHz float64
	for _, info := range infos {
		maxMHz = max(maxMHz, info.Mhz)
	}

	return &models.CPUInfo{
		Model:        infos[0].ModelName,
		Cores:        physicalCores,
		Threads:      logicalCores,
		FrequencyMHz: maxMHz,
	}, nil
}
