package dynamic

import (
	"context"
	"fmt"

	"github.com/monify-labs/sysfetch/pkg/models"
)

// CollectSwap gathers swap usage. A host without swap reports zero total.
func CollectSwap(ctx context.Context) (*models.SwapMetrics, error) {
	swap, err := swapMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read swap usage: %w", err)
	}

	return &models.SwapMetrics{
		Total:       swap.Total,
		Used:        swap.Used,
		UsedPercent: swap.UsedPercent,
	}, nil
}
