package dynamic

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMemoryUsesAvailable(t *testing.T) {
	orig := virtualMemory
	t.Cleanup(func() { virtualMemory = orig })
	virtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 1000, Available: 750, Used: 100}, nil
	}

	m, err := CollectMemory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), m.Total)
	assert.Equal(t, uint64(250), m.Used)
	assert.Equal(t, 25.0, m.UsedPercent)
}

func TestCollectMemoryWithoutAvailable(t *testing.T) {
	orig := virtualMemory
	t.Cleanup(func() { virtualMemory = orig })
	virtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 400, Used: 100}, nil
	}

	m, err := CollectMemory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), m.Used)
	assert.Equal(t, 25.0, m.UsedPercent)
}

func TestCollectMemoryError(t *testing.T) {
	orig := virtualMemory
	t.Cleanup(func() { virtualMemory = orig })
	virtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) {
		return nil, errors.New("no meminfo")
	}

	_, err := CollectMemory(context.Background())
	assert.ErrorContains(t, err, "no meminfo")
}

func TestCollectSwap(t *testing.T) {
	orig := swapMemory
	t.Cleanup(func() { swapMemory = orig })
	swapMemory = func(context.Context) (*mem.SwapMemoryStat, error) {
		return &mem.SwapMemoryStat{Total: 2048, Used: 512, UsedPercent: 25}, nil
	}

	s, err := CollectSwap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2048), s.Total)
	assert.Equal(t, uint64(512), s.Used)
	assert.Equal(t, 25.0, s.UsedPercent)
}

func TestCollectUptime(t *testing.T) {
	origUptime, origBoot := hostUptime, hostBootTime
	t.Cleanup(func() { hostUptime, hostBootTime = origUptime, origBoot })
	hostUptime = func(context.Context) (uint64, error) { return 3601, nil }
	hostBootTime = func(context.Context) (uint64, error) { return 0, errors.New("no btime") }

	u, err := CollectUptime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3601), u.Seconds)
	assert.Zero(t, u.BootTime)

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"seconds":3601}`, string(data))

	hostBootTime = func(context.Context) (uint64, error) { return 1700000000, nil }
	u, err = CollectUptime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1700000000), u.BootTime)
}

func TestCollectDiskSpace(t *testing.T) {
	orig := diskUsage
	t.Cleanup(func() { diskUsage = orig })
	diskUsage = func(_ context.Context, path string) (*disk.UsageStat, error) {
		return &disk.UsageStat{Path: path, Total: 500e9, Used: 125e9, Free: 375e9, UsedPercent: 25}, nil
	}

	d, err := CollectDiskSpace(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, "/", d.MountPoint)
	assert.Equal(t, uint64(125e9), d.Used)
	assert.Equal(t, 25.0, d.UsedPercent)
}

func TestCollectDiskSpaceZeroSize(t *testing.T) {
	orig := diskUsage
	t.Cleanup(func() { diskUsage = orig })
	diskUsage = func(context.Context, string) (*disk.UsageStat, error) {
		return &disk.UsageStat{}, nil
	}

	_, err := CollectDiskSpace(context.Background(), "/")
	assert.Error(t, err)
}
