// Package report assembles a one-shot snapshot of the host and turns it
// into the ordered info lines shown beside the logo.
package report

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/monify-labs/sysfetch/internal/config"
	"github.com/monify-labs/sysfetch/internal/metrics/dynamic"
	"github.com/monify-labs/sysfetch/internal/metrics/static"
	"github.com/monify-labs/sysfetch/internal/platform"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// GPUResolver turns the probed adapter into a display name
type GPUResolver interface {
	ResolveInfo(forceRefresh bool) (*models.GPUInfo, bool)
}

// Collector gathers every enabled section of the report
type Collector struct {
	platform platform.Platform
	gpu      GPUResolver
	display  config.DisplayConfig
	log      *logrus.Entry
}

// NewCollector creates a collector for the sections enabled in display
func NewCollector(p platform.Platform, gpu GPUResolver, display config.DisplayConfig, log *logrus.Entry) *Collector {
	return &Collector{
		platform: p,
		gpu:      gpu,
		display:  display,
		log:      log,
	}
}

// Collect gathers all enabled sections. The gopsutil collectors run in
// parallel; GPU resolution stays on the calling goroutine. A failing
// section is logged and left nil, it never fails the whole report.
func (c *Collector) Collect(ctx context.Context, forceRefresh bool) *models.Report {
	var wg sync.WaitGroup
	var mu sync.Mutex
	result := &models.Report{DistroID: c.platform.DistroID()}

	run := func(enabled bool, name string, collect func() error) {
		if !enabled {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := collect(); err != nil {
				c.log.WithError(err).WithField("section", name).Warn("Failed to collect section")
			}
		}()
	}

	d := c.display

	if d.Identifier {
		result.Identifier = static.CollectIdentifier()
	}

	run(d.OS || d.Kernel, "system", func() error {
		info, err := static.CollectSystemInfo(ctx, c.platform)
		if err != nil {
			return err
		}
		mu.Lock()
		result.System = info
		mu.Unlock()
		return nil
	})

	run(d.CPU, "cpu", func() error {
		info, err := static.CollectCPUInfo(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		result.CPU = info
		mu.Unlock()
		return nil
	})

	run(d.RAM, "ram", func() error {
		m, err := dynamic.CollectMemory(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		result.Memory = m
		mu.Unlock()
		return nil
	})

	run(d.Swap, "swap", func() error {
		s, err := dynamic.CollectSwap(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		result.Swap = s
		mu.Unlock()
		return nil
	})

	run(d.Uptime, "uptime", func() error {
		u, err := dynamic.CollectUptime(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		result.Uptime = u
		mu.Unlock()
		return nil
	})

	run(d.Disk, "disk", func() error {
		usage, err := c.platform.DiskUsage(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		result.Disk = usage
		mu.Unlock()
		return nil
	})

	// GPU resolution and the sensor reads run on this goroutine while the
	// collectors above are in flight
	if d.GPU {
		if info, ok := c.gpu.ResolveInfo(forceRefresh); ok {
			result.GPU = info
		} else {
			c.log.Debug("No GPU name available")
		}
	}
	if d.Screen {
		if screen, ok := c.platform.Screen(); ok {
			result.Screen = screen
		}
	}
	if d.Battery {
		if battery, ok := c.platform.Battery(); ok {
			result.Battery = battery
		}
	}
	if d.PowerDraw {
		if watts, ok := c.platform.PowerDraw(); ok {
			result.PowerDraw = watts
		}
	}

	wg.Wait()

	return result
}
