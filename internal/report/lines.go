package report

import (
	"fmt"
	"strings"

	"github.com/monify-labs/sysfetch/internal/config"
	"github.com/monify-labs/sysfetch/internal/display"
	"github.com/monify-labs/sysfetch/pkg/models"
)

const bytesPerGB = 1_000_000_000

// Lines formats the enabled sections of r in display order. Sections that
// were not collected produce no line.
func Lines(r *models.Report, d config.DisplayConfig) []string {
	var lines []string
	add := func(label, value string) {
		lines = append(lines, display.Label(label)+" "+value)
	}

	if d.Identifier && r.Identifier != nil {
		header := r.Identifier.User + "@" + r.Identifier.Hostname
		lines = append(lines, header, strings.Repeat("-", len(header)))
	}

	if r.System != nil {
		if d.OS {
			add("OS", fmt.Sprintf("%s (%s)", r.System.PrettyName, r.System.Arch))
		}
		if d.Kernel {
			add("Kernel", strings.TrimSpace(r.System.KernelName+" "+r.System.KernelVersion))
		}
	}

	if d.CPU && r.CPU != nil {
		cpu := display.StripCPUName(r.CPU.Model)
		if d.CPUFrequency && r.CPU.FrequencyMHz > 0 {
			cpu += " @ " + display.FormatFrequency(r.CPU.FrequencyMHz)
		}
		add("CPU", cpu)
	}

	if d.GPU && r.GPU != nil {
		if name := strings.TrimSpace(display.StripGPUName(r.GPU.Name)); name != "" {
			add("GPU", name)
		}
	}

	if d.Screen && r.Screen != "" {
		add("Screen", r.Screen)
	}

	if d.RAM && r.Memory != nil {
		if usage, ok := memoryUsage(r.Memory.Used, r.Memory.Total); ok {
			add("RAM", usage)
		}
	}

	if d.Swap && r.Swap != nil {
		if usage, ok := memoryUsage(r.Swap.Used, r.Swap.Total); ok {
			add("Swap", usage)
		}
	}

	if d.Uptime && r.Uptime != nil {
		add("Uptime", display.FormatUptime(r.Uptime.Seconds))
	}

	if d.Battery && r.Battery != nil {
		add("Battery", fmt.Sprintf("%s (%s)", display.ColorPercentageInverse(r.Battery.Capacity), r.Battery.Status))
	}

	if d.PowerDraw && r.PowerDraw > 0 {
		add("Power Draw", fmt.Sprintf("%d W", r.PowerDraw))
	}

	if d.Disk && r.Disk != nil {
		if pct, err := display.Percentage(float64(r.Disk.Used), float64(r.Disk.Total)); err == nil {
			add(fmt.Sprintf("Disk (%s)", r.Disk.MountPoint), fmt.Sprintf("%dGB / %dGB (%s)",
				r.Disk.Used/bytesPerGB, r.Disk.Total/bytesPerGB, display.ColorPercentage(float64(pct))))
		}
	}

	return lines
}

// memoryUsage renders "<used> / <total> (<pct>% used)" from byte counts
func memoryUsage(used, total uint64) (string, bool) {
	usedText, err := display.ConvertKiB(float64(used) / 1024)
	if err != nil {
		return "", false
	}
	totalText, err := display.ConvertKiB(float64(total) / 1024)
	if err != nil {
		return "", false
	}
	pct, err := display.Percentage(float64(used), float64(total))
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s / %s (%s used)", usedText, totalText, display.ColorPercentage(float64(pct))), true
}
