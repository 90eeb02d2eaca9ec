// Package platform hides OS-specific fact sources behind one capability
// interface. The implementation is picked once at startup from the
// running OS so everything above it is platform-agnostic and can be
// tested against fakes.
package platform

import (
	"context"
	"runtime"
	"strings"

	"github.com/monify-labs/sysfetch/internal/metrics/dynamic"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// Platform exposes the facts that have to be read differently per OS.
// Probe and sensor methods report absence with a false flag instead of an
// error: a missing value omits one line, it never fails the report.
type Platform interface {
	// Name is the GOOS the implementation was built for
	Name() string

	// KernelName is the label printed before the kernel release
	KernelName() string

	// DistroID selects the logo ("arch", "ubuntu", "macos", ...)
	DistroID() string

	// OSPrettyName is the human readable OS name, "" when unknown
	OSPrettyName() string

	ProbeDeviceIdentity() (models.DeviceIdentity, bool)
	ProbeSubsystemIdentity() (models.SubsystemIdentity, bool)

	Battery() (*models.BatteryInfo, bool)

	// PowerDraw returns the current battery discharge in whole watts
	PowerDraw() (int, bool)

	// Screen returns the resolution of the first connected display
	Screen() (string, bool)

	DiskUsage(ctx context.Context) (*models.DiskMetrics, error)
}

// New returns the implementation for the running OS
func New() Platform {
	return For(runtime.GOOS)
}

// For returns the implementation for goos
func For(goos string) Platform {
	switch goos {
	case "linux":
		return NewLinux()
	case "darwin":
		return NewDarwin()
	default:
		return NewGeneric(goos)
	}
}

// base provides root disk usage and "absent" answers for hardware the
// OS cannot probe.
type base struct {
	goos     string
	diskRoot string
}

func (b *base) Name() string { return b.goos }

func (b *base) KernelName() string {
	if b.goos == "" {
		return "Unknown"
	}
	return strings.ToUpper(b.goos[:1]) + b.goos[1:]
}

func (b *base) DistroID() string     { return "" }
func (b *base) OSPrettyName() string { return "" }

func (b *base) ProbeDeviceIdentity() (models.DeviceIdentity, bool) {
	return models.DeviceIdentity{}, false
}

func (b *base) ProbeSubsystemIdentity() (models.SubsystemIdentity, bool) {
	return models.SubsystemIdentity{}, false
}

func (b *base) Battery() (*models.BatteryInfo, bool) { return nil, false }
func (b *base) PowerDraw() (int, bool)               { return 0, false }
func (b *base) Screen() (string, bool)               { return "", false }

// DiskUsage reports usage of the root mount point
func (b *base) DiskUsage(ctx context.Context) (*models.DiskMetrics, error) {
	return dynamic.CollectDiskSpace(ctx, b.diskRoot)
}

// Darwin has no sysfs; only disk usage and identity are available.
type Darwin struct {
	base
}

// NewDarwin creates the macOS implementation
func NewDarwin() *Darwin {
	return &Darwin{base{goos: "darwin", diskRoot: "/"}}
}

func (d *Darwin) KernelName() string { return "macOS" }
func (d *Darwin) DistroID() string   { return "macos" }

// Generic serves every OS without a dedicated implementation
type Generic struct {
	base
}

// NewGeneric creates a fallback implementation labelled with goos
func NewGeneric(goos string) *Generic {
	return &Generic{base{goos: goos, diskRoot: "/"}}
}
