package platform

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/monify-labs/sysfetch/internal/display"
	"github.com/monify-labs/sysfetch/internal/gpu"
	"github.com/monify-labs/sysfetch/internal/sysfs"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// gpuCardIndices are the DRM card indices probed for the adapter, in order.
// The second index covers systems where card0 is a simple framebuffer.
var gpuCardIndices = [...]int{0, 1}

const batteryName = "BAT0"

// Linux reads facts from sysfs, procfs and /etc.
type Linux struct {
	base

	// sysRoot, procRoot and etcRoot default to the real filesystems and
	// point at synthetic trees in tests.
	sysRoot  string
	procRoot string
	etcRoot  string
}

// NewLinux creates a Linux implementation reading the real filesystems
func NewLinux() *Linux {
	return NewLinuxFrom("/sys", "/proc", "/etc")
}

// NewLinuxFrom creates a Linux implementation with custom filesystem roots
func NewLinuxFrom(sysRoot, procRoot, etcRoot string) *Linux {
	return &Linux{
		base:     base{goos: "linux", diskRoot: "/"},
		sysRoot:  sysRoot,
		procRoot: procRoot,
		etcRoot:  etcRoot,
	}
}

func (l *Linux) KernelName() string { return "Linux" }

// DistroID returns the ID field of os-release
func (l *Linux) DistroID() string {
	id, _ := sysfs.ValueFromFile(filepath.Join(l.etcRoot, "os-release"), "ID", "=")
	return id
}

// OSPrettyName returns the PRETTY_NAME field of os-release
func (l *Linux) OSPrettyName() string {
	name, _ := sysfs.ValueFromFile(filepath.Join(l.etcRoot, "os-release"), "PRETTY_NAME", "=")
	return name
}

func (l *Linux) cardDevicePath(index int) string {
	return filepath.Join(l.sysRoot, "class/drm", fmt.Sprintf("card%d", index), "device")
}

// ProbeDeviceIdentity returns the vendor/device pair of the first card
// index where both files are readable.
func (l *Linux) ProbeDeviceIdentity() (models.DeviceIdentity, bool) {
	for _, index := range gpuCardIndices {
		devicePath := l.cardDevicePath(index)

		vendor, err := sysfs.ReadFirstLine(filepath.Join(devicePath, "vendor"))
		if err != nil {
			continue
		}
		device, err := sysfs.ReadFirstLine(filepath.Join(devicePath, "device"))
		if err != nil {
			continue
		}

		return models.DeviceIdentity{
			VendorID: gpu.NormalizeID(vendor),
			DeviceID: gpu.NormalizeID(device),
		}, true
	}
	return models.DeviceIdentity{}, false
}

// ProbeSubsystemIdentity follows the same index order as
// ProbeDeviceIdentity for the subsystem_vendor/subsystem_device files.
func (l *Linux) ProbeSubsystemIdentity() (models.SubsystemIdentity, bool) {
	for _, index := range gpuCardIndices {
		devicePath := l.cardDevicePath(index)

		subvendor, err := sysfs.ReadFirstLine(filepath.Join(devicePath, "subsystem_vendor"))
		if err != nil {
			continue
		}
		subdevice, err := sysfs.ReadFirstLine(filepath.Join(devicePath, "subsystem_device"))
		if err != nil {
			continue
		}

		return models.SubsystemIdentity{
			SubvendorID: gpu.NormalizeID(subvendor),
			SubdeviceID: gpu.NormalizeID(subdevice),
		}, true
	}
	return models.SubsystemIdentity{}, false
}

func (l *Linux) batteryPath(attribute string) string {
	return filepath.Join(l.sysRoot, "class/power_supply", batteryName, attribute)
}

// Battery returns capacity and charge status when both are readable
func (l *Linux) Battery() (*models.BatteryInfo, bool) {
	capacityText, err := sysfs.ReadFirstLine(l.batteryPath("capacity"))
	if err != nil {
		return nil, false
	}
	capacity, err := display.ExtractNumericValue(capacityText)
	if err != nil {
		return nil, false
	}

	status, err := sysfs.ReadFirstLine(l.batteryPath("status"))
	if err != nil || status == "" {
		return nil, false
	}

	return &models.BatteryInfo{Capacity: capacity, Status: status}, true
}

// PowerDraw converts power_now (microwatts) to watts. Zero reads as absent.
func (l *Linux) PowerDraw() (int, bool) {
	text, err := sysfs.ReadFirstLine(l.batteryPath("power_now"))
	if err != nil {
		return 0, false
	}
	microwatts, err := display.ExtractNumericValue(text)
	if err != nil || microwatts < 0 {
		return 0, false
	}
	watts := int(microwatts / 1_000_000)
	return watts, watts != 0
}

// Screen returns the preferred mode of the first connected DRM connector
func (l *Linux) Screen() (string, bool) {
	connectors, err := filepath.Glob(filepath.Join(l.sysRoot, "class/drm", "card*-*"))
	if err != nil {
		return "", false
	}
	sort.Strings(connectors)

	for _, connector := range connectors {
		status, err := sysfs.ReadFirstLine(filepath.Join(connector, "status"))
		if err != nil || status != "connected" {
			continue
		}
		mode, err := sysfs.ReadFirstLine(filepath.Join(connector, "modes"))
		if err != nil || mode == "" {
			continue
		}
		return strings.TrimSpace(mode), true
	}
	return "", false
}
