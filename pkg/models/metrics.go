package models

// Report is the complete one-shot snapshot rendered next to the logo.
// Nil sections were either disabled or could not be collected.
type Report struct {
	Identifier *IdentifierInfo `json:"identifier,omitempty"`
	System     *SystemInfo     `json:"system,omitempty"`
	CPU        *CPUInfo        `json:"cpu,omitempty"`
	GPU        *GPUInfo        `json:"gpu,omitempty"`
	Screen     string          `json:"screen,omitempty"`
	Memory     *MemoryMetrics  `json:"memory,omitempty"`
	Swap       *SwapMetrics    `json:"swap,omitempty"`
	Uptime     *UptimeMetrics  `json:"uptime,omitempty"`
	Battery    *BatteryInfo    `json:"battery,omitempty"`
	PowerDraw  int             `json:"power_draw_watts,omitempty"`
	Disk       *DiskMetrics    `json:"disk,omitempty"`

	// DistroID selects the logo, e.g. "arch" or "macos".
	DistroID string `json:"distro_id"`
}

// IdentifierInfo is the user@host header
type IdentifierInfo struct {
	User     string `json:"user"`
	Hostname string `json:"hostname"`
}

// SystemInfo contains OS and kernel information
type SystemInfo struct {
	PrettyName      string `json:"pretty_name"`    // Ubuntu 22.04.3 LTS
	Platform        string `json:"platform"`       // ubuntu, arch, darwin
	PlatformVersion string `json:"platform_version"`
	Arch            string `json:"arch"`           // amd64, arm64
	KernelName      string `json:"kernel_name"`    // Linux, macOS
	KernelVersion   string `json:"kernel_version"` // 6.6.7-arch1-1
}

// CPUInfo contains processor identification
type CPUInfo struct {
	Model        string  `json:"model"`
	Cores        int     `json:"cores"`
	Threads      int     `json:"threads"`
	FrequencyMHz float64 `json:"frequency_mhz,omitempty"`
}

// GPUInfo contains the resolved adapter name and the ids it was resolved from
type GPUInfo struct {
	Name     string         `json:"name"`
	Identity DeviceIdentity `json:"identity"`
}

// MemoryMetrics contains memory usage information
type MemoryMetrics struct {
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
}

// SwapMetrics contains swap memory usage information
type SwapMetrics struct {
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
}

// UptimeMetrics contains time since boot
type UptimeMetrics struct {
	Seconds  uint64 `json:"seconds"`
	BootTime uint64 `json:"boot_time,omitempty"` // Unix timestamp, 0 when unknown
}

// BatteryInfo is read from the first power supply
type BatteryInfo struct {
	Capacity float64 `json:"capacity"` // percent
	Status   string  `json:"status"`   // Charging, Discharging, Full
}

// DiskMetrics contains usage of a single mount point
type DiskMetrics struct {
	MountPoint  string  `json:"mount"`
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"used_percent"`
}
