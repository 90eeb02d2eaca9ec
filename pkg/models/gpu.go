package models

// DeviceIdentity identifies one GPU adapter by its PCI vendor and device
// codes. Both fields are normalized (lowercase hex, no 0x prefix).
type DeviceIdentity struct {
	VendorID string `json:"vendor_id"`
	DeviceID string `json:"device_id"`
}

// SubsystemIdentity identifies the board variant built around a device.
type SubsystemIdentity struct {
	SubvendorID string `json:"subvendor_id"`
	SubdeviceID string `json:"subdevice_id"`
}

// CacheRecord is the sole content of the GPU cache file.
// The id fields are normalized exactly like probe-time identifiers so
// plain string equality decides staleness.
type CacheRecord struct {
	GPUNamePretty string `yaml:"gpu_name_pretty" json:"gpu_name_pretty"`
	GPUVendorID   string `yaml:"gpu_vendor_id" json:"gpu_vendor_id"`
	GPUDeviceID   string `yaml:"gpu_device_id" json:"gpu_device_id"`
}

// Matches reports whether the record was written for the given adapter.
func (c *CacheRecord) Matches(id DeviceIdentity) bool {
	return c.GPUVendorID == id.VendorID && c.GPUDeviceID == id.DeviceID
}
