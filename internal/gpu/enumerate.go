package gpu

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/jaypipes/ghw"
	"github.com/sirupsen/logrus"

	"github.com/monify-labs/sysfetch/internal/sysfs"
	"github.com/monify-labs/sysfetch/pkg/models"
)

const nvidiaVendorID = "10de"

// HardwareEnumerator asks the driver stacks for a vendor supplied adapter
// name. Sources in order: NVML, the proprietary NVIDIA proc interface,
// then a full ghw PCI enumeration. Each takes tens of milliseconds.
// Every source only answers for the adapter whose ids were detected, so a
// hybrid system never pairs the iGPU ids with the discrete card's name.
type HardwareEnumerator struct {
	procRoot string
	log      *logrus.Entry
}

// NewHardwareEnumerator creates an enumerator reading the real /proc
func NewHardwareEnumerator(log *logrus.Entry) *HardwareEnumerator {
	return &HardwareEnumerator{procRoot: "/proc", log: log}
}

// PrettyName returns the name of the adapter identified by id
func (e *HardwareEnumerator) PrettyName(id models.DeviceIdentity) (string, bool) {
	if id.VendorID == nvidiaVendorID {
		if name, ok := e.nvmlName(id); ok {
			return name, true
		}
		if name, ok := e.nvidiaProcName(id); ok {
			return name, true
		}
	}
	return e.ghwName(id)
}

// nvmlName queries libnvidia-ml for the device with the detected PCI id
func (e *HardwareEnumerator) nvmlName(id models.DeviceIdentity) (string, bool) {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		e.log.WithField("nvml", nvml.ErrorString(ret)).Debug("NVML unavailable")
		return "", false
	}
	defer nvml.Shutdown()

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return "", false
	}

	for i := 0; i < count; i++ {
		device, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			continue
		}
		pci, ret := device.GetPciInfo()
		if ret != nvml.SUCCESS || !pciDeviceIDMatches(pci.PciDeviceId, id) {
			continue
		}
		name, ret := device.GetName()
		if ret != nvml.SUCCESS || name == "" {
			return "", false
		}
		return withVendorPrefix("NVIDIA", name), true
	}
	return "", false
}

// pciDeviceIDMatches compares NVML's combined id (device<<16 | vendor)
func pciDeviceIDMatches(combined uint32, id models.DeviceIdentity) bool {
	vendor := fmt.Sprintf("%04x", combined&0xffff)
	device := fmt.Sprintf("%04x", combined>>16)
	return vendor == id.VendorID && device == id.DeviceID
}

// nvidiaProcName reads the "Model:" line that the proprietary driver
// publishes per GPU under /proc/driver/nvidia/gpus/<slot>/information.
// The file carries no PCI ids, so it is only trusted for an NVIDIA adapter.
func (e *HardwareEnumerator) nvidiaProcName(id models.DeviceIdentity) (string, bool) {
	if id.VendorID != nvidiaVendorID {
		return "", false
	}

	matches, err := filepath.Glob(filepath.Join(e.procRoot, "driver/nvidia/gpus/*/information"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)

	model, ok := sysfs.ValueFromFile(matches[0], "Model", ":")
	if !ok || model == "" {
		return "", false
	}
	return withVendorPrefix("NVIDIA", model), true
}

// ghwName enumerates PCI graphics cards and names the one matching id
func (e *HardwareEnumerator) ghwName(id models.DeviceIdentity) (string, bool) {
	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		e.log.WithError(err).Debug("ghw GPU enumeration failed")
		return "", false
	}
	return cardName(matchingCard(info.GraphicsCards, id))
}

// matchingCard returns the lowest indexed card with the given ids
func matchingCard(cards []*ghw.GraphicsCard, id models.DeviceIdentity) *ghw.GraphicsCard {
	var chosen *ghw.GraphicsCard
	for _, card := range cards {
		if card == nil || card.DeviceInfo == nil || card.DeviceInfo.Vendor == nil || card.DeviceInfo.Product == nil {
			continue
		}
		if NormalizeID(card.DeviceInfo.Vendor.ID) != id.VendorID || NormalizeID(card.DeviceInfo.Product.ID) != id.DeviceID {
			continue
		}
		if chosen == nil || card.Index < chosen.Index {
			chosen = card
		}
	}
	return chosen
}

func cardName(card *ghw.GraphicsCard) (string, bool) {
	if card == nil {
		return "", false
	}
	device := card.DeviceInfo
	product := marketingName(device.Product.Name)
	if product == "" {
		return "", false
	}
	vendor := vendorShortName(NormalizeID(device.Vendor.ID), device.Vendor.Name)
	return withVendorPrefix(vendor, product), true
}

// vendorShortName maps the big three GPU vendors to their brand names
func vendorShortName(vendorID, fallback string) string {
	switch vendorID {
	case "1002":
		return "AMD"
	case "10de":
		return "NVIDIA"
	case "8086":
		return "Intel"
	default:
		return fallback
	}
}

// marketingName prefers the bracketed product name pci.ids carries after
// the chip codename, e.g. "Ellesmere [Radeon RX 580]" -> "Radeon RX 580".
func marketingName(product string) string {
	open := strings.Index(product, "[")
	end := strings.LastIndex(product, "]")
	if open >= 0 && end > open+1 {
		return strings.TrimSpace(product[open+1 : end])
	}
	return strings.TrimSpace(product)
}

// withVendorPrefix prepends vendor unless name already mentions it
func withVendorPrefix(vendor, name string) string {
	if vendor == "" || strings.Contains(strings.ToLower(name), strings.ToLower(vendor)) {
		return name
	}
	return vendor + " " + name
}
