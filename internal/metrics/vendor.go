package metrics

import "strings"

// Vendor identifies the GPU maker.
type Vendor int

const (
	VendorUnknown Vendor = iota
	VendorNvidia
	VendorAMD
)

// AMDVendorID is AMD's PCI vendor id as printed by sysfs.
const AMDVendorID = "0x1002"

func (v Vendor) String() string {
	switch v {
	case VendorNvidia:
		return "Nvidia"
	case VendorAMD:
		return "AMD"
	default:
		return "Unknown"
	}
}

// ClassifyGPU decides the vendor from what detection found on disk.
// The nvidia driver marker wins; otherwise the DRM vendor id is compared
// against AMD's after trimming whitespace.
func ClassifyGPU(nvidiaMarker bool, vendorID string) Vendor {
	if nvidiaMarker {
		return VendorNvidia
	}
	if strings.TrimSpace(vendorID) == AMDVendorID {
		return VendorAMD
	}
	return VendorUnknown
}
