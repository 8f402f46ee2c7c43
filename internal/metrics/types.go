package metrics

import "time"

// Frame is a complete snapshot of every metric for one tick.
// Nil pointers mark metrics that were unavailable.
type Frame struct {
	Timestamp time.Time

	// CPUCores is always present.
	CPUCores uint

	// CPUUsage is a percentage in [0, 100].
	CPUUsage *float64

	// CPUTemp is in degrees Celsius.
	CPUTemp *float64

	RAM  *RAMUsage
	Disk *DiskUsage

	// GPUVendor is the detection result, known even when the temperature isn't.
	GPUVendor Vendor
	GPU       *GPUReading
}

// RAMUsage is used and total memory in MB.
type RAMUsage struct {
	UsedMB  uint64
	TotalMB uint64
}

// DiskUsage is used and total space across all mounted filesystems in GB.
type DiskUsage struct {
	UsedGB  float64
	TotalGB float64
}

// GPUReading pairs the detected vendor with its temperature in Celsius.
type GPUReading struct {
	Vendor       Vendor
	TemperatureC float64
}

// UsageMode selects how CPU usage is computed.
type UsageMode string

const (
	// UsageDelta is busy time since the previous reading.
	UsageDelta UsageMode = "delta"
	// UsageCumulative is busy time since boot.
	UsageCumulative UsageMode = "cumulative"
)
