package metrics

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/yoinky/internal/metrics/parsers"
)

// DetectGPU checks the nvidia driver marker and the first DRM card's vendor
// id, then classifies what it found. Only card0 is consulted.
func (s *Source) DetectGPU() Vendor {
	_, err := os.Stat(s.procPath("driver", "nvidia", "version"))
	nvidia := err == nil

	var vendorID string
	if !nvidia {
		data, err := os.ReadFile(s.sysPath("class", "drm", "card0", "device", "vendor"))
		if err != nil {
			s.log.Debug("gpu vendor id unreadable: %v", err)
		} else {
			vendorID = string(data)
		}
	}

	return ClassifyGPU(nvidia, vendorID)
}

// GPUTemperature queries the temperature for a vendor found by DetectGPU.
// Unknown vendors never have one.
func (s *Source) GPUTemperature(ctx context.Context, v Vendor) (float64, bool) {
	switch v {
	case VendorNvidia:
		return s.nvidiaTemperature(ctx)
	case VendorAMD:
		return s.amdTemperature()
	default:
		return 0, false
	}
}

func (s *Source) nvidiaTemperature(ctx context.Context) (float64, bool) {
	out, ok := s.run(ctx, "gpu temperature", "nvidia-smi",
		"--query-gpu=temperature.gpu", "--format=csv,noheader,nounits")
	if !ok {
		return 0, false
	}
	temp, err := parsers.ParseNvidiaTemperature(out)
	if err != nil {
		s.log.Debug("gpu temperature unavailable: %v", err)
		return 0, false
	}
	return temp, true
}

func (s *Source) amdTemperature() (float64, bool) {
	pattern := s.sysPath("class", "drm", "card0", "device", "hwmon", "hwmon*", "temp1_input")
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		s.log.Debug("gpu temperature unavailable: no hwmon sensor matches %s", pattern)
		return 0, false
	}
	return s.readMillidegrees("gpu temperature", matches[0])
}
