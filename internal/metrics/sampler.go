package metrics

import (
	"context"
	"time"

	"github.com/rileyhilliard/yoinky/internal/errors"
)

// Sampler turns Source readings into Frames.
type Sampler struct {
	src   *Source
	cores uint
	now   func() time.Time
}

// NewSampler checks that the CPU topology is readable. Without a core count
// there is nothing sensible to show, so this is the one fatal metric.
func NewSampler(src *Source) (*Sampler, error) {
	cores, err := src.CPUCount()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrPlatform,
			"Can't read CPU topology",
			"Make sure procfs is mounted at "+src.procRoot+" (or set paths.proc in the config)")
	}
	return &Sampler{src: src, cores: cores, now: time.Now}, nil
}

// Sample calls every accessor once and packages the results.
// GPU detection runs before the temperature query that depends on it.
func (s *Sampler) Sample(ctx context.Context) Frame {
	frame := Frame{
		Timestamp: s.now(),
		CPUCores:  s.cores,
	}

	if cores, err := s.src.CPUCount(); err == nil {
		frame.CPUCores = cores
	} else {
		s.src.log.Debug("cpu count unavailable, keeping %d: %v", s.cores, err)
	}

	if v, ok := s.src.CPUUsage(); ok {
		frame.CPUUsage = &v
	}
	if v, ok := s.src.CPUTemperature(); ok {
		frame.CPUTemp = &v
	}
	if v, ok := s.src.RAM(); ok {
		frame.RAM = &v
	}
	if v, ok := s.src.Disk(ctx); ok {
		frame.Disk = &v
	}

	frame.GPUVendor = s.src.DetectGPU()
	if t, ok := s.src.GPUTemperature(ctx, frame.GPUVendor); ok {
		frame.GPU = &GPUReading{Vendor: frame.GPUVendor, TemperatureC: t}
	}

	return frame
}
