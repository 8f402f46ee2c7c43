//go:build !linux

package metrics

import "runtime"

// CPUCount returns the number of logical CPUs the Go runtime sees.
func (s *Source) CPUCount() (uint, error) {
	return uint(runtime.NumCPU()), nil
}
