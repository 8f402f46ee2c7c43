//go:build linux

package metrics

import (
	"fmt"

	"github.com/prometheus/procfs"
)

// CPUCount returns the number of logical processors listed in cpuinfo.
func (s *Source) CPUCount() (uint, error) {
	fs, err := procfs.NewFS(s.procRoot)
	if err != nil {
		return 0, err
	}
	cpus, err := fs.CPUInfo()
	if err != nil {
		return 0, err
	}
	if len(cpus) == 0 {
		return 0, fmt.Errorf("no processors listed in %s", s.procPath("cpuinfo"))
	}
	return uint(len(cpus)), nil
}
