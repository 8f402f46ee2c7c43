package metrics

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rileyhilliard/yoinky/internal/exec"
	"github.com/rileyhilliard/yoinky/internal/logger"
	"github.com/rileyhilliard/yoinky/internal/metrics/parsers"
)

const (
	// DefaultProcRoot is where procfs is normally mounted.
	DefaultProcRoot = "/proc"
	// DefaultSysRoot is where sysfs is normally mounted.
	DefaultSysRoot = "/sys"

	kbPerMB = 1024
	kbPerGB = 1024 * 1024
)

// Source reads metrics from the local host.
type Source struct {
	procRoot string
	sysRoot  string
	runner   exec.Runner
	log      logger.Logger
	mode     UsageMode

	mu      sync.Mutex
	prevCPU *parsers.CPUTimes
}

// Option configures a Source.
type Option func(*Source)

// WithProcRoot reads procfs files under root instead of /proc.
func WithProcRoot(root string) Option {
	return func(s *Source) { s.procRoot = root }
}

// WithSysRoot reads sysfs files under root instead of /sys.
func WithSysRoot(root string) Option {
	return func(s *Source) { s.sysRoot = root }
}

// WithRunner sets the runner used for df and nvidia-smi.
func WithRunner(r exec.Runner) Option {
	return func(s *Source) { s.runner = r }
}

// WithLogger sets where absence causes are logged.
func WithLogger(l logger.Logger) Option {
	return func(s *Source) { s.log = l }
}

// WithUsageMode picks delta or cumulative CPU usage.
func WithUsageMode(m UsageMode) Option {
	return func(s *Source) { s.mode = m }
}

// NewSource creates a Source reading /proc and /sys through a LocalRunner.
func NewSource(opts ...Option) *Source {
	s := &Source{
		procRoot: DefaultProcRoot,
		sysRoot:  DefaultSysRoot,
		runner:   exec.NewLocalRunner(exec.DefaultTimeout),
		log:      logger.NewEnvLogger("[metrics]"),
		mode:     UsageDelta,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) procPath(rel ...string) string {
	return filepath.Join(append([]string{s.procRoot}, rel...)...)
}

func (s *Source) sysPath(rel ...string) string {
	return filepath.Join(append([]string{s.sysRoot}, rel...)...)
}

// CPUUsage returns the busy percentage. In delta mode the first call, or a
// call where no jiffies elapsed, falls back to the since-boot average.
func (s *Source) CPUUsage() (float64, bool) {
	data, err := os.ReadFile(s.procPath("stat"))
	if err != nil {
		s.log.Debug("cpu usage unavailable: %v", err)
		return 0, false
	}
	cur, err := parsers.ParseCPUTimes(string(data))
	if err != nil {
		s.log.Debug("cpu usage unavailable: %v", err)
		return 0, false
	}

	if s.mode == UsageDelta {
		s.mu.Lock()
		prev := s.prevCPU
		s.prevCPU = &cur
		s.mu.Unlock()

		if prev != nil {
			if pct, ok := cur.UsageSince(*prev); ok {
				return pct, true
			}
		}
	}

	pct, ok := cur.UsagePercent()
	if !ok {
		s.log.Debug("cpu usage unavailable: no time accounted in /proc/stat")
	}
	return pct, ok
}

// CPUTemperature reads the first thermal zone.
func (s *Source) CPUTemperature() (float64, bool) {
	return s.readMillidegrees("cpu temperature", s.sysPath("class", "thermal", "thermal_zone0", "temp"))
}

// RAM returns used and total memory from /proc/meminfo.
func (s *Source) RAM() (RAMUsage, bool) {
	data, err := os.ReadFile(s.procPath("meminfo"))
	if err != nil {
		s.log.Debug("ram unavailable: %v", err)
		return RAMUsage{}, false
	}
	mem, err := parsers.ParseMemInfo(string(data))
	if err != nil {
		s.log.Debug("ram unavailable: %v", err)
		return RAMUsage{}, false
	}
	return RAMUsage{
		UsedMB:  mem.UsedKB / kbPerMB,
		TotalMB: mem.TotalKB / kbPerMB,
	}, true
}

// Disk returns used and total space summed over all filesystems, via df.
func (s *Source) Disk(ctx context.Context) (DiskUsage, bool) {
	out, ok := s.run(ctx, "disk", "df", "-P", "-k", "--total")
	if !ok {
		return DiskUsage{}, false
	}
	disk, err := parsers.ParseDFTotals(out)
	if err != nil {
		s.log.Debug("disk unavailable: %v", err)
		return DiskUsage{}, false
	}
	return DiskUsage{
		UsedGB:  float64(disk.UsedKB) / kbPerGB,
		TotalGB: float64(disk.TotalKB) / kbPerGB,
	}, true
}

// run executes a command and returns its stdout when it exited cleanly.
func (s *Source) run(ctx context.Context, what, name string, args ...string) (string, bool) {
	res, err := s.runner.Run(ctx, name, args...)
	if err != nil {
		s.log.Debug("%s unavailable: %v", what, err)
		return "", false
	}
	if res.ExitCode != 0 {
		s.log.Debug("%s unavailable: %s exited with code %d", what, name, res.ExitCode)
		return "", false
	}
	return string(res.Stdout), true
}

func (s *Source) readMillidegrees(what, path string) (float64, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Debug("%s unavailable: %v", what, err)
		return 0, false
	}
	c, err := parsers.ParseMillidegrees(string(data))
	if err != nil {
		s.log.Debug("%s unavailable: %v", what, err)
		return 0, false
	}
	return c, true
}
