package parsers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// CPUTimes holds the aggregate jiffy counters from the "cpu " line of /proc/stat.
type CPUTimes struct {
	// Total is user+nice+system+idle.
	Total uint64
	// Idle is the idle column alone.
	Idle uint64

	// Columns after idle; zero on kernels that don't report them.
	IOWait  uint64
	IRQ     uint64
	SoftIRQ uint64
	Steal   uint64
}

// minCPUFields is user, nice, system, idle.
const minCPUFields = 4

// maxCPUFields stops at steal; guest and guest_nice are already counted in user and nice.
const maxCPUFields = 8

// ParseCPUTimes reads the first aggregate "cpu " line of /proc/stat.
func ParseCPUTimes(procStat string) (CPUTimes, error) {
	scanner := bufio.NewScanner(strings.NewReader(procStat))

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		// Fields: cpu user nice system idle iowait irq softirq steal guest guest_nice
		fields := strings.Fields(line)[1:]
		if len(fields) < minCPUFields {
			return CPUTimes{}, fmt.Errorf("invalid /proc/stat cpu line: %q", line)
		}
		if len(fields) > maxCPUFields {
			fields = fields[:maxCPUFields]
		}

		var times CPUTimes
		for i, f := range fields {
			val, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return CPUTimes{}, fmt.Errorf("failed to parse cpu field %d: %w", i+1, err)
			}

			switch i {
			case 0, 1, 2:
				times.Total += val
			case 3:
				times.Idle = val
				times.Total += val
			case 4:
				times.IOWait = val
			case 5:
				times.IRQ = val
			case 6:
				times.SoftIRQ = val
			case 7:
				times.Steal = val
			}
		}
		return times, nil
	}

	if err := scanner.Err(); err != nil {
		return CPUTimes{}, fmt.Errorf("error scanning /proc/stat: %w", err)
	}
	return CPUTimes{}, fmt.Errorf("no aggregate cpu line in /proc/stat")
}

// UsagePercent is the busy share of all time since boot:
// (total - idle) / total over user, nice, system and idle.
// It reports false when no time has been accounted at all.
func (t CPUTimes) UsagePercent() (float64, bool) {
	return busyPercent(t.Total, t.Idle)
}

// UsageSince is the busy share between an earlier reading and t. Between
// two reads iowait counts as idle and irq, softirq and steal count as busy.
// It reports false if no jiffies elapsed or the counters went backwards.
func (t CPUTimes) UsageSince(prev CPUTimes) (float64, bool) {
	total, idle := t.accounted()
	prevTotal, prevIdle := prev.accounted()
	if total <= prevTotal || idle < prevIdle {
		return 0, false
	}
	return busyPercent(total-prevTotal, idle-prevIdle)
}

// accounted returns total and idle jiffies including the columns after idle.
func (t CPUTimes) accounted() (total, idle uint64) {
	total = t.Total + t.IOWait + t.IRQ + t.SoftIRQ + t.Steal
	idle = t.Idle + t.IOWait
	return total, idle
}

func busyPercent(total, idle uint64) (float64, bool) {
	if total == 0 || idle > total {
		return 0, false
	}
	return float64(total-idle) / float64(total) * 100, true
}

// Memory is the RAM picture from /proc/meminfo, in kB.
type Memory struct {
	TotalKB uint64
	UsedKB  uint64
}

// ParseMemInfo derives used memory as MemTotal - MemAvailable, falling back
// to MemFree on kernels that predate MemAvailable.
func ParseMemInfo(procMeminfo string) (Memory, error) {
	scanner := bufio.NewScanner(strings.NewReader(procMeminfo))

	var memTotal, memFree, memAvailable uint64
	var haveTotal, haveFree, haveAvailable bool

	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		// Values in /proc/meminfo are in kB
		key := strings.TrimSuffix(parts[0], ":")
		val, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			continue
		}

		switch key {
		case "MemTotal":
			memTotal, haveTotal = val, true
		case "MemFree":
			memFree, haveFree = val, true
		case "MemAvailable":
			memAvailable, haveAvailable = val, true
		}
	}

	if err := scanner.Err(); err != nil {
		return Memory{}, fmt.Errorf("error scanning /proc/meminfo: %w", err)
	}
	if !haveTotal || memTotal == 0 {
		return Memory{}, fmt.Errorf("MemTotal missing from /proc/meminfo")
	}

	available := memAvailable
	switch {
	case haveAvailable:
	case haveFree:
		available = memFree
	default:
		return Memory{}, fmt.Errorf("neither MemAvailable nor MemFree in /proc/meminfo")
	}

	mem := Memory{TotalKB: memTotal}
	if available < memTotal {
		mem.UsedKB = memTotal - available
	}
	return mem, nil
}

// ParseMillidegrees converts a sysfs temperature counter (e.g. "45000\n")
// to degrees Celsius.
func ParseMillidegrees(s string) (float64, error) {
	s = strings.TrimSpace(s)
	milli, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse temperature %q: %w", s, err)
	}
	return float64(milli) / 1000, nil
}
