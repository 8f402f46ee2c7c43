package parsers

import (
	"fmt"
	"strconv"
	"strings"
)

// Disk is the aggregate row of df output, in 1K blocks.
type Disk struct {
	TotalKB uint64
	UsedKB  uint64
}

// ParseDFTotals parses the last non-empty line of `df -P -k --total`:
//
//	total  41152736 20576368 20576368  50% -
func ParseDFTotals(output string) (Disk, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return Disk{}, fmt.Errorf("df produced no output")
	}

	fields := strings.Fields(last)
	if fields[0] != "total" {
		return Disk{}, fmt.Errorf("df output has no totals line, last line is %q", last)
	}
	if len(fields) < 3 {
		return Disk{}, fmt.Errorf("df totals line has %d fields, need at least 3: %q", len(fields), last)
	}

	total, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Disk{}, fmt.Errorf("failed to parse df total %q: %w", fields[1], err)
	}
	used, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return Disk{}, fmt.Errorf("failed to parse df used %q: %w", fields[2], err)
	}
	if total == 0 {
		return Disk{}, fmt.Errorf("df reported zero total blocks")
	}
	if used > total {
		return Disk{}, fmt.Errorf("df reported used %d > total %d", used, total)
	}

	return Disk{TotalKB: total, UsedKB: used}, nil
}
