package parsers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNvidiaTemperature parses the output of:
//
//	nvidia-smi --query-gpu=temperature.gpu --format=csv,noheader,nounits
//
// Only the first line (first GPU) is used.
func ParseNvidiaTemperature(output string) (float64, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return 0, fmt.Errorf("nvidia-smi produced no output")
	}

	first := strings.TrimSpace(strings.SplitN(output, "\n", 2)[0])
	if first == "[N/A]" || first == "[Not Supported]" {
		return 0, fmt.Errorf("nvidia-smi has no temperature for this GPU")
	}

	temp, err := strconv.ParseFloat(first, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse GPU temperature %q: %w", first, err)
	}
	if math.IsNaN(temp) || math.IsInf(temp, 0) {
		return 0, fmt.Errorf("GPU temperature %q is not a number", first)
	}
	return temp, nil
}
