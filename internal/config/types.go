package config

import "time"

// CPU usage modes accepted by cpu_usage_mode.
const (
	// CPUModeDelta diffs /proc/stat counters between ticks.
	CPUModeDelta = "delta"
	// CPUModeCumulative reports the average since boot.
	CPUModeCumulative = "cumulative"
)

// Interval bounds. Anything faster than MinInterval spends more time
// sampling than drawing; anything slower than MaxInterval stops looking live.
const (
	MinInterval = 50 * time.Millisecond
	MaxInterval = time.Minute
)

// Config is the complete yoinky configuration.
type Config struct {
	// Interval is the target time between two dashboard refreshes.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// CommandTimeout bounds each external command (df, nvidia-smi).
	CommandTimeout time.Duration `yaml:"command_timeout" mapstructure:"command_timeout"`

	// QuitKey is the single key that exits the dashboard. ctrl+c always works.
	QuitKey string `yaml:"quit_key" mapstructure:"quit_key"`

	// CPUUsageMode is "delta" or "cumulative".
	CPUUsageMode string `yaml:"cpu_usage_mode" mapstructure:"cpu_usage_mode"`

	Paths PathsConfig `yaml:"paths" mapstructure:"paths"`

	// DebugLog is where log output goes when debug logging is on.
	DebugLog string `yaml:"debug_log" mapstructure:"debug_log"`
}

// PathsConfig holds the filesystem roots metrics are read from.
type PathsConfig struct {
	Proc string `yaml:"proc" mapstructure:"proc"`
	Sys  string `yaml:"sys" mapstructure:"sys"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Interval:       250 * time.Millisecond,
		CommandTimeout: 2 * time.Second,
		QuitKey:        "q",
		CPUUsageMode:   CPUModeDelta,
		Paths: PathsConfig{
			Proc: "/proc",
			Sys:  "/sys",
		},
		DebugLog: "yoinky-debug.log",
	}
}
