package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/rileyhilliard/yoinky/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Interval < MinInterval || cfg.Interval > MaxInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is out of range", cfg.Interval),
			fmt.Sprintf("Pick something between %s and %s, like 250ms", MinInterval, MaxInterval))
	}

	if cfg.CommandTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("command_timeout must be positive, got %s", cfg.CommandTimeout),
			"Set command_timeout to a duration like 2s")
	}

	switch cfg.CPUUsageMode {
	case CPUModeDelta, CPUModeCumulative:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown cpu_usage_mode '%s'", cfg.CPUUsageMode),
			"Use 'delta' (usage since the last refresh) or 'cumulative' (average since boot)")
	}

	if err := validateQuitKey(cfg.QuitKey); err != nil {
		return err
	}

	if cfg.Paths.Proc == "" || cfg.Paths.Sys == "" {
		return errors.New(errors.ErrConfig,
			"paths.proc and paths.sys can't be empty",
			"Remove them from the config to use /proc and /sys")
	}

	return nil
}

func validateQuitKey(k string) error {
	if utf8.RuneCountInString(k) != 1 || k == " " {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("quit_key must be a single character, got '%s'", k),
			"Use something like 'q' or 'x' (ctrl+c always quits)")
	}
	return nil
}
