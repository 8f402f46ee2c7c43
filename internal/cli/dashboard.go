package cli

import (
	"context"
	stderrors "errors"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/yoinky/internal/config"
	"github.com/rileyhilliard/yoinky/internal/dashboard"
	"github.com/rileyhilliard/yoinky/internal/errors"
	"github.com/rileyhilliard/yoinky/internal/exec"
	"github.com/rileyhilliard/yoinky/internal/logger"
	"github.com/rileyhilliard/yoinky/internal/metrics"
	"golang.org/x/term"
)

// dashboardOptions holds what the root command was invoked with.
type dashboardOptions struct {
	ConfigPath string
	// Interval is only applied when IntervalSet; "0s" is a value, not "unset"
	Interval    string
	IntervalSet bool
	Debug       bool
	Input       []string
}

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runProgram runs the Bubble Tea program. Swapped out in tests.
var runProgram = func(ctx context.Context, m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig(opts dashboardOptions) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if !opts.IntervalSet {
		return cfg, nil
	}

	interval, err := ParseInterval(opts.Interval)
	if err != nil {
		return nil, err
	}
	cfg.Interval = interval
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging points the standard logger at the debug log file, or discards
// it. The returned func closes the file.
func setupLogging(cfg *config.Config, debug bool) (func(), error) {
	if debug {
		logger.EnableDebug()
	}
	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(cfg.DebugLog, "yoinky")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open debug log "+cfg.DebugLog,
			"Point debug_log at a writable path")
	}
	return func() { f.Close() }, nil
}

// dashboardCommand runs the dashboard until the user quits.
func dashboardCommand(ctx context.Context, opts dashboardOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if !isTerminal() {
		return errors.New(errors.ErrTerminal,
			"yoinky needs an interactive terminal",
			"Run it directly in a terminal, not through a pipe or redirect.")
	}

	closeLog, err := setupLogging(cfg, opts.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	debugLog := logger.NewEnvLogger("[cli]")
	if len(opts.Input) > 0 {
		debugLog.Debug("ignoring input argument %q", opts.Input[0])
	}
	debugLog.Debug("starting: interval=%s cpu_usage_mode=%s proc=%s sys=%s",
		cfg.Interval, cfg.CPUUsageMode, cfg.Paths.Proc, cfg.Paths.Sys)

	src := metrics.NewSource(
		metrics.WithProcRoot(cfg.Paths.Proc),
		metrics.WithSysRoot(cfg.Paths.Sys),
		metrics.WithRunner(exec.NewLocalRunner(cfg.CommandTimeout)),
		metrics.WithUsageMode(metrics.UsageMode(cfg.CPUUsageMode)),
	)
	sampler, err := metrics.NewSampler(src)
	if err != nil {
		return err
	}

	model := dashboard.NewModel(sampler, cfg.Interval,
		dashboard.WithQuitKey(cfg.QuitKey),
		dashboard.WithContext(ctx),
	)

	if err := runProgram(ctx, model); err != nil {
		// SIGINT/SIGTERM cancel ctx; that's a normal way to stop
		if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			debugLog.Debug("stopped by signal")
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The dashboard stopped unexpectedly",
			"Check the terminal supports raw mode and the alternate screen; run with --debug for details")
	}
	return nil
}
