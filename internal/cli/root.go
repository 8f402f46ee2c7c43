package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag   string
	intervalFlag string
	debugFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "yoinky [input]",
	Short: "Terminal dashboard for CPU, RAM, GPU and disk",
	Long: `yoinky samples local system metrics on a fixed interval and draws them
as a live dashboard: CPU cores, usage and temperature, RAM, disk usage and
GPU vendor and temperature.

Metrics that can't be read on this machine show as N/A; the dashboard keeps
running either way.

Keyboard shortcuts:
  q / Ctrl+C  Quit (the q key can be changed with quit_key)

Examples:
  yoinky
  yoinky --interval 1s
  yoinky --config ./yoinky.yaml --debug`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd.Context(), dashboardOptions{
			ConfigPath:  configFlag,
			Interval:    intervalFlag,
			IntervalSet: cmd.Flags().Changed("interval"),
			Debug:       debugFlag,
			Input:       args,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default $XDG_CONFIG_HOME/yoinky/config.yaml)")
	rootCmd.Flags().StringVar(&intervalFlag, "interval", "", "refresh interval (e.g., 250ms, 1s)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "write debug logs to the debug_log file")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(handleError(err))
	}
}

// handleError prints err and returns the process exit code for it.
func handleError(err error) int {
	fmt.Fprintln(os.Stderr, err)
	return 1
}
