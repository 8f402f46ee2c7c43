package cli

import (
	"fmt"

	"github.com/rileyhilliard/yoinky/internal/config"
	"github.com/rileyhilliard/yoinky/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configView is the YAML shape of a Config, with durations as strings.
type configView struct {
	Interval       string             `yaml:"interval"`
	CommandTimeout string             `yaml:"command_timeout"`
	QuitKey        string             `yaml:"quit_key"`
	CPUUsageMode   string             `yaml:"cpu_usage_mode"`
	Paths          config.PathsConfig `yaml:"paths"`
	DebugLog       string             `yaml:"debug_log"`
}

// renderConfig renders cfg as YAML, headed by a comment naming its source.
func renderConfig(cfg *config.Config, source string) (string, error) {
	data, err := yaml.Marshal(configView{
		Interval:       cfg.Interval.String(),
		CommandTimeout: cfg.CommandTimeout.String(),
		QuitKey:        cfg.QuitKey,
		CPUUsageMode:   cfg.CPUUsageMode,
		Paths:          cfg.Paths,
		DebugLog:       cfg.DebugLog,
	})
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't render the config", "")
	}
	if source == "" {
		source = "built-in defaults"
	}
	return fmt.Sprintf("# source: %s\n%s", source, data), nil
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration yoinky would run with, after merging the
config file, YOINKY_* environment variables and built-in defaults.

Examples:
  yoinky config
  yoinky config --config ./yoinky.yaml
  YOINKY_INTERVAL=1s yoinky config`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Find(configFlag)
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		out, err := renderConfig(cfg, path)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
