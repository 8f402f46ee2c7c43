package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/yoinky/internal/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override (YOINKY_INTERVAL, ...).
	EnvPrefix = "YOINKY"
	// ConfigDirName is the directory under the user config dir.
	ConfigDirName = "yoinky"
	// ConfigFileName is the config file name inside ConfigDirName.
	ConfigFileName = "config.yaml"
)

// Load reads config from path, merges defaults and environment overrides,
// and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found: "+path,
					"Check the path, or drop --config to use defaults")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		where := "the environment"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+where+" (durations look like 250ms or 2s)")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. $XDG_CONFIG_HOME/yoinky/config.yaml
// 3. ~/.config/yoinky/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	for _, candidate := range searchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// LoadOrDefault finds and loads the config. No file means defaults plus
// environment overrides.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

func searchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, ConfigDirName, ConfigFileName))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", ConfigDirName, ConfigFileName))
	}
	return paths
}

// newViper returns a viper instance with every key defaulted, so
// AutomaticEnv can resolve YOINKY_* overrides during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("interval", def.Interval.String())
	v.SetDefault("command_timeout", def.CommandTimeout.String())
	v.SetDefault("quit_key", def.QuitKey)
	v.SetDefault("cpu_usage_mode", def.CPUUsageMode)
	v.SetDefault("paths.proc", def.Paths.Proc)
	v.SetDefault("paths.sys", def.Paths.Sys)
	v.SetDefault("debug_log", def.DebugLog)
	return v
}
