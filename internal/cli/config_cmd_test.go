package cli

import (
	"testing"

	"github.com/rileyhilliard/yoinky/internal/config"
	"github.com/rileyhilliard/yoinky/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRenderConfig(t *testing.T) {
	out, err := renderConfig(config.DefaultConfig(), "")
	require.NoError(t, err)

	assert.Contains(t, out, "# source: built-in defaults")
	assert.Contains(t, out, "interval: 250ms")
	assert.Contains(t, out, "command_timeout: 2s")
	assert.Contains(t, out, "quit_key: q")
	assert.Contains(t, out, "cpu_usage_mode: delta")
	assert.Contains(t, out, "proc: /proc")
	assert.Contains(t, out, "sys: /sys")
	assert.Contains(t, out, "debug_log: yoinky-debug.log")
}

func TestRenderConfig_RoundTripsThroughLoad(t *testing.T) {
	isolateConfig(t)
	cfg := config.DefaultConfig()
	cfg.QuitKey = "x"
	cfg.CPUUsageMode = config.CPUModeCumulative

	out, err := renderConfig(cfg, "/somewhere/config.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "# source: /somewhere/config.yaml")

	var parsed map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))

	loaded, err := config.Load(writeConfigFile(t, out))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigCmd(t *testing.T) {
	isolateConfig(t)
	path := writeConfigFile(t, "interval: 1s\nquit_key: x\n")

	output, err := runRoot(t, "config", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, output, "# source: "+path)
	assert.Contains(t, output, "interval: 1s")
	assert.Contains(t, output, "quit_key: x")
	assert.Contains(t, output, "cpu_usage_mode: delta")
}

func TestConfigCmd_Defaults(t *testing.T) {
	isolateConfig(t)

	output, err := runRoot(t, "config")
	require.NoError(t, err)
	assert.Contains(t, output, "# source: built-in defaults")
}

func TestConfigCmd_InvalidFile(t *testing.T) {
	isolateConfig(t)
	path := writeConfigFile(t, "interval: 1ms\n")

	_, err := runRoot(t, "config", "--config", path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
