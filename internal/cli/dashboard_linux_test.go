//go:build linux

package cli

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/yoinky/internal/dashboard"
	"github.com/rileyhilliard/yoinky/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureProc creates a proc root with a two-core cpuinfo and returns a
// config file pointing at it.
func fixtureProc(t *testing.T, withCPUInfo bool) string {
	t.Helper()
	proc := filepath.Join(t.TempDir(), "proc")
	require.NoError(t, os.MkdirAll(proc, 0755))
	if withCPUInfo {
		cpuinfo := "processor\t: 0\nvendor_id\t: GenuineIntel\n\nprocessor\t: 1\nvendor_id\t: GenuineIntel\n"
		require.NoError(t, os.WriteFile(filepath.Join(proc, "cpuinfo"), []byte(cpuinfo), 0644))
	}
	return writeConfigFile(t, "interval: 500ms\nquit_key: x\npaths:\n  proc: "+proc+"\n  sys: "+t.TempDir()+"\n")
}

func TestDashboardCommand_RunsProgram(t *testing.T) {
	isolateConfig(t)
	stubTerminal(t, true)

	var got tea.Model
	stubProgram(t, func(_ context.Context, m tea.Model) error {
		got = m
		return nil
	})

	err := dashboardCommand(context.Background(), dashboardOptions{
		ConfigPath: fixtureProc(t, true),
		Input:      []string{"ignored"},
	})
	require.NoError(t, err)

	model, ok := got.(dashboard.Model)
	require.True(t, ok)
	assert.Equal(t, dashboard.StateIdle, model.State())
}

func TestDashboardCommand_NoCPUTopology(t *testing.T) {
	isolateConfig(t)
	stubTerminal(t, true)
	stubProgram(t, func(context.Context, tea.Model) error {
		t.Fatal("program must not start without a core count")
		return nil
	})

	err := dashboardCommand(context.Background(), dashboardOptions{ConfigPath: fixtureProc(t, false)})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrPlatform))
}

func TestDashboardCommand_ProgramErrors(t *testing.T) {
	t.Run("terminal failure", func(t *testing.T) {
		isolateConfig(t)
		stubTerminal(t, true)
		stubProgram(t, func(context.Context, tea.Model) error {
			return stderrors.New("could not open a new TTY")
		})

		err := dashboardCommand(context.Background(), dashboardOptions{ConfigPath: fixtureProc(t, true)})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrTerminal))
	})

	t.Run("stopped by signal", func(t *testing.T) {
		isolateConfig(t)
		stubTerminal(t, true)
		ctx, cancel := context.WithCancel(context.Background())
		stubProgram(t, func(context.Context, tea.Model) error {
			cancel()
			return tea.ErrProgramKilled
		})

		err := dashboardCommand(ctx, dashboardOptions{ConfigPath: fixtureProc(t, true)})
		assert.NoError(t, err)
	})
}
