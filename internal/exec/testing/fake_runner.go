// Package testing provides test doubles for the exec package.
package testing

import (
	"context"
	"strings"
	"sync"

	"github.com/rileyhilliard/yoinky/internal/exec"
)

// FakeCommand configures the canned outcome of one command.
type FakeCommand struct {
	Stdout   string
	ExitCode int
	Err      error // returned instead of a result when set
}

// FakeRunner returns canned results keyed by command name.
// Commands that were not configured fail as if the binary were missing.
type FakeRunner struct {
	mu       sync.Mutex
	commands map[string]FakeCommand

	// Calls records every invocation as "name arg1 arg2 ..."
	Calls []string
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{commands: make(map[string]FakeCommand)}
}

// On registers the outcome for a command name.
func (f *FakeRunner) On(name string, cmd FakeCommand) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands[name] = cmd
	return f
}

// Run implements exec.Runner.
func (f *FakeRunner) Run(ctx context.Context, name string, args ...string) (exec.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))

	if err := ctx.Err(); err != nil {
		return exec.Result{ExitCode: -1}, err
	}

	cmd, ok := f.commands[name]
	if !ok {
		return exec.Result{ExitCode: -1}, ErrNotFound
	}
	if cmd.Err != nil {
		return exec.Result{ExitCode: -1}, cmd.Err
	}
	return exec.Result{ExitCode: cmd.ExitCode, Stdout: []byte(cmd.Stdout)}, nil
}

// CallCount returns how many times name was run.
func (f *FakeRunner) CallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.Calls {
		if c == name || strings.HasPrefix(c, name+" ") {
			n++
		}
	}
	return n
}

type notFoundError struct{}

func (notFoundError) Error() string { return "executable file not found in $PATH" }

// ErrNotFound is returned for commands that were never registered.
var ErrNotFound error = notFoundError{}
