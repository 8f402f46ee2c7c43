package exec

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"time"

	"github.com/rileyhilliard/yoinky/internal/errors"
)

// DefaultTimeout bounds a single external command when no timeout is configured.
const DefaultTimeout = 2 * time.Second

// Result is what a finished command reported.
type Result struct {
	ExitCode int
	Stdout   []byte
}

// Runner spawns an external command and waits for it.
// A non-zero exit is reported in Result.ExitCode, not as an error; errors are
// reserved for commands that could not be started or did not finish in time.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// LocalRunner runs commands on this machine, each bounded by Timeout.
type LocalRunner struct {
	Timeout time.Duration
}

// NewLocalRunner creates a LocalRunner. A non-positive timeout uses DefaultTimeout.
func NewLocalRunner(timeout time.Duration) *LocalRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &LocalRunner{Timeout: timeout}
}

// Run executes name with args directly (no shell) and captures stdout.
func (r *LocalRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout bytes.Buffer
	command := exec.CommandContext(ctx, name, args...)
	command.Stdout = &stdout

	runErr := command.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{ExitCode: -1, Stdout: stdout.Bytes()}, errors.WrapWithCode(ctxErr, errors.ErrExec,
			"Command '"+name+"' did not finish in "+timeout.String(),
			"Raise command_timeout in the config if this tool is slow on your machine.")
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if stderrors.As(runErr, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode(), Stdout: stdout.Bytes()}, nil
		}
		return Result{ExitCode: -1}, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run '"+name+"'",
			"Make sure the command exists and is on your PATH.")
	}

	return Result{ExitCode: 0, Stdout: stdout.Bytes()}, nil
}
