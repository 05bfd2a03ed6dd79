package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// ExecResult holds the outcome of a single external tool invocation.
type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes external tools. Tests substitute fakes; production code
// uses NewRunner. No timeout is enforced beyond context cancellation.
type Runner interface {
	Run(ctx context.Context, binary string, args ...string) (ExecResult, error)
}

type execRunner struct{}

// NewRunner returns the production Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, binary string, args ...string) (ExecResult, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := ExecResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// Start failures (missing binary, bad path) have no exit status.
		result.ExitCode = -1
		return result, err
	}
	return result, nil
}
