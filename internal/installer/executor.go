package installer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// ToolOutput is the captured result of one delegated tool invocation.
type ToolOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Executor runs external tools (python, pip, the vendor installer) as
// subprocesses. The flow stops on the first failing tool; there are no
// retries.
type Executor struct {
	// Timeout is the max execution time per tool.
	// Default: 10 minutes (pip and the vendor installer are slow)
	Timeout time.Duration

	// WorkDir is the working directory for the child process. Using the
	// child's own cwd replaces the pushd/popd dance of the original shell
	// scripts; the caller's directory is never touched.
	WorkDir string

	// Env is additional environment variables.
	Env map[string]string

	// Stream mirrors the tool's output to this writer as it runs
	// (verbose mode). Output is captured either way.
	Stream io.Writer
}

// NewExecutor creates an executor with defaults.
func NewExecutor() *Executor {
	return &Executor{
		Timeout: 10 * time.Minute,
		Env:     make(map[string]string),
	}
}

// Run executes a command. A non-zero exit status is returned as an error;
// the output is returned in both cases.
func (e *Executor) Run(ctx context.Context, name string, args ...string) (*ToolOutput, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204

	if e.WorkDir != "" {
		cmd.Dir = e.WorkDir
	}
	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.envSlice()...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if e.Stream != nil {
		cmd.Stdout = io.MultiWriter(&stdout, e.Stream)
		cmd.Stderr = io.MultiWriter(&stderr, e.Stream)
	}

	start := time.Now()
	err := cmd.Run()

	output := &ToolOutput{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, fmt.Errorf("%s exited with status %d", name, output.ExitCode)
		}
		return output, fmt.Errorf("failed to execute %s: %w", name, err)
	}

	return output, nil
}

func (e *Executor) envSlice() []string {
	result := make([]string, 0, len(e.Env))
	for k, v := range e.Env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}
