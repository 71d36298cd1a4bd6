package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Result captures the outcome of one external process invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status 0.
func (r *Result) Success() bool { return r.ExitCode == 0 }

// Options control a single Run call.
type Options struct {
	// Dir is the working directory of the child. Empty means the current one.
	Dir string
	// Quiet suppresses the live echo of the child's output.
	Quiet bool
}

// Runner launches external executables.
//
// Run resolves with a Result whenever the process was started, whatever its
// exit code. It returns an error only when the process could not be launched.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (*Result, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	// Stdout and Stderr receive the live echo; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args and waits for it to finish.
func (e *ExecRunner) Run(ctx context.Context, name string, args []string, opts Options) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	if opts.Quiet {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	} else {
		stdout := e.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		stderr := e.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
		cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)
	}

	err := cmd.Run()

	result := &Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("starting %s: %w", name, err)
	}

	return result, nil
}

// ExitError reports an external tool that ran but exited non-zero.
// Its message embeds the captured stderr, e.g. "Git clone failed: <stderr>".
type ExitError struct {
	// Op names the failed operation ("Git clone", "yarn install", ...).
	Op     string
	Result *Result
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, strings.TrimSpace(e.Result.Stderr))
}

// CheckExit returns an *ExitError for a non-zero result and nil otherwise.
func CheckExit(op string, res *Result) error {
	if res.Success() {
		return nil
	}
	return &ExitError{Op: op, Result: res}
}
