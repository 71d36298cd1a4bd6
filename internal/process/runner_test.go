package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestExecRunner_CapturesAndEchoes(t *testing.T) {
	requireShell(t)

	var stdoutBuf, stderrBuf bytes.Buffer
	r := &ExecRunner{Stdout: &stdoutBuf, Stderr: &stderrBuf}

	res, err := r.Run(context.Background(), "sh", []string{"-c", "echo out; echo err 1>&2"}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if res.Stdout != "out\n" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "out\n")
	}
	if res.Stderr != "err\n" {
		t.Errorf("Stderr = %q, want %q", res.Stderr, "err\n")
	}
	if stdoutBuf.String() != "out\n" || stderrBuf.String() != "err\n" {
		t.Errorf("live echo mismatch: stdout=%q stderr=%q", stdoutBuf.String(), stderrBuf.String())
	}
}

func TestExecRunner_QuietSuppressesEcho(t *testing.T) {
	requireShell(t)

	var stdoutBuf bytes.Buffer
	r := &ExecRunner{Stdout: &stdoutBuf, Stderr: &stdoutBuf}

	res, err := r.Run(context.Background(), "sh", []string{"-c", "echo hidden"}, Options{Quiet: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "hidden\n" {
		t.Errorf("Stdout = %q, want captured output", res.Stdout)
	}
	if stdoutBuf.Len() != 0 {
		t.Errorf("quiet run echoed %q", stdoutBuf.String())
	}
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	requireShell(t)

	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	res, err := r.Run(context.Background(), "sh", []string{"-c", "echo boom 1>&2; exit 42"}, Options{})
	if err != nil {
		t.Fatalf("non-zero exit should not be an error: %v", err)
	}
	if res.ExitCode != 42 {
		t.Errorf("ExitCode = %d, want 42", res.ExitCode)
	}
	if res.Success() {
		t.Error("Success() = true for exit 42")
	}
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	r := &ExecRunner{}
	res, err := r.Run(context.Background(), "sh", []string{"-c", "pwd"}, Options{Dir: dir, Quiet: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(res.Stdout), strings.TrimPrefix(dir, "/private")) {
		t.Errorf("pwd = %q, want %q", res.Stdout, dir)
	}
}

func TestExecRunner_LaunchFailure(t *testing.T) {
	r := &ExecRunner{}
	res, err := r.Run(context.Background(), "polkastarter-no-such-binary", nil, Options{Quiet: true})
	if err == nil {
		t.Fatal("expected launch error, got nil")
	}
	if res != nil {
		t.Errorf("expected nil result on launch failure, got %+v", res)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("expected exec.ErrNotFound in chain, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "starting polkastarter-no-such-binary") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestCheckExit(t *testing.T) {
	if err := CheckExit("Git clone", &Result{ExitCode: 0}); err != nil {
		t.Errorf("CheckExit(0) = %v, want nil", err)
	}

	err := CheckExit("Git clone", &Result{ExitCode: 128, Stderr: "Permission denied\n"})
	if err == nil {
		t.Fatal("expected error for exit 128")
	}
	if got := err.Error(); got != "Git clone failed: Permission denied" {
		t.Errorf("Error() = %q", got)
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T", err)
	}
	if exitErr.Result.ExitCode != 128 {
		t.Errorf("ExitCode = %d, want 128", exitErr.Result.ExitCode)
	}
}
