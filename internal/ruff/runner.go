package ruff

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// Result holds the captured outcome of a single external command run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes external commands synchronously. It exists so tests can
// substitute a scripted implementation for the real ruff binary.
type Runner interface {
	// Run executes name with args and blocks until it exits. A non-zero
	// exit status is reported through Result.ExitCode, not through err;
	// err is reserved for failures to start the command at all.
	Run(name string, args ...string) (Result, error)

	// LookPath reports the absolute path of an executable, or an error
	// if it cannot be found in PATH.
	LookPath(file string) (string, error)
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct{}

// NewRunner returns a Runner that executes real commands.
func NewRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("running %s: %w", name, err)
	}

	return result, nil
}

func (r *execRunner) LookPath(file string) (string, error) {
	path, err := exec.LookPath(file)
	if err != nil {
		return "", fmt.Errorf("looking up %s: %w", file, err)
	}
	return path, nil
}
