// Package ruff wraps invocations of the ruff linter/formatter binary.
// It exposes the three operating modes the hook uses in sequence:
// autofix (check --fix), format, and validation (check).
package ruff

import (
	"errors"
	"fmt"
	"strings"
)

// ErrToolUnavailable indicates the ruff binary cannot be located or
// executed. This is an installation problem, distinct from lint failures.
var ErrToolUnavailable = errors.New("ruff not available")

// DefaultCmd is the command name used when no configuration overrides it.
const DefaultCmd = "ruff"

// Ruff invokes the ruff binary through a Runner.
type Ruff struct {
	runner Runner
	cmd    string
}

// New creates a Ruff wrapper. An empty cmd falls back to DefaultCmd.
func New(runner Runner, cmd string) *Ruff {
	if cmd == "" {
		cmd = DefaultCmd
	}
	return &Ruff{runner: runner, cmd: cmd}
}

// Path returns the resolved location of the ruff binary, or
// ErrToolUnavailable if it is not in PATH.
func (r *Ruff) Path() (string, error) {
	path, err := r.runner.LookPath(r.cmd)
	if err != nil {
		return "", fmt.Errorf("%w: %q not found in PATH", ErrToolUnavailable, r.cmd)
	}
	return path, nil
}

// Version returns the trimmed output of "ruff --version".
func (r *Ruff) Version() (string, error) {
	result, err := r.run("--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Stdout), nil
}

// Fix runs "ruff check --fix" on the file. Remaining violations are
// expected here; the exit status is deliberately ignored.
func (r *Ruff) Fix(filePath string) error {
	_, err := r.run("check", "--fix", filePath)
	return err
}

// Format runs "ruff format" on the file. Exit status ignored.
func (r *Ruff) Format(filePath string) error {
	_, err := r.run("format", filePath)
	return err
}

// Check runs the final validation pass. It returns whether the file is
// clean and the captured diagnostic output verbatim.
func (r *Ruff) Check(filePath string) (passed bool, output string, err error) {
	result, err := r.run("check", filePath)
	if err != nil {
		return false, "", err
	}
	return result.ExitCode == 0, result.Stdout, nil
}

// run executes ruff with the given arguments, translating start failures
// into ErrToolUnavailable.
func (r *Ruff) run(args ...string) (Result, error) {
	result, err := r.runner.Run(r.cmd, args...)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}
	return result, nil
}
