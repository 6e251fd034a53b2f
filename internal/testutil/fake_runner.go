// Package testutil provides test doubles shared by ruff-claude-hook tests.
package testutil

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/ariel-frischer/ruff-claude-hook/internal/ruff"
)

// Call records a single Run invocation on the fake runner.
type Call struct {
	Name string
	Args []string
}

// String renders the call the way it would appear on a shell command line.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// FakeRunner implements ruff.Runner with scripted results. Results are
// consumed in FIFO order; once the script is exhausted, Run returns a
// zero Result (exit 0, no output).
type FakeRunner struct {
	mu      sync.Mutex
	script  []scriptedResult
	calls   []Call
	paths   map[string]string
	pathErr error
}

type scriptedResult struct {
	result ruff.Result
	err    error
}

// NewFakeRunner creates an empty fake runner. All executables resolve via
// LookPath unless MissingFromPath is called.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{paths: make(map[string]string)}
}

// WithResult queues a successful command result.
func (f *FakeRunner) WithResult(exitCode int, stdout string) *FakeRunner {
	f.script = append(f.script, scriptedResult{
		result: ruff.Result{ExitCode: exitCode, Stdout: stdout},
	})
	return f
}

// WithError queues a command that fails to start.
func (f *FakeRunner) WithError(err error) *FakeRunner {
	f.script = append(f.script, scriptedResult{err: err})
	return f
}

// WithPath registers an executable location returned by LookPath.
func (f *FakeRunner) WithPath(file, path string) *FakeRunner {
	f.paths[file] = path
	return f
}

// MissingFromPath makes LookPath fail for every executable.
func (f *FakeRunner) MissingFromPath() *FakeRunner {
	f.pathErr = fmt.Errorf("executable not found in $PATH")
	f.paths = make(map[string]string)
	return f
}

// Run returns the next scripted result and records the call.
func (f *FakeRunner) Run(name string, args ...string) (ruff.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Name: name, Args: args})

	if len(f.script) == 0 {
		return ruff.Result{}, nil
	}
	next := f.script[0]
	f.script = f.script[1:]
	return next.result, next.err
}

// LookPath resolves registered executables.
func (f *FakeRunner) LookPath(file string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pathErr != nil {
		return "", f.pathErr
	}
	if path, ok := f.paths[file]; ok {
		return path, nil
	}
	return "/usr/bin/" + file, nil
}

// Calls returns a copy of all recorded calls.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// AssertCalled fails the test unless some recorded call contains substr.
func (f *FakeRunner) AssertCalled(t *testing.T, substr string) {
	t.Helper()

	for _, call := range f.Calls() {
		if strings.Contains(call.String(), substr) {
			return
		}
	}
	t.Errorf("expected a call containing %q, got %v", substr, f.Calls())
}
