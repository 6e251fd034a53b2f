package cli

import "fmt"

// Exit codes for the ruff-claude-hook CLI.
const (
	// ExitSuccess indicates successful execution (or a skipped hook event).
	ExitSuccess = 0

	// ExitFailure indicates lint failures, merge failures, or a tool that
	// could not be executed.
	ExitFailure = 1
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitFailure
}
