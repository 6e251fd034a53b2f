// Package hook implements the PostToolUse hook mode of ruff-claude-hook:
// parse the event Claude Code delivers on stdin, run ruff's
// fix/format/check sequence on the edited file, and report the outcome
// through the hook output protocol.
package hook

import (
	"strings"

	"github.com/ariel-frischer/ruff-claude-hook/internal/ruff"
)

// CheckResult is the outcome of one fix/format/check run on a single file.
// Constructed and consumed within a single process run, never persisted.
type CheckResult struct {
	Passed bool
	// Diagnostics holds ruff's remaining findings, one line per entry,
	// verbatim and in original order. Empty when Passed.
	Diagnostics []string
}

// Runner executes the three-phase ruff workflow.
type Runner struct {
	ruff *ruff.Ruff
}

// NewRunner creates a Runner over the given ruff wrapper.
func NewRunner(r *ruff.Ruff) *Runner {
	return &Runner{ruff: r}
}

// Run applies ruff to the file: autofix, then format, then a final
// validation pass. The first two phases rewrite the file on disk and their
// exit statuses are ignored; only the validation pass decides the result.
// A ruff.ErrToolUnavailable error means ruff itself could not be executed,
// which is a setup problem rather than a lint failure.
func (r *Runner) Run(filePath string) (CheckResult, error) {
	if err := r.ruff.Fix(filePath); err != nil {
		return CheckResult{}, err
	}
	if err := r.ruff.Format(filePath); err != nil {
		return CheckResult{}, err
	}

	passed, output, err := r.ruff.Check(filePath)
	if err != nil {
		return CheckResult{}, err
	}
	if passed {
		return CheckResult{Passed: true}, nil
	}

	return CheckResult{Diagnostics: splitDiagnostics(output)}, nil
}

// splitDiagnostics turns captured ruff output into diagnostic lines,
// dropping only surrounding whitespace.
func splitDiagnostics(output string) []string {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
