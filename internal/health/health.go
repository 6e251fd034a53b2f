// Package health verifies the ruff-claude-hook installation: the ruff
// binary, the hook binary, and the hook registration in project settings.
package health

import (
	"errors"
	"fmt"

	"github.com/ariel-frischer/ruff-claude-hook/internal/claude"
	"github.com/ariel-frischer/ruff-claude-hook/internal/ruff"
)

// CheckResult represents the result of a single health check.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results.
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// add appends a check result and folds its status into the report.
func (r *HealthReport) add(check CheckResult) {
	r.Checks = append(r.Checks, check)
	if !check.Passed {
		r.Passed = false
	}
}

// RunHealthChecks verifies the installation in the given project directory
// and returns a report.
func RunHealthChecks(projectDir string, runner ruff.Runner, ruffCmd, hookCmd string) *HealthReport {
	report := &HealthReport{Passed: true}

	report.add(CheckRuff(runner, ruffCmd))
	report.add(CheckHookBinary(runner, hookCmd))
	report.add(CheckHookRegistered(projectDir, hookCmd))
	report.add(CheckPermission(projectDir))

	return report
}

// CheckRuff checks that the ruff binary is available and reports its
// version.
func CheckRuff(runner ruff.Runner, ruffCmd string) CheckResult {
	r := ruff.New(runner, ruffCmd)

	path, err := r.Path()
	if err != nil {
		return CheckResult{
			Name:    "ruff",
			Passed:  false,
			Message: fmt.Sprintf("%q not found in PATH (install with: uv tool install ruff)", ruffCmd),
		}
	}

	version, err := r.Version()
	if err != nil {
		return CheckResult{
			Name:    "ruff",
			Passed:  false,
			Message: fmt.Sprintf("%s found but not runnable: %v", path, err),
		}
	}

	return CheckResult{
		Name:    "ruff",
		Passed:  true,
		Message: fmt.Sprintf("%s (%s)", path, version),
	}
}

// CheckHookBinary checks that the hook command itself is reachable from
// PATH, since that is how Claude Code will invoke it.
func CheckHookBinary(runner ruff.Runner, hookCmd string) CheckResult {
	path, err := runner.LookPath(hookCmd)
	if err != nil {
		return CheckResult{
			Name:    "hook binary",
			Passed:  false,
			Message: fmt.Sprintf("%q not found in PATH", hookCmd),
		}
	}

	return CheckResult{
		Name:    "hook binary",
		Passed:  true,
		Message: path,
	}
}

// CheckHookRegistered checks that .claude/settings.json registers the hook
// command under hooks.PostToolUse.
func CheckHookRegistered(projectDir, hookCmd string) CheckResult {
	settings, err := claude.Load(projectDir)
	if err != nil {
		message := fmt.Sprintf("failed to read settings: %v", err)
		if errors.Is(err, claude.ErrMalformedSettings) {
			message = fmt.Sprintf("settings unparsable: %v (run 'ruff-claude-hook init --force' to rewrite)", err)
		}
		return CheckResult{Name: "hook registration", Passed: false, Message: message}
	}

	if !settings.HasHookCommand(hookCmd) {
		return CheckResult{
			Name:    "hook registration",
			Passed:  false,
			Message: fmt.Sprintf("%q not registered in %s (run 'ruff-claude-hook init')", hookCmd, settings.FilePath()),
		}
	}

	return CheckResult{
		Name:    "hook registration",
		Passed:  true,
		Message: fmt.Sprintf("%q registered for %s", hookCmd, claude.PostToolUseEvent),
	}
}

// CheckPermission checks that settings.local.json allows running the hook.
func CheckPermission(projectDir string) CheckResult {
	settings, err := claude.LoadLocal(projectDir)
	if err != nil {
		return CheckResult{
			Name:    "permission",
			Passed:  false,
			Message: fmt.Sprintf("failed to read local settings: %v", err),
		}
	}

	if !settings.HasPermission(claude.RequiredPermission) {
		return CheckResult{
			Name:    "permission",
			Passed:  false,
			Message: fmt.Sprintf("missing %s in %s (run 'ruff-claude-hook init')", claude.RequiredPermission, settings.FilePath()),
		}
	}

	return CheckResult{
		Name:    "permission",
		Passed:  true,
		Message: fmt.Sprintf("%s allowed", claude.RequiredPermission),
	}
}

// FormatReport formats the health report for console output.
func FormatReport(report *HealthReport) string {
	var output string

	for _, check := range report.Checks {
		if check.Passed {
			output += fmt.Sprintf("✓ %s: %s\n", check.Name, check.Message)
		} else {
			output += fmt.Sprintf("✗ %s: %s\n", check.Name, check.Message)
		}
	}

	return output
}
