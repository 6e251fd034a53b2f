package health_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/ruff-claude-hook/internal/claude"
	"github.com/ariel-frischer/ruff-claude-hook/internal/health"
	"github.com/ariel-frischer/ruff-claude-hook/internal/testutil"
)

func writeSettings(t *testing.T, dir, name, content string) {
	t.Helper()
	claudeDir := filepath.Join(dir, claude.SettingsDir)
	require.NoError(t, os.MkdirAll(claudeDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(claudeDir, name), []byte(content), 0644))
}

const registeredSettings = `{
	"hooks": {"PostToolUse": [
		{"matcher": "Edit", "hooks": [{"type": "command", "command": "ruff-claude-hook"}]}
	]}
}`

const allowedLocalSettings = `{"permissions": {"allow": ["Bash(ruff-claude-hook:*)"]}}`

func TestRunHealthChecksAllPassing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeSettings(t, dir, claude.SettingsFileName, registeredSettings)
	writeSettings(t, dir, claude.LocalSettingsFileName, allowedLocalSettings)

	runner := testutil.NewFakeRunner().WithResult(0, "ruff 0.8.4\n")

	report := health.RunHealthChecks(dir, runner, "ruff", "ruff-claude-hook")

	assert.True(t, report.Passed)
	require.Len(t, report.Checks, 4)
	for _, check := range report.Checks {
		assert.True(t, check.Passed, "check %s: %s", check.Name, check.Message)
	}
	assert.Contains(t, report.Checks[0].Message, "ruff 0.8.4")
}

func TestRunHealthChecksRuffMissing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeSettings(t, dir, claude.SettingsFileName, registeredSettings)
	writeSettings(t, dir, claude.LocalSettingsFileName, allowedLocalSettings)

	runner := testutil.NewFakeRunner().MissingFromPath()

	report := health.RunHealthChecks(dir, runner, "ruff", "ruff-claude-hook")

	assert.False(t, report.Passed)
	assert.False(t, report.Checks[0].Passed)
	assert.Contains(t, report.Checks[0].Message, "not found in PATH")
}

func TestCheckHookRegistered(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		settings   string // empty means no settings file
		wantPassed bool
		wantMsg    string
	}{
		"registered": {
			settings:   registeredSettings,
			wantPassed: true,
		},
		"missing settings file": {
			wantPassed: false,
			wantMsg:    "not registered",
		},
		"other hooks only": {
			settings:   `{"hooks": {"PostToolUse": [{"matcher": "Edit", "hooks": [{"type": "command", "command": "other-tool"}]}]}}`,
			wantPassed: false,
			wantMsg:    "not registered",
		},
		"malformed settings": {
			settings:   `{broken`,
			wantPassed: false,
			wantMsg:    "unparsable",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			if tt.settings != "" {
				writeSettings(t, dir, claude.SettingsFileName, tt.settings)
			}

			check := health.CheckHookRegistered(dir, "ruff-claude-hook")

			assert.Equal(t, tt.wantPassed, check.Passed)
			if tt.wantMsg != "" {
				assert.Contains(t, check.Message, tt.wantMsg)
			}
		})
	}
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	report := &health.HealthReport{
		Checks: []health.CheckResult{
			{Name: "ruff", Passed: true, Message: "/usr/bin/ruff (ruff 0.8.4)"},
			{Name: "hook registration", Passed: false, Message: "not registered"},
		},
	}

	output := health.FormatReport(report)

	assert.Contains(t, output, "✓ ruff: /usr/bin/ruff (ruff 0.8.4)")
	assert.Contains(t, output, "✗ hook registration: not registered")
}
