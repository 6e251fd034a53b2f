package claude

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSettingsFile(t *testing.T, dir, content string) string {
	t.Helper()
	claudeDir := filepath.Join(dir, SettingsDir)
	require.NoError(t, os.MkdirAll(claudeDir, 0755))
	path := filepath.Join(claudeDir, SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		setup       func(t *testing.T, dir string)
		wantErr     error
		checkResult func(t *testing.T, s *Settings)
	}{
		"missing file returns empty settings": {
			setup: func(t *testing.T, dir string) {
				// No setup - file doesn't exist
			},
			checkResult: func(t *testing.T, s *Settings) {
				assert.NotNil(t, s)
				assert.False(t, s.Exists())
				assert.Empty(t, s.HookCommands())
			},
		},
		"empty file returns empty settings": {
			setup: func(t *testing.T, dir string) {
				createSettingsFile(t, dir, "")
			},
			checkResult: func(t *testing.T, s *Settings) {
				assert.True(t, s.Exists())
				assert.Empty(t, s.HookCommands())
			},
		},
		"valid JSON with hooks": {
			setup: func(t *testing.T, dir string) {
				createSettingsFile(t, dir, `{
					"hooks": {"PostToolUse": [
						{"matcher": "Edit", "hooks": [{"type": "command", "command": "ruff-claude-hook"}]}
					]}
				}`)
			},
			checkResult: func(t *testing.T, s *Settings) {
				assert.Equal(t, []string{"ruff-claude-hook"}, s.HookCommands())
				assert.True(t, s.HasHookCommand("ruff-claude-hook"))
			},
		},
		"malformed JSON returns ErrMalformedSettings": {
			setup: func(t *testing.T, dir string) {
				createSettingsFile(t, dir, `{invalid json}`)
			},
			wantErr: ErrMalformedSettings,
		},
		"preserves extra fields": {
			setup: func(t *testing.T, dir string) {
				createSettingsFile(t, dir, `{
					"hooks": {"PostToolUse": []},
					"sandbox": {"enabled": true},
					"custom_field": "value"
				}`)
			},
			checkResult: func(t *testing.T, s *Settings) {
				assert.Contains(t, s.data, "sandbox")
				assert.Contains(t, s.data, "custom_field")
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			if tt.setup != nil {
				tt.setup(t, dir)
			}

			s, err := Load(dir)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkResult != nil {
				tt.checkResult(t, s)
			}
		})
	}
}

func TestMergeHookEntry(t *testing.T) {
	t.Parallel()

	entry := NewHookEntry("Edit", "ruff-claude-hook")

	t.Run("absent document yields exactly the desired entry", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		s, err := Load(dir)
		require.NoError(t, err)

		assert.True(t, s.MergeHookEntry(entry, false))
		assert.Equal(t, []string{"ruff-claude-hook"}, s.HookCommands())
		assert.Len(t, s.data, 1) // only "hooks"
	})

	t.Run("idempotent on second merge", func(t *testing.T) {
		t.Parallel()
		s := &Settings{data: make(map[string]interface{})}

		require.True(t, s.MergeHookEntry(entry, false))
		first, err := json.Marshal(s.data)
		require.NoError(t, err)

		assert.False(t, s.MergeHookEntry(entry, false))
		second, err := json.Marshal(s.data)
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second))
		assert.Equal(t, []string{"ruff-claude-hook"}, s.HookCommands())
	})

	t.Run("preserves unrelated keys and entries", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		createSettingsFile(t, dir, `{
			"hooks": {"PostToolUse": [
				{"matcher": "Read", "hooks": [{"type": "command", "command": "echo 'Read hook'"}]}
			]},
			"customOption": "preserved"
		}`)

		s, err := Load(dir)
		require.NoError(t, err)

		assert.True(t, s.MergeHookEntry(entry, false))

		// Existing entry comes first, desired entry is appended.
		assert.Equal(t, []string{"echo 'Read hook'", "ruff-claude-hook"}, s.HookCommands())
		assert.Equal(t, "preserved", s.data["customOption"])
	})

	t.Run("force replaces the hook list wholesale", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		createSettingsFile(t, dir, `{
			"hooks": {"PostToolUse": [
				{"matcher": "Read", "hooks": [{"type": "command", "command": "echo 'Read hook'"}]}
			]},
			"customOption": "preserved"
		}`)

		s, err := Load(dir)
		require.NoError(t, err)

		assert.True(t, s.MergeHookEntry(entry, true))

		assert.Equal(t, []string{"ruff-claude-hook"}, s.HookCommands())
		assert.Equal(t, "preserved", s.data["customOption"])
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	createSettingsFile(t, dir, `{"customOption": "preserved", "hooks": {"Stop": []}}`)

	s, err := Load(dir)
	require.NoError(t, err)

	s.MergeHookEntry(NewHookEntry("Edit", "ruff-claude-hook"), false)
	require.NoError(t, s.Save())

	// Reload and verify the merge survived and unrelated keys are intact.
	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, reloaded.HasHookCommand("ruff-claude-hook"))
	assert.Equal(t, "preserved", reloaded.data["customOption"])
	assert.Contains(t, reloaded.data["hooks"], "Stop")

	// Written file is valid, indented JSON with a trailing newline.
	data, err := os.ReadFile(reloaded.FilePath())
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.True(t, len(data) > 0 && data[len(data)-1] == '\n')
}

func TestNewSettingsPaths(t *testing.T) {
	t.Parallel()

	s := NewSettings("/tmp/project")
	assert.Equal(t, filepath.Join("/tmp/project", SettingsDir, SettingsFileName), s.FilePath())

	local := NewLocalSettings("/tmp/project")
	assert.Equal(t, filepath.Join("/tmp/project", SettingsDir, LocalSettingsFileName), local.FilePath())
}
