package claude

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMalformedSettings indicates an existing settings file could not be
// parsed as a JSON document. Callers surface this with a suggestion to
// rerun init with --force.
var ErrMalformedSettings = errors.New("malformed settings")

// SettingsDir is the directory containing Claude Code project settings.
const SettingsDir = ".claude"

// SettingsFileName is the shared project settings file (hook registrations).
const SettingsFileName = "settings.json"

// LocalSettingsFileName is the per-user settings file (permissions).
const LocalSettingsFileName = "settings.local.json"

// PostToolUseEvent is the hook event the ruff hook registers under.
const PostToolUseEvent = "PostToolUse"

// HookCommand is the command Claude Code runs after matching edits.
const HookCommand = "ruff-claude-hook"

// RequiredPermission is the permission the hook needs in settings.local.json.
const RequiredPermission = "Bash(ruff-claude-hook:*)"

// HookSpec is a single command inside a hook entry.
type HookSpec struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// HookEntry is the fixed-shape fragment registered under hooks.PostToolUse:
// run a command after a tool invocation matching Matcher.
type HookEntry struct {
	Matcher string     `json:"matcher"`
	Hooks   []HookSpec `json:"hooks"`
}

// NewHookEntry builds the standard single-command hook entry.
func NewHookEntry(matcher, command string) HookEntry {
	return HookEntry{
		Matcher: matcher,
		Hooks:   []HookSpec{{Type: "command", Command: command}},
	}
}

// asMap converts the entry to the generic JSON shape stored in a settings
// document.
func (e HookEntry) asMap() map[string]interface{} {
	hooks := make([]interface{}, len(e.Hooks))
	for i, h := range e.Hooks {
		hooks[i] = map[string]interface{}{
			"type":    h.Type,
			"command": h.Command,
		}
	}
	return map[string]interface{}{
		"matcher": e.Matcher,
		"hooks":   hooks,
	}
}

// Settings represents a Claude settings file with flexible JSON structure.
// Uses map[string]interface{} so keys unrelated to the ruff hook are
// preserved untouched across a merge.
type Settings struct {
	data     map[string]interface{}
	filePath string
}

// NewSettings creates an empty settings document for the project's
// .claude/settings.json, ignoring anything on disk. Used when a forced
// init starts over after snapshotting an unusable file.
func NewSettings(projectDir string) *Settings {
	return &Settings{
		data:     make(map[string]interface{}),
		filePath: filepath.Join(projectDir, SettingsDir, SettingsFileName),
	}
}

// NewLocalSettings creates an empty document for settings.local.json.
func NewLocalSettings(projectDir string) *Settings {
	return &Settings{
		data:     make(map[string]interface{}),
		filePath: filepath.Join(projectDir, SettingsDir, LocalSettingsFileName),
	}
}

// Load reads .claude/settings.json from the project directory. A missing
// file yields an empty document; unparsable content yields
// ErrMalformedSettings.
func Load(projectDir string) (*Settings, error) {
	return loadFromPath(filepath.Join(projectDir, SettingsDir, SettingsFileName))
}

// LoadLocal reads .claude/settings.local.json from the project directory.
func LoadLocal(projectDir string) (*Settings, error) {
	return loadFromPath(filepath.Join(projectDir, SettingsDir, LocalSettingsFileName))
}

func loadFromPath(settingsPath string) (*Settings, error) {
	s := &Settings{
		data:     make(map[string]interface{}),
		filePath: settingsPath,
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", settingsPath, err)
	}

	if len(data) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, &s.data); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrMalformedSettings, settingsPath, err)
	}

	return s, nil
}

// FilePath returns the path to the settings file.
func (s *Settings) FilePath() string {
	return s.filePath
}

// Exists returns true if the settings file exists on disk.
func (s *Settings) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// getHooks returns the hooks object, creating it if necessary.
func (s *Settings) getHooks() map[string]interface{} {
	hooks, ok := s.data["hooks"].(map[string]interface{})
	if !ok {
		hooks = make(map[string]interface{})
		s.data["hooks"] = hooks
	}
	return hooks
}

// postToolUseList returns the current hooks.PostToolUse entries.
func (s *Settings) postToolUseList() []interface{} {
	hooks := s.getHooks()
	list, ok := hooks[PostToolUseEvent].([]interface{})
	if !ok {
		return nil
	}
	return list
}

// HookCommands returns every command string registered under
// hooks.PostToolUse, in document order.
func (s *Settings) HookCommands() []string {
	var commands []string
	for _, raw := range s.postToolUseList() {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		inner, ok := entry["hooks"].([]interface{})
		if !ok {
			continue
		}
		for _, h := range inner {
			hook, ok := h.(map[string]interface{})
			if !ok {
				continue
			}
			if cmd, ok := hook["command"].(string); ok {
				commands = append(commands, cmd)
			}
		}
	}
	return commands
}

// HasHookCommand checks whether some PostToolUse entry already registers
// the given command string.
func (s *Settings) HasHookCommand(command string) bool {
	for _, cmd := range s.HookCommands() {
		if cmd == command {
			return true
		}
	}
	return false
}

// MergeHookEntry inserts the entry into hooks.PostToolUse. Without force,
// the merge is a set-like union keyed by command string: an entry whose
// command is already registered is not duplicated, and existing entries
// keep their order. With force, the PostToolUse list is replaced wholesale
// by the single desired entry. Returns true if the document changed.
func (s *Settings) MergeHookEntry(entry HookEntry, force bool) bool {
	hooks := s.getHooks()

	if force {
		hooks[PostToolUseEvent] = []interface{}{entry.asMap()}
		return true
	}

	for _, h := range entry.Hooks {
		if s.HasHookCommand(h.Command) {
			return false
		}
	}

	hooks[PostToolUseEvent] = append(s.postToolUseList(), entry.asMap())
	return true
}

// Save writes the settings to disk using atomic write (temp file + rename).
// Creates the .claude directory if it doesn't exist. Written JSON is
// pretty-printed for human readability.
func (s *Settings) Save() error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}

	// Trailing newline for POSIX compliance
	data = append(data, '\n')

	return atomicWrite(s.filePath, data)
}

// atomicWrite writes data to a file atomically using temp file + rename.
func atomicWrite(filePath string, data []byte) error {
	dir := filepath.Dir(filePath)
	tmpFile, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", filePath, err)
	}

	tmpPath = ""
	return nil
}
