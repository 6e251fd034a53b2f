package hook

import (
	"encoding/json"
	"fmt"
)

// Event is the PostToolUse payload Claude Code delivers on stdin.
// Only the fields the ruff hook inspects are declared; the tool input is
// kept flexible because its shape varies by tool.
type Event struct {
	HookEventName string                 `json:"hook_event_name"`
	ToolName      string                 `json:"tool_name"`
	ToolInput     map[string]interface{} `json:"tool_input"`
	Parameters    map[string]interface{} `json:"parameters"`
}

// ParseEvent decodes a hook event from raw stdin bytes.
func ParseEvent(data []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("parsing hook event: %w", err)
	}
	return &event, nil
}

// FilePath extracts the edited file path from the event. The "parameters"
// key is the current protocol shape; "tool_input" is the legacy one.
func (e *Event) FilePath() string {
	if path := stringField(e.Parameters, "file_path"); path != "" {
		return path
	}
	return stringField(e.ToolInput, "file_path")
}

func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
