package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output is the JSON envelope the hook prints on stdout for Claude Code.
type Output struct {
	Continue           bool               `json:"continue"`
	SystemMessage      string             `json:"systemMessage"`
	HookSpecificOutput HookSpecificOutput `json:"hookSpecificOutput"`
}

// HookSpecificOutput carries the message back into Claude's context.
type HookSpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// newOutput wraps a message in the standard PostToolUse envelope. The hook
// always lets Claude continue; failures are surfaced through the message
// and the process exit code.
func newOutput(message string) Output {
	return Output{
		Continue:      true,
		SystemMessage: message,
		HookSpecificOutput: HookSpecificOutput{
			HookEventName:     "PostToolUse",
			AdditionalContext: message,
		},
	}
}

// writeOutput prints the envelope as a single JSON line.
func writeOutput(w io.Writer, message string) {
	data, err := json.Marshal(newOutput(message))
	if err != nil {
		// Marshaling a struct of strings cannot fail in practice.
		fmt.Fprintln(w, message)
		return
	}
	fmt.Fprintln(w, string(data))
}

// passMessage is the success line reported to the agent.
func passMessage(filename string) string {
	return fmt.Sprintf("✅ Ruff checks passed: %s", filename)
}

// failMessage is the diagnostic block reported when violations remain.
func failMessage(filename string, diagnostics []string) string {
	return fmt.Sprintf(
		"❌ Ruff errors in %s:\n\n%s\n\n⚠️  Claude: You MUST fix these errors before continuing",
		filename, strings.Join(diagnostics, "\n"))
}

// toolErrorMessage reports a failure to execute ruff at all.
func toolErrorMessage(err error) string {
	return fmt.Sprintf("Error running ruff: %v", err)
}
