package claude

import (
	_ "embed"
	"strings"
)

// InstructionsFileName is the project instructions document under .claude/.
const InstructionsFileName = "CLAUDE.md"

// Sentinel markers delimiting the ruff section so repeated installs are
// idempotent.
const (
	StartMarker = "<!-- ruff-claude-hook-start -->"
	EndMarker   = "<!-- ruff-claude-hook-end -->"
)

//go:embed templates/CLAUDE.md
var instructionsTemplate string

// InstructionsTemplate returns the full instructions document, markers
// included, used when no CLAUDE.md exists yet.
func InstructionsTemplate() string {
	return instructionsTemplate
}

// instructionsBody returns the template content between the markers.
func instructionsBody() string {
	content := instructionsTemplate
	start := strings.Index(content, StartMarker)
	end := strings.Index(content, EndMarker)
	if start < 0 || end < 0 {
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(content[start+len(StartMarker) : end])
}

// MergeInstructions merges the ruff section into an existing instructions
// document. If the sentinel markers are already present, the section
// between them is replaced in place; otherwise the section is appended
// after a horizontal rule. Content outside the markers is untouched.
func MergeInstructions(existing string) string {
	body := instructionsBody()

	start := strings.Index(existing, StartMarker)
	end := strings.Index(existing, EndMarker)
	if start >= 0 && end >= 0 {
		// Replace existing section, keeping the existing markers.
		inner := start + len(StartMarker)
		return existing[:inner] + "\n\n" + body + "\n\n" + existing[end:]
	}

	return existing + "\n\n---\n\n" + StartMarker + "\n\n" + body + "\n\n" + EndMarker + "\n"
}
