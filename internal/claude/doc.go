// Package claude provides Claude Code settings management for
// ruff-claude-hook. It handles loading, merging, and writing the
// .claude/settings.json, .claude/settings.local.json, and .claude/CLAUDE.md
// documents that register the ruff hook in a project.
//
// The package supports:
//   - Loading and parsing settings files while preserving unknown keys
//   - Idempotent hook registration under hooks.PostToolUse
//   - Adding the hook's Bash permission to the local allow list
//   - Marker-delimited merges of the CLAUDE.md instructions section
//   - Backup snapshots before forced overwrites
//   - Atomic file writes to prevent corruption
package claude
