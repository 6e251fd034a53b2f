package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ariel-frischer/ruff-claude-hook/internal/claude"
	"github.com/ariel-frischer/ruff-claude-hook/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the ruff hook in the current project",
	Long: `Initialize the ruff hook in the current project.

This command:
  1. Registers ruff-claude-hook under hooks.PostToolUse in .claude/settings.json
  2. Adds the Bash(ruff-claude-hook:*) permission to .claude/settings.local.json
  3. Adds a ruff usage section to .claude/CLAUDE.md

Existing settings are merged, not overwritten: keys unrelated to the ruff
hook pass through unchanged, and re-running init is a no-op. With --force,
each file is backed up to <name>.backup and the hook registration is
rewritten from scratch.`,
	Example: `  # Initialize hook in current project
  ruff-claude-hook init

  # Overwrite existing configuration (creates backups)
  ruff-claude-hook init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "Force overwrite existing files (creates backups)")
}

func runInit(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "🚀 Initializing ruff-claude-hook...\n\n")

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return NewExitError(ExitFailure)
	}

	steps := []func(io.Writer, string, *config.Configuration, bool) error{
		installSettings,
		installLocalSettings,
		installInstructions,
	}
	for _, step := range steps {
		if err := step(out, ".", cfg, force); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "❌ Error: %v\n", err)
			return NewExitError(ExitFailure)
		}
	}

	fmt.Fprintf(out, "\n✅ Ruff hook initialized successfully!\n")
	fmt.Fprintf(out, "\nNext steps:\n")
	fmt.Fprintf(out, "  1. Review .claude/settings.json to ensure the hook is configured\n")
	fmt.Fprintf(out, "  2. Open this project in Claude Code\n")
	fmt.Fprintf(out, "  3. Edit a Python file - the hook will run automatically\n")
	fmt.Fprintf(out, "\nTo update: ruff-claude-hook init --force\n")

	return nil
}

// installSettings merges the hook registration into .claude/settings.json.
func installSettings(out io.Writer, projectDir string, cfg *config.Configuration, force bool) error {
	entry := claude.NewHookEntry(cfg.Matcher, cfg.HookCmd)

	settings, err := claude.Load(projectDir)
	switch {
	case err == nil:
		if force && settings.Exists() {
			if err := snapshot(out, settings.FilePath()); err != nil {
				return err
			}
		}
	case errors.Is(err, claude.ErrMalformedSettings) && force:
		// Unusable file: snapshot the raw bytes and start over.
		settings = claude.NewSettings(projectDir)
		if err := snapshot(out, settings.FilePath()); err != nil {
			return err
		}
	case errors.Is(err, claude.ErrMalformedSettings):
		return fmt.Errorf("%w (rerun with --force to back it up and rewrite)", err)
	default:
		return err
	}

	changed := settings.MergeHookEntry(entry, force)
	if err := settings.Save(); err != nil {
		return err
	}

	if changed {
		fmt.Fprintf(out, "✅ Ruff hook registered in %s\n", settings.FilePath())
	} else {
		fmt.Fprintf(out, "✅ Ruff hook already registered in %s\n", settings.FilePath())
	}
	return nil
}

// installLocalSettings merges the hook permission into settings.local.json.
func installLocalSettings(out io.Writer, projectDir string, _ *config.Configuration, force bool) error {
	settings, err := claude.LoadLocal(projectDir)
	switch {
	case err == nil:
		if force && settings.Exists() {
			if err := snapshot(out, settings.FilePath()); err != nil {
				return err
			}
		}
	case errors.Is(err, claude.ErrMalformedSettings) && force:
		settings = claude.NewLocalSettings(projectDir)
		if err := snapshot(out, settings.FilePath()); err != nil {
			return err
		}
	case errors.Is(err, claude.ErrMalformedSettings):
		return fmt.Errorf("%w (rerun with --force to back it up and rewrite)", err)
	default:
		return err
	}

	added := settings.AddPermission(claude.RequiredPermission)
	if err := settings.Save(); err != nil {
		return err
	}

	if added {
		fmt.Fprintf(out, "✅ Permission added to %s\n", settings.FilePath())
	} else {
		fmt.Fprintf(out, "✅ Permission already present in %s\n", settings.FilePath())
	}
	return nil
}

// installInstructions merges the ruff section into .claude/CLAUDE.md.
func installInstructions(out io.Writer, projectDir string, _ *config.Configuration, force bool) error {
	path := filepath.Join(projectDir, claude.SettingsDir, claude.InstructionsFileName)

	existing, err := os.ReadFile(path)
	switch {
	case err == nil && !force:
		merged := claude.MergeInstructions(string(existing))
		if err := os.WriteFile(path, []byte(merged), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(out, "✅ Ruff section merged into %s\n", path)
		return nil
	case err == nil && force:
		if err := snapshot(out, path); err != nil {
			return err
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(claude.InstructionsTemplate()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(out, "✅ Created %s\n", path)
	return nil
}

// snapshot backs up a file before a forced overwrite and reports it.
func snapshot(out io.Writer, path string) error {
	backup, err := claude.Snapshot(path)
	if err != nil {
		return err
	}
	if backup != "" {
		fmt.Fprintf(out, "💾 Backed up to: %s\n", backup)
	}
	return nil
}
