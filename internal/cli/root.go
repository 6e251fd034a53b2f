// Package cli provides the Cobra-based commands for ruff-claude-hook:
// init (register the hook in a project), check (verify the installation),
// version, and the implicit default mode in which the binary acts as the
// PostToolUse hook itself.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/ariel-frischer/ruff-claude-hook/internal/config"
	"github.com/ariel-frischer/ruff-claude-hook/internal/hook"
	"github.com/ariel-frischer/ruff-claude-hook/internal/ruff"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ruff-claude-hook [file]",
	Short: "Automatic ruff linting and formatting hook for Claude Code",
	Long: `Automatic ruff linting and formatting hook for Claude Code.

Invoked without a subcommand, the binary acts as the PostToolUse hook:
it reads the hook event from stdin, runs ruff check --fix, ruff format,
and ruff check on the edited Python file, then reports the result back
to Claude Code. A file path argument runs the same workflow directly on
that file.`,
	Example: `  # Initialize hook in current project
  ruff-claude-hook init

  # Force overwrite existing configuration (creates backups)
  ruff-claude-hook init --force

  # Verify installation
  ruff-claude-hook check

  # Run the workflow on one file by hand
  ruff-claude-hook path/to/file.py`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runHook,
}

// Execute runs the root command. Exit-code errors have already reported
// themselves; anything else (flag parse errors, usage mistakes) is printed
// here since cobra's own reporting is silenced.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var exitErr *exitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}

// runHook is the default mode: act as the PostToolUse hook.
func runHook(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return NewExitError(ExitFailure)
	}

	runner := hook.NewRunner(ruff.New(ruff.NewRunner(), cfg.RuffCmd))
	opts := hook.Options{Matcher: cfg.Matcher, FileSuffix: cfg.FileSuffix}

	var code int
	if len(args) == 1 {
		code = hook.ExecuteFile(cmd.OutOrStdout(), runner, args[0], opts)
	} else {
		code = hook.Execute(cmd.InOrStdin(), cmd.OutOrStdout(), runner, opts)
	}

	if code != ExitSuccess {
		return NewExitError(code)
	}
	return nil
}
