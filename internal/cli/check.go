package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ariel-frischer/ruff-claude-hook/internal/config"
	"github.com/ariel-frischer/ruff-claude-hook/internal/health"
	"github.com/ariel-frischer/ruff-claude-hook/internal/ruff"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the ruff-claude-hook installation",
	Long: `Verify the ruff-claude-hook installation.

This command checks:
  - ruff is in PATH and reports its version
  - the ruff-claude-hook binary is in PATH
  - the hook is registered in .claude/settings.json
  - the Bash permission is present in .claude/settings.local.json

Exits 0 only when every check passes.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔍 Checking ruff-claude-hook installation...\n\n")

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return NewExitError(ExitFailure)
	}

	// Spinner animation only on an interactive terminal; its output goes
	// to stderr so stdout stays parseable.
	var sp *spinner.Spinner
	if term.IsTerminal(int(os.Stdout.Fd())) {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Writer = os.Stderr
		sp.Suffix = " probing installation"
		sp.Start()
	}

	report := health.RunHealthChecks(".", ruff.NewRunner(), cfg.RuffCmd, cfg.HookCmd)

	if sp != nil {
		sp.Stop()
	}

	fmt.Fprint(out, health.FormatReport(report))

	if !report.Passed {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(out, "\n%s\n", red("❌ Installation problems found"))
		return NewExitError(ExitFailure)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "\n%s\n", green("✅ Installation looks good!"))
	fmt.Fprintf(out, "\nNext steps:\n")
	fmt.Fprintf(out, "  1. cd <your-project>\n")
	fmt.Fprintf(out, "  2. ruff-claude-hook init\n")
	fmt.Fprintf(out, "  3. Open the project in Claude Code\n")
	return nil
}
