// ruff-claude-hook - automatic ruff linting and formatting for Claude Code

package main

import (
	"os"

	"github.com/ariel-frischer/ruff-claude-hook/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
