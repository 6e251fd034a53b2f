package hook

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Options control which edits the hook reacts to.
type Options struct {
	// Matcher is the tool name the hook responds to (default "Edit").
	Matcher string
	// FileSuffix restricts the hook to matching files (default ".py").
	FileSuffix string
}

// defaults fills zero-valued options.
func (o Options) defaults() Options {
	if o.Matcher == "" {
		o.Matcher = "Edit"
	}
	if o.FileSuffix == "" {
		o.FileSuffix = ".py"
	}
	return o
}

// Execute is the hook-mode entry point: read the event from stdin, filter
// it, run ruff, and emit the output envelope. It returns the process exit
// code: 0 for pass or skipped events, 1 for lint failures and tool errors.
// Events the hook does not care about (non-JSON stdin, other tools,
// non-Python or missing files) are skipped silently so every edit in the
// project stays cheap.
func Execute(stdin io.Reader, stdout io.Writer, runner *Runner, opts Options) int {
	opts = opts.defaults()

	data, err := io.ReadAll(stdin)
	if err != nil {
		return 0
	}

	event, err := ParseEvent(data)
	if err != nil {
		return 0
	}

	if event.ToolName != opts.Matcher {
		return 0
	}

	filePath := event.FilePath()
	if filePath == "" {
		return 0
	}

	return ExecuteFile(stdout, runner, filePath, opts)
}

// ExecuteFile runs the ruff workflow on a single file path and emits the
// output envelope. It is the shared tail of Execute and the direct
// file-argument invocation.
func ExecuteFile(stdout io.Writer, runner *Runner, filePath string, opts Options) int {
	opts = opts.defaults()

	if !strings.HasSuffix(filePath, opts.FileSuffix) {
		return 0
	}
	if _, err := os.Stat(filePath); err != nil {
		return 0
	}

	filename := filepath.Base(filePath)

	result, err := runner.Run(filePath)
	if err != nil {
		writeOutput(stdout, toolErrorMessage(err))
		return 1
	}

	if result.Passed {
		writeOutput(stdout, passMessage(filename))
		return 0
	}

	writeOutput(stdout, failMessage(filename, result.Diagnostics))
	return 1
}
