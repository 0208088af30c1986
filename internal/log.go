package internal

import (
	"io"
)

// LogParams contains the parameters for logging console output and errors.
// These will vary depending on whether navkit runs in ticker or tui mode.
// # Ticker mode
// - console output goes to stdout
// - error logs go to stderr
// # TUI mode
// - console output is discarded, the terminal belongs to the TUI
// - error logs go to the log file, `navkit.log` by default
// .
type LogParams struct {
	ConsoleOut io.Writer
	ErrorOut   io.Writer
}
