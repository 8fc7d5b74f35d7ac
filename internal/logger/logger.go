package logger

import (
	"io"
	"os"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Output is where every log line is written.
// It is standard error so that standard output only carries the prompt and render lines.
var Output io.Writer = os.Stderr

var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// Info logs informational messages in green color.
func Info(format string, a ...any) {
	_, _ = infoColor.Fprintf(Output, format, a...)
}

// Warn logs warning messages in bright magenta color.
// Used for recoverable problems such as an unreadable config file.
func Warn(format string, a ...any) {
	_, _ = warnColor.Fprintf(Output, format, a...)
}

// Error logs error messages in red color.
func Error(format string, a ...any) {
	_, _ = errorColor.Fprintf(Output, format, a...)
}

// ErrorTo writes a red message to w instead of Output.
// Used for user-facing error lines that belong on standard output.
func ErrorTo(w io.Writer, format string, a ...any) {
	_, _ = errorColor.Fprintf(w, format, a...)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is reassigned by Init; until then it silently drops everything.
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// Parameters:
// - enableDebug: boolean flag to turn debug messages on or off.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = func(format string, a ...any) {
			_, _ = debugColor.Fprintf(Output, format, a...)
		}
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// SetNoColor forces colored output on or off for every writer, log or not.
func SetNoColor(noColor bool) {
	color.NoColor = noColor
}
