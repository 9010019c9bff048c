package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs to stderr.
type LogHandler struct {
	// Verbose enables detailed output including timestamps.
	Verbose bool
}

// HandleError logs an Error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[loom error] %s %s\n", err.Timestamp.Format("15:04:05.000"), err.Error())
	} else {
		fmt.Fprintf(os.Stderr, "[loom error] %s\n", err.Error())
	}
}

// HandleWarning logs a warning to stderr.
func (h *LogHandler) HandleWarning(err *Error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[loom warning] %s\n", err.Error())
}
