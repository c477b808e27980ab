// Package logging builds the diagnostic logger used throughout a single
// invocation.
//
// The logger is created once from the --verbose flag and passed down
// explicitly; no package keeps a global logger.
package logging

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// DebugLevel is the V-level used for diagnostics that only show with --verbose.
const DebugLevel = 1

// New returns a logger writing to w. Messages logged at DebugLevel are only
// emitted when verbose is set.
func New(w io.Writer, verbose bool) logr.Logger {
	verbosity := 0
	if verbose {
		verbosity = DebugLevel
	}

	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}

// Debug returns the debug-level view of logger.
func Debug(logger logr.Logger) logr.Logger {
	return logger.V(DebugLevel)
}
