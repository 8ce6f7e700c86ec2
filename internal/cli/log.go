// Package cli implements the coursegraph command-line interface.
//
// The commands load a course catalog, validate it, lay it out and render it
// through pkg/pipeline. The CLI is built using cobra and logs with
// charmbracelet/log.
//
// # Commands
//
//   - check: Validate a catalog and report unknown prerequisites and cycles
//   - layout: Write the computed layout as JSON
//   - render: Generate SVG, PNG, PDF, DOT, HTML or JSON output
//   - query: Show the prerequisites and dependents of one course
//   - explore: Browse a catalog interactively
//   - serve: Run the HTTP API
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so helpers can log without a CLI handle.
//
// # Configuration
//
// Defaults for direction, geometry, cache backend and server address come
// from $XDG_CONFIG_HOME/coursegraph/config.toml, or the file named by
// --config.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Log levels selectable from the command line.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// newLogger returns a logger writing to w at level, stamped "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one CLI step.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) progress {
	return progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Computed layout (12ms)", plus
// any extra key/value pairs.
func (p progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg+" ("+time.Since(p.start).Round(time.Millisecond).String()+")", keyvals...)
}

type loggerKey struct{}

// withLogger attaches l to ctx for helpers that only receive a context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the attached logger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
