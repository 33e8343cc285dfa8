// Package cli implements the tidyviz command-line interface.
//
// Four command groups sit under the tidyviz root: bechdel renders the
// decade chart, postoffices renders the expansion map, stats prints the
// aggregates behind either one, and cache manages the local store. All of
// them take --verbose for debug output; loggers travel by context so the
// pipeline can report progress without the CLI threading them by hand.
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().Execute(); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the shared charmbracelet logger. Sub-second
// timestamps make the stage timings legible when --verbose is on.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one pipeline stage from construction to done.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock for a stage.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, rounded to a millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey keeps this package's context keys from colliding with other
// packages' keys.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to the context for downstream stages.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext recovers the attached logger, or log.Default() when
// the context never got one.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
