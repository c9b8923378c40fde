// Package logging builds the logrus logger shared by the CLI and the
// internal services.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options control the logger produced by New.
type Options struct {
	// Verbose lowers the level from Info to Debug.
	Verbose bool
	// JSON switches the formatter from text to JSON output.
	JSON bool
	// Output defaults to os.Stderr when nil.
	Output io.Writer
}

// New returns a configured *logrus.Logger. Log output goes to stderr so
// command output on stdout stays machine-readable.
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	return log
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
