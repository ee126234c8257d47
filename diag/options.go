// options.go: functional options for the zerolog-backed Logger.
package diag

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type options struct {
	writer  io.Writer
	level   zerolog.Level
	service string
	pretty  bool
	stacks  bool
	logger  *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		writer:  os.Stderr,
		level:   zerolog.InfoLevel,
		service: "sql",
	}
}

// Option configures a Logger.
type Option func(*options)

// WithWriter sets the destination. Defaults to os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithLevel sets the minimum level written. Warnings are logged at warn,
// failures at error. Defaults to info.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) { o.level = level }
}

// WithService sets the service field stamped on every event.
func WithService(name string) Option {
	return func(o *options) {
		if name != "" {
			o.service = name
		}
	}
}

// WithPretty switches to zerolog's human-readable console output.
func WithPretty(pretty bool) Option {
	return func(o *options) { o.pretty = pretty }
}

// WithStacks includes captured stacks in the events.
func WithStacks(stacks bool) Option {
	return func(o *options) { o.stacks = stacks }
}

// WithLogger reuses an existing zerolog logger; writer, pretty and service
// options are then ignored.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}
