package notify

import (
	"context"
	"io"
	"log"
	"os"
)

// Dispatcher shows a notification and returns the ID the server assigned to it.
//
// When previous is non-nil the server is asked to replace the notification
// with that ID instead of creating a new one. The returned ID may differ from
// *previous, and callers must keep the returned value.
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification, previous *uint32) (uint32, error)
}

// Closer is implemented by Dispatchers that can remove a notification from
// the screen before it expires.
type Closer interface {
	CloseNotification(ctx context.Context, id uint32) error
}

type options struct {
	command string
	stderr  io.Writer
	logger  *log.Logger
}

func defaultOptions() options {
	return options{
		command: defaultCommand,
		stderr:  os.Stderr,
		logger:  log.New(os.Stderr, "notify: ", log.Flags()),
	}
}

// Option configures a Dispatcher.
type Option func(*options)

// WithCommand sets the notifier program run by NotifySend.
// It is looked up in PATH unless it contains a path separator.
func WithCommand(command string) Option {
	return func(o *options) {
		o.command = command
	}
}

// WithStderr sets where the notifier program's standard error goes.
// Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

// WithLogger overrides the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}
	return o
}
