package notify

import (
	"errors"
	"fmt"
)

// ErrCloseUnsupported is returned by Handle.Close when the Dispatcher that
// showed the notification has no way to close it.
var ErrCloseUnsupported = errors.New("dispatcher cannot close notifications")

// ProcessError is returned when the notifier program could not be started,
// for example because it is not installed.
type ProcessError struct {
	Command string
	Err     error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("running %s: %v", e.Command, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// EncodingError is returned when the notifier printed bytes that are not
// valid UTF-8.
type EncodingError struct {
	Output []byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("notifier output is not valid UTF-8 (%d bytes)", len(e.Output))
}

// ParseError is returned when the notifier output is not a notification ID.
// This usually means the server printed a diagnostic instead, e.g. because
// no notification daemon is running.
type ParseError struct {
	Output string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing notification id from %q: %v", e.Output, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
