package notify

import (
	"context"
	"errors"
	"io"
	"log"
	"os/exec"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultCommand = "notify-send"

// NotifySend is a Dispatcher running the notify-send program.
//
// Each Dispatch runs one process and blocks until it exits. The program's
// standard error is passed through, standard output must contain the ID
// printed by --print-id.
type NotifySend struct {
	command string
	stderr  io.Writer
	logger  *log.Logger
}

// NewNotifySend creates a NotifySend dispatcher.
func NewNotifySend(opts ...Option) *NotifySend {
	o := applyOptions(opts)
	return &NotifySend{
		command: o.command,
		stderr:  o.stderr,
		logger:  o.logger,
	}
}

// Dispatch implements Dispatcher.
//
// A non-zero exit status is not an error by itself: the output is parsed
// regardless, so a server diagnostic shows up as a ParseError.
func (s *NotifySend) Dispatch(ctx context.Context, n Notification, previous *uint32) (uint32, error) {
	cmd := exec.CommandContext(ctx, s.command, notifySendArgs(n, previous)...)
	cmd.Stderr = s.stderr

	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, &ProcessError{Command: s.command, Err: ctxErr}
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 0, &ProcessError{Command: s.command, Err: err}
		}
		s.logger.Printf("%s exited with status %d", s.command, exitErr.ExitCode())
	}

	id, err := parseID(out)
	if err != nil {
		s.logger.Printf("error reading notification id: %v", err)
		return 0, err
	}
	return id, nil
}

// TODO: pass hints as --hint TYPE:NAME:VALUE once Notification carries them.
func notifySendArgs(n Notification, previous *uint32) []string {
	var args []string

	// ExpireTimeoutNever is not sent, notify-send then falls back to the server default.
	if ms, ok := n.expireMilliseconds(); ok {
		args = append(args, "--expire-time", strconv.FormatInt(ms, 10))
	}

	if previous != nil {
		args = append(args, "--replace-id", strconv.FormatUint(uint64(*previous), 10))
	}

	return append(args,
		"--print-id",
		"--app-name", n.AppName,
		"--icon", n.AppIcon,
		n.Summary,
		n.Body,
	)
}

func parseID(out []byte) (uint32, error) {
	if !utf8.Valid(out) {
		return 0, &EncodingError{Output: out}
	}
	text := strings.TrimRightFunc(string(out), unicode.IsSpace)
	id, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, &ParseError{Output: text, Err: err}
	}
	return uint32(id), nil
}
