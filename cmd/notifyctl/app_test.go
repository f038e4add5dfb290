package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/djmaze/notify"
)

type recordingDispatcher struct {
	bodies   []string
	previous []*uint32
	next     uint32
}

func (r *recordingDispatcher) Dispatch(_ context.Context, n notify.Notification, previous *uint32) (uint32, error) {
	r.bodies = append(r.bodies, n.Body)
	r.previous = append(r.previous, previous)
	r.next++
	return r.next, nil
}

func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notifyctl.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func TestRunProgress(t *testing.T) {
	d := &recordingDispatcher{}
	var out bytes.Buffer

	err := runProgress(context.Background(), d, notify.Notification{Summary: "Copying", Body: "0%"}, 4, time.Millisecond, &out)
	require.NoError(t, err)
	require.Equal(t, []string{"0%", "25%", "50%", "75%", "100%"}, d.bodies)

	require.Nil(t, d.previous[0])
	for i, prev := range d.previous[1:] {
		require.NotNil(t, prev)
		require.EqualValues(t, i+1, *prev)
	}
	require.Equal(t, "5\n", out.String())
}

func TestRunProgressCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := &recordingDispatcher{}
	var out bytes.Buffer
	err := runProgress(ctx, d, notify.Notification{Summary: "Copying"}, 3, time.Hour, &out)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, d.bodies, 1)
}

func TestSendUsage(t *testing.T) {
	app := NewApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"notifyctl", "--config", emptyConfig(t), "send"})
	require.EqualError(t, err, "usage: notifyctl send <summary> [body]")
}

func TestUnknownBackend(t *testing.T) {
	app := NewApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"notifyctl", "--config", emptyConfig(t), "--backend", "smoke-signals", "send", "Hi"})
	require.EqualError(t, err, `unknown backend "smoke-signals"`)
}

func TestMissingConfig(t *testing.T) {
	app := NewApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"notifyctl", "--config", filepath.Join(t.TempDir(), "nope.toml"), "send", "Hi"})
	require.Error(t, err)
}

func TestCloseInvalidID(t *testing.T) {
	app := NewApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"notifyctl", "close", "seven"})
	require.ErrorContains(t, err, `invalid id "seven"`)
}
