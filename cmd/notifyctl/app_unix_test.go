//go:build unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeNotifySend writes a notifier script that records its arguments and
// prints id.
func fakeNotifySend(t *testing.T, id string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	argsPath := filepath.Join(dir, "args")
	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$@\" > '%s'\necho '%s'\n", argsPath, id)
	scriptPath := filepath.Join(dir, "notify-send")
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o755))
	return scriptPath, argsPath
}

func readArgs(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestSend(t *testing.T) {
	command, argsPath := fakeNotifySend(t, "42")
	cfg := filepath.Join(t.TempDir(), "notifyctl.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("app_name = \"builds\"\nexpire_time = 3000\n"), 0o600))

	app := NewApp()
	var out bytes.Buffer
	app.Writer = &out

	err := app.Run([]string{"notifyctl", "--config", cfg, "--command", command, "--icon", "emblem-ok", "send", "Build done", "all green"})
	require.NoError(t, err)
	require.Equal(t, "42\n", out.String())
	require.Equal(t, []string{
		"--expire-time", "3000",
		"--print-id",
		"--app-name", "builds",
		"--icon", "emblem-ok",
		"Build done", "all green",
	}, readArgs(t, argsPath))
}

func TestSendReplace(t *testing.T) {
	command, argsPath := fakeNotifySend(t, "7")

	app := NewApp()
	var out bytes.Buffer
	app.Writer = &out

	err := app.Run([]string{"notifyctl", "--config", emptyConfig(t), "--command", command, "send", "--replace-id", "7", "Hi"})
	require.NoError(t, err)
	require.Equal(t, "7\n", out.String())
	require.Equal(t, []string{
		"--replace-id", "7",
		"--print-id",
		"--app-name", "notifyctl",
		"--icon", "",
		"Hi", "",
	}, readArgs(t, argsPath))
}

func TestSendBadOutput(t *testing.T) {
	command, _ := fakeNotifySend(t, "no daemon running")

	app := NewApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"notifyctl", "--config", emptyConfig(t), "--command", command, "send", "Hi"})
	require.ErrorContains(t, err, "parsing notification id")
}
