package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/urfave/cli/v2"

	"github.com/djmaze/notify"
	"github.com/djmaze/notify/internal/config"
)

// NewApp creates the notifyctl CLI application.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "notifyctl",
		Usage: "Show desktop notifications and replace them in place",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "read settings from this TOML file only"},
			&cli.StringFlag{Name: "backend", Usage: "notify-send or dbus"},
			&cli.StringFlag{Name: "command", Usage: "notifier program for the notify-send backend"},
			&cli.StringFlag{Name: "app-name", Aliases: []string{"a"}, Usage: "application name"},
			&cli.StringFlag{Name: "icon", Aliases: []string{"i"}, Usage: "icon name or path"},
			&cli.IntFlag{Name: "expire-time", Aliases: []string{"t"}, Usage: "ms, -1 = server default, 0 = never expire"},
		},
		Commands: []*cli.Command{
			sendCommand(),
			progressCommand(),
			infoCommand(),
			closeCommand(),
		},
	}
}

func sendCommand() *cli.Command {
	return &cli.Command{
		Name:      "send",
		Usage:     "Show a notification and print its id",
		ArgsUsage: "<summary> [body]",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "replace-id", Aliases: []string{"r"}, Usage: "replace the notification with this id"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 || c.NArg() > 2 {
				return errors.New("usage: notifyctl send <summary> [body]")
			}

			cfg, err := loadSettings(c)
			if err != nil {
				return err
			}
			d, cleanup, err := newDispatcher(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			n := notificationFrom(cfg, c.Args().Get(0), c.Args().Get(1))

			var previous *uint32
			if c.IsSet("replace-id") {
				id := uint32(c.Uint("replace-id"))
				previous = &id
			}

			id, err := d.Dispatch(c.Context, n, previous)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, id)
			return nil
		},
	}
}

func progressCommand() *cli.Command {
	return &cli.Command{
		Name:      "progress",
		Usage:     "Show a notification and update its body with a percentage",
		ArgsUsage: "<summary>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "steps", Value: 10, Usage: "number of updates"},
			&cli.DurationFlag{Name: "interval", Value: 500 * time.Millisecond, Usage: "delay between updates"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("usage: notifyctl progress <summary>")
			}
			steps := c.Int("steps")
			if steps < 1 {
				return fmt.Errorf("steps must be positive, got %d", steps)
			}

			cfg, err := loadSettings(c)
			if err != nil {
				return err
			}
			d, cleanup, err := newDispatcher(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return runProgress(c.Context, d, notificationFrom(cfg, c.Args().Get(0), "0%"), steps, c.Duration("interval"), c.App.Writer)
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Print notification server information and capabilities",
		Action: func(c *cli.Context) error {
			d, cleanup, err := newDBus()
			if err != nil {
				return err
			}
			defer cleanup()

			info, err := d.ServerInformation(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Name:    %v\n", info.Name)
			fmt.Fprintf(c.App.Writer, "Vendor:  %v\n", info.Vendor)
			fmt.Fprintf(c.App.Writer, "Version: %v\n", info.Version)
			fmt.Fprintf(c.App.Writer, "Spec:    %v\n", info.SpecVersion)

			caps, err := d.Capabilities(c.Context)
			if err != nil {
				return err
			}
			for _, capability := range caps {
				fmt.Fprintf(c.App.Writer, "Registered capability: %v\n", capability)
			}
			return nil
		},
	}
}

func closeCommand() *cli.Command {
	return &cli.Command{
		Name:      "close",
		Usage:     "Close a notification over D-Bus",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("usage: notifyctl close <id>")
			}
			id, err := strconv.ParseUint(c.Args().Get(0), 10, 32)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", c.Args().Get(0), err)
			}

			d, cleanup, err := newDBus()
			if err != nil {
				return err
			}
			defer cleanup()

			return d.CloseNotification(c.Context, uint32(id))
		},
	}
}

// runProgress shows n and then replaces it steps times, once per interval.
func runProgress(ctx context.Context, d notify.Dispatcher, n notify.Notification, steps int, interval time.Duration, w io.Writer) error {
	h, err := notify.Show(ctx, d, n)
	if err != nil {
		return err
	}

	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}

		h.Body = fmt.Sprintf("%d%%", i*100/steps)
		if err := h.Update(ctx); err != nil {
			return fmt.Errorf("updating notification %d: %w", h.ID(), err)
		}
	}

	fmt.Fprintln(w, h.ID())
	return nil
}

// loadSettings reads the config files and applies global flags over them.
func loadSettings(c *cli.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := c.String("config"); path != "" {
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("config %q: %w", path, statErr)
		}
		cfg, err = config.LoadFiles(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("command") {
		cfg.Command = c.String("command")
	}
	if c.IsSet("app-name") {
		cfg.AppName = c.String("app-name")
	}
	if c.IsSet("icon") {
		cfg.Icon = c.String("icon")
	}
	if c.IsSet("expire-time") {
		cfg.ExpireTime = c.Int("expire-time")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func notificationFrom(cfg *config.Config, summary, body string) notify.Notification {
	return notify.Notification{
		AppName:       cfg.AppName,
		AppIcon:       cfg.Icon,
		Summary:       summary,
		Body:          body,
		ExpireTimeout: cfg.ExpireTimeout(),
	}
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "notifyctl: ", 0)
}

func newDispatcher(cfg *config.Config) (notify.Dispatcher, func(), error) {
	if cfg.Backend == config.BackendDBus {
		d, cleanup, err := newDBus()
		if err != nil {
			return nil, nil, err
		}
		return d, cleanup, nil
	}
	return notify.NewNotifySend(
		notify.WithCommand(cfg.Command),
		notify.WithLogger(newLogger()),
	), func() {}, nil
}

func newDBus() (*notify.DBus, func(), error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	cleanup := func() {
		if err := conn.Close(); err != nil {
			log.Printf("closing session bus: %v", err)
		}
	}
	return notify.NewDBus(conn, notify.WithLogger(newLogger())), cleanup, nil
}
