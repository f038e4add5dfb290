// Package config loads notifyctl settings from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/djmaze/notify"
)

const appName = "notifyctl"

// Backends selectable with the backend key.
const (
	BackendNotifySend = "notify-send"
	BackendDBus       = "dbus"
)

type Config struct {
	Backend    string `koanf:"backend"`     // "notify-send" or "dbus"
	Command    string `koanf:"command"`     // notifier program for the notify-send backend
	AppName    string `koanf:"app_name"`
	Icon       string `koanf:"icon"`        // icon name or path
	ExpireTime int    `koanf:"expire_time"` // ms, -1 = server default, 0 = never expire
}

// Default returns the settings used when no config file sets a key.
func Default() *Config {
	return &Config{
		Backend:    BackendNotifySend,
		Command:    "notify-send",
		AppName:    appName,
		ExpireTime: -1,
	}
}

// Load reads $XDG_CONFIG_HOME/notifyctl/config.toml and then ./notifyctl.toml.
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles reads the given TOML files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("loading %s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Command = expandPath(cfg.Command)
	cfg.Icon = expandPath(cfg.Icon)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendNotifySend:
		if c.Command == "" {
			return fmt.Errorf("backend %q needs a command", c.Backend)
		}
	case BackendDBus:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}

// ExpireTimeout converts ExpireTime to a Notification timeout.
func (c *Config) ExpireTimeout() time.Duration {
	if c.ExpireTime < 0 {
		return notify.ExpireTimeoutSetByNotificationServer
	}
	return time.Duration(c.ExpireTime) * time.Millisecond
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/notifyctl/config.toml (or any XDG config dir)
	if path, err := xdg.SearchConfigFile(filepath.Join(appName, "config.toml")); err == nil {
		paths = append(paths, path)
	}

	// 2. ./notifyctl.toml (pwd, highest priority)
	paths = append(paths, appName+".toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
