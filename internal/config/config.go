// Package config resolves twodo's settings from defaults, an optional
// twodo.yaml, TWODO_* environment variables, and bound command flags, in
// that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is everything twodo reads from configuration.
type Config struct {
	// File is the task file path; the positional CLI argument overrides it.
	File    string        `mapstructure:"file"`
	History HistoryConfig `mapstructure:"history"`
	Log     LogConfig     `mapstructure:"log"`
}

type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// File receives log output; empty means stderr for CLI commands and
	// no logging while the TUI owns the terminal.
	File string `mapstructure:"file"`
}

func defaults() map[string]any {
	return map[string]any{
		"file":            "TODO",
		"history.enabled": true,
		"log.level":       "info",
		"log.file":        "",
	}
}

// flagBindings maps config keys to the flag names that override them.
var flagBindings = map[string]string{
	"file":            "file",
	"history.enabled": "history",
	"log.level":       "log-level",
	"log.file":        "log-file",
}

// Load resolves the configuration. explicitPath pins the config file
// (errors when missing); otherwise twodo.yaml is searched in the current
// directory and the user config dir.
func Load(cmd *cobra.Command, explicitPath string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("twodo")
	v.SetConfigType("yaml")
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "twodo"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("twodo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		for key, name := range flagBindings {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}
