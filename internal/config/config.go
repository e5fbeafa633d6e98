// Package config loads mcitemid settings from defaults, an optional config
// file, MCITEMID_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcitemid/pkg/items"
	"github.com/mcitemid/pkg/jar"
	"github.com/mcitemid/pkg/table"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, also used as the config file name.
	AppName = "mcitemid"
	// EnvPrefix prefixes environment overrides, e.g. MCITEMID_NAMESPACE.
	EnvPrefix = "MCITEMID"
	// OutputFileName is the default table file name.
	OutputFileName = "minecraft_items.txt"
)

// Settings holds the resolved configuration.
type Settings struct {
	Namespace   string   `mapstructure:"namespace"`
	Extensions  []string `mapstructure:"extensions"`
	Output      string   `mapstructure:"output"` // empty: next to the executable
	ColumnTitle string   `mapstructure:"column_title"`
	Verbose     bool     `mapstructure:"verbose"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Namespace:   items.DefaultNamespace,
		Extensions:  append([]string(nil), jar.DefaultExtensions...),
		ColumnTitle: table.DefaultTitle,
	}
}

// Load resolves settings through v. If cfgFile is set it must exist;
// otherwise mcitemid.{yaml,json,toml} is looked up in the user config
// directory and the working directory and may be absent.
func Load(v *viper.Viper, cfgFile string) (*Settings, error) {
	defaults := Defaults()
	v.SetDefault("namespace", defaults.Namespace)
	v.SetDefault("extensions", defaults.Extensions)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("column_title", defaults.ColumnTitle)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName(AppName)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if s.Namespace == "" {
		s.Namespace = defaults.Namespace
	}
	if len(s.Extensions) == 0 {
		s.Extensions = defaults.Extensions
	}
	if s.ColumnTitle == "" {
		s.ColumnTitle = defaults.ColumnTitle
	}

	return &s, nil
}

// OutputPath returns the table path: the configured output, or
// minecraft_items.txt next to the running executable.
func (s *Settings) OutputPath() (string, error) {
	if s.Output != "" {
		return filepath.Abs(s.Output)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), OutputFileName), nil
}
