package config

import (
	"flag"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/sysmon/internal/errors"
)

// fileConfig mirrors AppConfig for YAML decoding. Pointer fields distinguish
// absent keys from explicit zero values.
type fileConfig struct {
	Interval *string `yaml:"interval"`
	Count    *int    `yaml:"count"`
	Log      *string `yaml:"log"`
	Path     *string `yaml:"path"`
	TUI      *bool   `yaml:"tui"`
	NoColor  *bool   `yaml:"no_color"`
}

// applyConfigFile loads the YAML file at path and applies its values to cfg
// for any flag not explicitly set on the command line. An unreadable or
// malformed file is a configuration error; sampling never starts on one.
func applyConfigFile(cfg *AppConfig, fs *flag.FlagSet, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewConfigError("reading config file %s: %v", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return apperrors.NewConfigError("parsing config file %s: %v", path, err)
	}

	if fc.Interval != nil && !isFlagSetAny(fs, "interval", "i") {
		parsed, err := time.ParseDuration(*fc.Interval)
		if err != nil {
			return apperrors.NewConfigError("config file interval %q: %v", *fc.Interval, err)
		}
		cfg.Interval = parsed
	}
	if fc.Count != nil && !isFlagSetAny(fs, "count", "c") {
		cfg.Count = *fc.Count
	}
	if fc.Log != nil && !isFlagSetAny(fs, "log", "l") {
		cfg.LogFile = *fc.Log
	}
	if fc.Path != nil && !isFlagSet(fs, "path") {
		cfg.DiskPath = *fc.Path
	}
	if fc.TUI != nil && !isFlagSet(fs, "tui") {
		cfg.TUI = *fc.TUI
	}
	if fc.NoColor != nil && !isFlagSet(fs, "no-color") {
		cfg.NoColor = *fc.NoColor
	}
	return nil
}
