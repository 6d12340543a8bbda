// Package config holds the application configuration and its resolution
// chain. Values are resolved with the following priority (highest first):
//
//  1. CLI flags (--interval, --count, --log, ...)
//  2. Environment variables (SYSMON_INTERVAL, ...)
//  3. YAML configuration file (--config)
//  4. Static defaults
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/sysmon/internal/errors"
)

// Defaults for the sampling loop.
const (
	// DefaultInterval is the suspension between sampling cycles.
	DefaultInterval = 1 * time.Second
	// DefaultDiskPath is the mount point sampled for disk usage.
	DefaultDiskPath = "/"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	// Interval is the suspension between sampling cycles.
	Interval time.Duration
	// Count is the number of cycles to run; 0 or less means run until
	// externally interrupted.
	Count int
	// LogFile is the CSV log destination; empty disables durable logging.
	LogFile string
	// DiskPath is the mount point sampled for disk usage.
	DiskPath string
	// TUI selects the live full-screen dashboard instead of line output.
	TUI bool
	// NoColor disables colored console output.
	NoColor bool
	// ConfigFile is an optional YAML configuration file path.
	ConfigFile string
}

// DefaultConfig returns the static defaults.
func DefaultConfig() AppConfig {
	return AppConfig{
		Interval: DefaultInterval,
		DiskPath: DefaultDiskPath,
	}
}

// ParseConfig parses command-line arguments into an AppConfig, then applies
// the configuration file and environment overrides for any flag not
// explicitly set. Returns flag.ErrHelp when -h/--help was requested.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() { printUsage(errWriter, programName) }

	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "sampling interval between cycles")
	fs.DurationVar(&cfg.Interval, "i", cfg.Interval, "sampling interval (shorthand)")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of cycles to run (0 = until interrupted)")
	fs.IntVar(&cfg.Count, "c", cfg.Count, "number of cycles (shorthand)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "CSV log destination (empty = no logging)")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "CSV log destination (shorthand)")
	fs.StringVar(&cfg.DiskPath, "path", cfg.DiskPath, "mount point sampled for disk usage")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "run the live dashboard instead of line output")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML configuration file")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.ConfigFile != "" {
		if err := applyConfigFile(&cfg, fs, cfg.ConfigFile); err != nil {
			return cfg, err
		}
	}
	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate rejects values the sampling loop cannot work with.
func validate(cfg AppConfig) error {
	if cfg.Interval <= 0 {
		return apperrors.NewConfigError("interval must be positive, got %s", cfg.Interval)
	}
	if cfg.DiskPath == "" {
		return apperrors.NewConfigError("disk path must not be empty")
	}
	return nil
}

// printUsage writes the full help text.
func printUsage(w io.Writer, programName string) {
	fmt.Fprintf(w, `Usage: %s [OPTIONS]

Periodically samples host CPU, memory, and disk usage and prints one line
per cycle. Sampling runs until interrupted unless --count is given.

Options:
  -i, --interval DUR   sampling interval between cycles (default 1s)
  -c, --count N        number of cycles to run (default: until interrupted)
  -l, --log FILE       log samples to a CSV file
      --path DIR       mount point sampled for disk usage (default "/")
      --tui            live full-screen dashboard instead of line output
      --no-color       disable colored output
      --config FILE    YAML configuration file
      --version        print version information and exit
  -h, --help           show this help message

Environment variables (overridden by explicit flags):
  SYSMON_INTERVAL, SYSMON_COUNT, SYSMON_LOG, SYSMON_PATH, SYSMON_TUI,
  SYSMON_NO_COLOR
`, programName)
}
