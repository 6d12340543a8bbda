package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/sysmon/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("sysmon", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Interval != time.Second {
		t.Errorf("Interval = %v, want 1s", cfg.Interval)
	}
	if cfg.Count != 0 {
		t.Errorf("Count = %d, want 0 (unbounded)", cfg.Count)
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
	if cfg.DiskPath != "/" {
		t.Errorf("DiskPath = %q, want /", cfg.DiskPath)
	}
	if cfg.TUI {
		t.Error("TUI should default to false")
	}
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{"--interval", "5s", "-c", "10", "--log", "out.csv", "--path", "/var", "--no-color"}
	cfg, err := ParseConfig("sysmon", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Interval != 5*time.Second {
		t.Errorf("Interval = %v, want 5s", cfg.Interval)
	}
	if cfg.Count != 10 {
		t.Errorf("Count = %d, want 10", cfg.Count)
	}
	if cfg.LogFile != "out.csv" {
		t.Errorf("LogFile = %q, want out.csv", cfg.LogFile)
	}
	if cfg.DiskPath != "/var" {
		t.Errorf("DiskPath = %q, want /var", cfg.DiskPath)
	}
	if !cfg.NoColor {
		t.Error("NoColor should be set")
	}
}

func TestParseConfig_HelpReturnsErrHelp(t *testing.T) {
	var buf strings.Builder
	_, err := ParseConfig("sysmon", []string{"--help"}, &buf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(buf.String(), "Usage: sysmon") {
		t.Errorf("help output missing usage line, got: %s", buf.String())
	}
}

func TestParseConfig_InvalidIntervalRejected(t *testing.T) {
	_, err := ParseConfig("sysmon", []string{"--interval", "-2s"}, io.Discard)
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigError", err)
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"INTERVAL", "3s")
	t.Setenv(EnvPrefix+"COUNT", "7")
	t.Setenv(EnvPrefix+"LOG", "env.csv")

	cfg, err := ParseConfig("sysmon", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Interval != 3*time.Second {
		t.Errorf("Interval = %v, want 3s from env", cfg.Interval)
	}
	if cfg.Count != 7 {
		t.Errorf("Count = %d, want 7 from env", cfg.Count)
	}
	if cfg.LogFile != "env.csv" {
		t.Errorf("LogFile = %q, want env.csv from env", cfg.LogFile)
	}
}

func TestParseConfig_FlagsBeatEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"INTERVAL", "3s")

	cfg, err := ParseConfig("sysmon", []string{"-i", "9s"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Interval != 9*time.Second {
		t.Errorf("Interval = %v, explicit flag must beat env", cfg.Interval)
	}
}

func TestParseConfig_MalformedEnvIgnored(t *testing.T) {
	t.Setenv(EnvPrefix+"INTERVAL", "not-a-duration")

	cfg, err := ParseConfig("sysmon", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Interval != DefaultInterval {
		t.Errorf("Interval = %v, want default when env is malformed", cfg.Interval)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sysmon.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseConfig_ConfigFile(t *testing.T) {
	path := writeConfigFile(t, "interval: 2s\ncount: 4\nlog: file.csv\npath: /home\ntui: true\n")

	cfg, err := ParseConfig("sysmon", []string{"--config", path}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Interval != 2*time.Second || cfg.Count != 4 || cfg.LogFile != "file.csv" || cfg.DiskPath != "/home" || !cfg.TUI {
		t.Errorf("config file values not applied: %+v", cfg)
	}
}

func TestParseConfig_FlagsAndEnvBeatConfigFile(t *testing.T) {
	path := writeConfigFile(t, "interval: 2s\ncount: 4\n")
	t.Setenv(EnvPrefix+"COUNT", "8")

	cfg, err := ParseConfig("sysmon", []string{"--config", path, "--interval", "5s"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Interval != 5*time.Second {
		t.Errorf("Interval = %v, explicit flag must beat config file", cfg.Interval)
	}
	if cfg.Count != 8 {
		t.Errorf("Count = %d, env must beat config file", cfg.Count)
	}
}

func TestParseConfig_MissingConfigFileIsConfigError(t *testing.T) {
	_, err := ParseConfig("sysmon", []string{"--config", "/nonexistent.yaml"}, io.Discard)
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigError", err)
	}
}

func TestParseConfig_MalformedConfigFileIsConfigError(t *testing.T) {
	path := writeConfigFile(t, "interval: [broken\n")

	_, err := ParseConfig("sysmon", []string{"--config", path}, io.Discard)
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigError", err)
	}
}

func TestParseConfig_NegativeCountMeansUnbounded(t *testing.T) {
	cfg, err := ParseConfig("sysmon", []string{"-c", "-1"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Count >= 1 {
		t.Errorf("Count = %d, negative should pass through as unbounded", cfg.Count)
	}
}
