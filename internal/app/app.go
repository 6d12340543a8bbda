// Package app wires configuration, sampling, and output together and maps
// run outcomes to process exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/sysmon/internal/config"
	apperrors "github.com/agbru/sysmon/internal/errors"
	"github.com/agbru/sysmon/internal/sampler"
	"github.com/agbru/sysmon/internal/tui"
	"github.com/agbru/sysmon/internal/ui"
)

// Application represents the sysmon application instance.
type Application struct {
	Config    config.AppConfig
	Sampler   *sampler.Sampler
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSampler sets a custom sampler for the application.
func WithSampler(s *sampler.Sampler) AppOption {
	return func(a *Application) { a.Sampler = s }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "sysmon"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.TUI {
		return a.runTUI(ctx, out)
	}

	return a.runMonitor(ctx, out)
}

// runTUI launches the live full-screen dashboard.
func (a *Application) runTUI(ctx context.Context, _ io.Writer) int {
	s, sink, code := a.prepareSampling()
	if code != apperrors.ExitSuccess {
		return code
	}
	return tui.Run(ctx, s, sink, a.Config)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
