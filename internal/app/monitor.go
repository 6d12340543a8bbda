package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/agbru/sysmon/internal/cli"
	apperrors "github.com/agbru/sysmon/internal/errors"
	"github.com/agbru/sysmon/internal/logging"
	"github.com/agbru/sysmon/internal/sampler"
)

// prepareSampling builds the sampler and the optional CSV sink. A log file
// that cannot be created or truncated aborts the run before any cycle starts.
func (a *Application) prepareSampling() (*sampler.Sampler, sampler.Emitter, int) {
	s := a.Sampler
	if s == nil {
		s = sampler.New(
			sampler.WithDiskPath(a.Config.DiskPath),
			sampler.WithLogger(logging.NewLogger(os.Stderr, "sampler")),
		)
	}

	var sink sampler.Emitter
	if a.Config.LogFile != "" {
		log, err := cli.NewCSVLog(a.Config.LogFile)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return nil, nil, apperrors.ExitErrorStartup
		}
		sink = log
	}

	return s, sink, apperrors.ExitSuccess
}

// runMonitor drives the plain console sampling loop: one line per cycle to
// out, plus the CSV log when configured.
func (a *Application) runMonitor(ctx context.Context, out io.Writer) int {
	s, sink, code := a.prepareSampling()
	if code != apperrors.ExitSuccess {
		return code
	}

	emitters := []sampler.Emitter{cli.NewConsoleEmitter(out)}
	if sink != nil {
		emitters = append(emitters, sink)
	}

	err := s.Run(ctx, a.Config.Interval, a.Config.Count, emitters...)
	if apperrors.IsContextError(err) {
		return apperrors.ExitErrorCanceled
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
