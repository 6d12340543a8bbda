// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/sysmon/internal/sampler"
	"github.com/agbru/sysmon/internal/ui"
)

// FormatSampleLine renders one record as the per-cycle console line,
// colorized according to the active theme. With colors disabled the result
// is byte-identical to [sampler.Record.FormatLine].
func FormatSampleLine(rec sampler.Record) string {
	dim, reset := ui.ColorDim(), ui.ColorReset()
	return fmt.Sprintf("%s%s%s - CPU: %s, Memory: %s, Disk: %s",
		dim, rec.Timestamp.Format(sampler.TimestampLayout), reset,
		formatPercentValue(rec.CPUPercent),
		formatPercentValue(rec.MemoryPercent),
		formatPercentValue(rec.DiskPercent))
}

// formatPercentValue renders a percentage at one decimal place, colored by
// severity: green below 70%, yellow below 90%, red at or above.
func formatPercentValue(pct float64) string {
	var color string
	switch {
	case pct < 70.0:
		color = ui.ColorSuccess()
	case pct < 90.0:
		color = ui.ColorWarning()
	default:
		color = ui.ColorError()
	}
	return fmt.Sprintf("%s%.1f%%%s", color, pct, ui.ColorReset())
}

// DisplaySample writes one formatted sample line to out.
func DisplaySample(rec sampler.Record, out io.Writer) error {
	_, err := fmt.Fprintln(out, FormatSampleLine(rec))
	return err
}

// NewConsoleEmitter returns a sampler emitter that displays each record as a
// colorized console line on out.
func NewConsoleEmitter(out io.Writer) sampler.Emitter {
	return sampler.EmitterFunc(func(rec sampler.Record) error {
		return DisplaySample(rec, out)
	})
}
