// Package sampler owns the metric-collection cycle: the stateful CPU-delta
// calculator, the per-cycle derivation of memory and disk percentages, and
// the fixed-interval loop driver. The only cross-call state is the previous
// CPU snapshot, held by a single Sampler instance and touched once per cycle.
package sampler

import (
	"context"
	"io"
	"time"

	"github.com/agbru/sysmon/internal/collector"
	"github.com/agbru/sysmon/internal/logging"
)

// Emitter consumes each record as it is produced. Implementations include
// the console writer and the CSV log appender.
type Emitter interface {
	// Emit processes one record. Errors are reported to the diagnostic
	// logger by the loop; they never abort sampling.
	Emit(Record) error
}

// EmitterFunc is a function adapter that implements Emitter.
type EmitterFunc func(Record) error

// Emit calls the underlying function.
func (f EmitterFunc) Emit(r Record) error { return f(r) }

// Sampler computes derived usage percentages each cycle and drives the
// sampling loop. It is strictly single-threaded: the CPU baseline is read
// for the delta computation and then overwritten, once per cycle.
type Sampler struct {
	readCPU  func() (collector.CPUSnapshot, error)
	readMem  func() (collector.MemorySnapshot, error)
	readDisk func(path string) (float64, error)
	clock    Clock
	log      logging.Logger
	diskPath string

	// prev is the CPU baseline; nil means no snapshot has been taken yet.
	prev *collector.CPUSnapshot
}

// Option configures a Sampler during construction.
type Option func(*Sampler)

// WithClock sets a custom clock, primarily for tests.
func WithClock(c Clock) Option {
	return func(s *Sampler) { s.clock = c }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Sampler) { s.log = l }
}

// WithDiskPath sets the mount path sampled for disk usage.
func WithDiskPath(path string) Option {
	return func(s *Sampler) { s.diskPath = path }
}

// WithCPUReader overrides the CPU counter reader, primarily for tests.
func WithCPUReader(read func() (collector.CPUSnapshot, error)) Option {
	return func(s *Sampler) { s.readCPU = read }
}

// WithMemoryReader overrides the memory counter reader, primarily for tests.
func WithMemoryReader(read func() (collector.MemorySnapshot, error)) Option {
	return func(s *Sampler) { s.readMem = read }
}

// WithDiskReader overrides the disk usage reader, primarily for tests.
func WithDiskReader(read func(string) (float64, error)) Option {
	return func(s *Sampler) { s.readDisk = read }
}

// New creates a Sampler with no CPU baseline. By default it reads the real
// host counters, uses the system clock, and discards diagnostics.
func New(opts ...Option) *Sampler {
	s := &Sampler{
		readCPU:  collector.ReadCPUSnapshot,
		readMem:  collector.ReadMemorySnapshot,
		readDisk: collector.ReadDiskUsage,
		clock:    SystemClock{},
		log:      logging.NopLogger{},
		diskPath: collector.DefaultDiskPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CPUUsage computes aggregate CPU utilization as the ratio of active to
// total ticks accumulated since the previous call. The counters report
// monotonically accumulating totals since boot, so a single snapshot cannot
// express utilization; it is only meaningful between two points in time.
//
// The first call primes the baseline and reports 0.0. Later calls report
// 100 × activeDelta/totalDelta when totalDelta > 0, else 0.0 (a stalled or
// reset counter must not produce NaN or a negative figure). The new snapshot
// becomes the baseline regardless of which branch was taken.
func (s *Sampler) CPUUsage() float64 {
	current, err := s.readCPU()
	if err != nil {
		// Best-effort: an unreadable counter source degrades to an all-zero
		// snapshot for this cycle only.
		s.log.Debug("cpu counters unavailable", logging.Err(err))
		current = collector.CPUSnapshot{}
	}

	usage := 0.0
	if s.prev != nil {
		totalDelta := int64(current.Total()) - int64(s.prev.Total())
		activeDelta := int64(current.Active()) - int64(s.prev.Active())
		if totalDelta > 0 {
			usage = 100.0 * float64(activeDelta) / float64(totalDelta)
		}
	}
	s.prev = &current
	return usage
}

// Cycle performs one full sample-compute pass and returns the resulting
// record: CPU usage against the stored baseline, a fresh memory snapshot,
// disk usage for the configured path, and a timestamp. Read failures are
// absorbed as zero values for this cycle; the disk failure is additionally
// reported on the diagnostic channel.
func (s *Sampler) Cycle() Record {
	cpuPct := s.CPUUsage()

	memSnap, err := s.readMem()
	if err != nil {
		s.log.Debug("memory counters unavailable", logging.Err(err))
		memSnap = collector.MemorySnapshot{}
	}

	diskPct, err := s.readDisk(s.diskPath)
	if err != nil {
		s.log.Error("disk space query failed", err, logging.String("path", s.diskPath))
		diskPct = 0.0
	}

	return Record{
		Timestamp:     s.clock.Now(),
		CPUPercent:    cpuPct,
		MemoryPercent: memSnap.UsedPercent(),
		DiskPercent:   diskPct,
	}
}

// Run drives the fixed-interval sampling loop. count <= 0 means run until
// ctx is canceled; otherwise exactly count cycles are produced. Each record
// is passed to every emitter in order. The loop suspends for interval
// between cycles but never after the final one, and returns the context
// error when canceled mid-run.
func (s *Sampler) Run(ctx context.Context, interval time.Duration, count int, emitters ...Emitter) error {
	for taken := 0; ; {
		if err := ctx.Err(); err != nil {
			return err
		}

		record := s.Cycle()
		for _, e := range emitters {
			if err := e.Emit(record); err != nil {
				s.log.Error("emitting record failed", err)
			}
		}

		taken++
		if count > 0 && taken >= count {
			return nil
		}
		s.clock.Sleep(ctx, interval)
	}
}

// ConsoleEmitter returns an Emitter writing one formatted line per record
// to w, using the render function when provided (e.g., for colorization)
// and the plain single-line format otherwise.
func ConsoleEmitter(w io.Writer, render func(Record) string) Emitter {
	if render == nil {
		render = Record.FormatLine
	}
	return EmitterFunc(func(r Record) error {
		_, err := io.WriteString(w, render(r)+"\n")
		return err
	})
}
