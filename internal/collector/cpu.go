// Package collector reads point-in-time resource counters from the host:
// aggregate CPU ticks from /proc/stat, memory totals from /proc/meminfo, and
// filesystem capacity for a mount path. Readers are stateless; they return an
// error instead of panicking so callers can apply the best-effort zero-value
// fallback explicitly.
package collector

import (
	"errors"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/sysmon/internal/errors"
)

const procStatPath = "/proc/stat"

// readFile allows tests to stub reading counter sources.
var readFile = os.ReadFile

// errNoAggregateLine reports a /proc/stat without the aggregate "cpu" line.
var errNoAggregateLine = errors.New("no aggregate cpu line")

// CPUSnapshot holds the aggregate CPU tick counters from a single read of
// /proc/stat. Counters accumulate since boot and are monotonically
// non-decreasing on a running system; a decrease indicates a counter reset.
type CPUSnapshot struct {
	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	IOWait  uint64
	IRQ     uint64
	SoftIRQ uint64
	Steal   uint64
}

// Total returns the sum of all eight tick buckets.
func (s CPUSnapshot) Total() uint64 {
	return s.User + s.Nice + s.System + s.Idle + s.IOWait + s.IRQ + s.SoftIRQ + s.Steal
}

// Active returns the ticks spent doing work: everything except idle and iowait.
func (s CPUSnapshot) Active() uint64 {
	return s.Total() - s.Idle - s.IOWait
}

// ReadCPUSnapshot parses the first aggregate "cpu" line of /proc/stat and
// returns its eight tick counters. It never panics; unreadable or malformed
// input yields a zero snapshot and a CollectError.
func ReadCPUSnapshot() (CPUSnapshot, error) {
	return readCPUSnapshot(procStatPath)
}

func readCPUSnapshot(path string) (CPUSnapshot, error) {
	data, err := readFile(path)
	if err != nil {
		return CPUSnapshot{}, apperrors.NewCollectError(path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		// The aggregate line is labeled exactly "cpu"; per-core lines are
		// "cpu0", "cpu1", etc. Kernels may append guest fields beyond the
		// eight we track, so only a lower bound is enforced.
		if len(fields) < 9 || fields[0] != "cpu" {
			continue
		}

		var ticks [8]uint64
		for i := range ticks {
			v, err := strconv.ParseUint(fields[i+1], 10, 64)
			if err != nil {
				return CPUSnapshot{}, apperrors.NewCollectError(path, err)
			}
			ticks[i] = v
		}
		return CPUSnapshot{
			User:    ticks[0],
			Nice:    ticks[1],
			System:  ticks[2],
			Idle:    ticks[3],
			IOWait:  ticks[4],
			IRQ:     ticks[5],
			SoftIRQ: ticks[6],
			Steal:   ticks[7],
		}, nil
	}

	return CPUSnapshot{}, apperrors.NewCollectError(path, errNoAggregateLine)
}
