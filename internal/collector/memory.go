package collector

import (
	"strconv"
	"strings"

	apperrors "github.com/agbru/sysmon/internal/errors"
)

const procMeminfoPath = "/proc/meminfo"

// MemorySnapshot holds the recognized /proc/meminfo fields, in kilobytes.
type MemorySnapshot struct {
	Total     uint64
	Free      uint64
	Available uint64
	Buffers   uint64
	Cached    uint64
}

// UsedPercent derives the used-memory percentage from the available/total
// ratio. A zero total yields 0.0 rather than a division by zero.
func (s MemorySnapshot) UsedPercent() float64 {
	if s.Total == 0 {
		return 0.0
	}
	return 100.0 * (1.0 - float64(s.Available)/float64(s.Total))
}

// ReadMemorySnapshot parses /proc/meminfo, matching the small fixed set of
// recognized field labels. Unrecognized lines are ignored and missing fields
// stay zero, so a truncated meminfo still produces a usable snapshot.
func ReadMemorySnapshot() (MemorySnapshot, error) {
	return readMemorySnapshot(procMeminfoPath)
}

func readMemorySnapshot(path string) (MemorySnapshot, error) {
	data, err := readFile(path)
	if err != nil {
		return MemorySnapshot{}, apperrors.NewCollectError(path, err)
	}

	var snap MemorySnapshot
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			snap.Total = value
		case "MemFree:":
			snap.Free = value
		case "MemAvailable:":
			snap.Available = value
		case "Buffers:":
			snap.Buffers = value
		case "Cached:":
			snap.Cached = value
		}
	}
	return snap, nil
}
