package collector

import (
	"github.com/shirou/gopsutil/v4/disk"

	apperrors "github.com/agbru/sysmon/internal/errors"
)

// DefaultDiskPath is the mount point sampled when none is configured.
const DefaultDiskPath = "/"

// diskUsage allows tests to stub the filesystem space query.
var diskUsage = disk.Usage

// ReadDiskUsage returns the used-space percentage for the filesystem mounted
// at path. On any access failure it returns 0.0 and a CollectError for the
// caller to report on its diagnostic channel; usage computation must never
// abort the sampling loop.
func ReadDiskUsage(path string) (float64, error) {
	stat, err := diskUsage(path)
	if err != nil {
		return 0.0, apperrors.NewCollectError(path, err)
	}
	if stat == nil {
		return 0.0, nil
	}
	return DiskUsedPercent(stat.Total, stat.Free), nil
}

// DiskUsedPercent derives the used percentage from capacity and free byte
// counts. A zero capacity yields 0.0 rather than a division by zero.
func DiskUsedPercent(capacity, free uint64) float64 {
	if capacity == 0 {
		return 0.0
	}
	return 100.0 * (1.0 - float64(free)/float64(capacity))
}
