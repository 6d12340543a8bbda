package sampler

import (
	"fmt"
	"strconv"
	"time"
)

// TimestampLayout is the wall-clock format used in console lines and CSV
// rows, at seconds granularity in local time.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one immutable sampling result: a timestamp plus the three
// derived usage percentages. It is the shared domain type between the
// sampling loop and the presentation layers.
type Record struct {
	// Timestamp is the wall-clock moment the cycle completed.
	Timestamp time.Time
	// CPUPercent is aggregate CPU utilization since the previous cycle.
	CPUPercent float64
	// MemoryPercent is the used-memory percentage.
	MemoryPercent float64
	// DiskPercent is the used-disk percentage for the sampled mount path.
	DiskPercent float64
}

// FormatLine renders the record in the one-line console format, each
// percentage at exactly one decimal place.
func (r Record) FormatLine() string {
	return fmt.Sprintf("%s - CPU: %.1f%%, Memory: %.1f%%, Disk: %.1f%%",
		r.Timestamp.Format(TimestampLayout), r.CPUPercent, r.MemoryPercent, r.DiskPercent)
}

// CSVRow returns the record's cells for the persisted log. Percentages carry
// full floating-point precision; only the console rounds to one decimal.
func (r Record) CSVRow() []string {
	return []string{
		r.Timestamp.Format(TimestampLayout),
		formatPercent(r.CPUPercent),
		formatPercent(r.MemoryPercent),
		formatPercent(r.DiskPercent),
	}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
