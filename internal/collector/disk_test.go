package collector

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shirou/gopsutil/v4/disk"
)

// stubDiskUsage replaces the package diskUsage var for the duration of a test.
func stubDiskUsage(t *testing.T, stat *disk.UsageStat, err error) {
	t.Helper()
	orig := diskUsage
	diskUsage = func(string) (*disk.UsageStat, error) {
		return stat, err
	}
	t.Cleanup(func() { diskUsage = orig })
}

func TestReadDiskUsage(t *testing.T) {
	t.Run("derives percent from capacity and free", func(t *testing.T) {
		stubDiskUsage(t, &disk.UsageStat{Total: 1000, Free: 250}, nil)

		got, err := ReadDiskUsage(DefaultDiskPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(got-75.0) > 1e-9 {
			t.Errorf("ReadDiskUsage() = %v, want 75.0", got)
		}
	})

	t.Run("inaccessible path yields zero and an error", func(t *testing.T) {
		cause := errors.New("permission denied")
		stubDiskUsage(t, nil, cause)

		got, err := ReadDiskUsage("/forbidden")
		if got != 0.0 {
			t.Errorf("ReadDiskUsage() = %v, want 0.0 on failure", got)
		}
		if !errors.Is(err, cause) {
			t.Errorf("error should wrap the underlying cause, got %v", err)
		}
	})

	t.Run("nil stat yields zero without error", func(t *testing.T) {
		stubDiskUsage(t, nil, nil)

		got, err := ReadDiskUsage(DefaultDiskPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0.0 {
			t.Errorf("ReadDiskUsage() = %v, want 0.0", got)
		}
	})
}

func TestDiskUsedPercent(t *testing.T) {
	tests := []struct {
		name     string
		capacity uint64
		free     uint64
		want     float64
	}{
		{"quarter free", 1000, 250, 75.0},
		{"all free", 1000, 1000, 0.0},
		{"none free", 1000, 0, 100.0},
		{"zero capacity is guarded", 0, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiskUsedPercent(tt.capacity, tt.free)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DiskUsedPercent(%d, %d) = %v, want %v", tt.capacity, tt.free, got, tt.want)
			}
		})
	}
}

// TestDiskUsedPercent_PropertyBased verifies that for capacity > 0 and
// 0 <= free <= capacity the derived percentage stays within [0, 100].
func TestDiskUsedPercent_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("disk used percent stays within [0, 100]", prop.ForAll(
		func(capacity, freeSeed uint64) bool {
			free := freeSeed % (capacity + 1)
			pct := DiskUsedPercent(capacity, free)
			return pct >= 0.0 && pct <= 100.0 && !math.IsNaN(pct)
		},
		gen.UInt64Range(1, math.MaxUint64/2),
		gen.UInt64Range(0, math.MaxUint64/2),
	))

	properties.TestingRun(t)
}
