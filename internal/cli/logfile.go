package cli

import (
	"encoding/csv"
	"os"

	apperrors "github.com/agbru/sysmon/internal/errors"
	"github.com/agbru/sysmon/internal/sampler"
)

// csvHeader is the fixed column header written once at log creation.
var csvHeader = []string{"Timestamp", "CPU Usage (%)", "Memory Usage (%)", "Disk Usage (%)"}

// CSVLog persists sample records to a CSV file. The destination is
// (re)created and truncated at construction, when the header row is written.
// Each append reopens the file in append mode, trading a little I/O overhead
// for resilience against the file being rotated or truncated externally.
type CSVLog struct {
	path string
}

// NewCSVLog creates (or truncates) the log file at path and writes the
// header row. A failure here is fatal startup: it surfaces as a StartupError
// before any sampling begins.
func NewCSVLog(path string) (*CSVLog, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, apperrors.StartupError{Resource: "log file", Cause: err}
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		file.Close()
		return nil, apperrors.StartupError{Resource: "log file", Cause: err}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return nil, apperrors.StartupError{Resource: "log file", Cause: err}
	}
	if err := file.Close(); err != nil {
		return nil, apperrors.StartupError{Resource: "log file", Cause: err}
	}
	return &CSVLog{path: path}, nil
}

// Path returns the log destination.
func (l *CSVLog) Path() string { return l.path }

// Append writes one record as a CSV row. The file handle is opened and
// closed per call; no handle is retained across cycles.
func (l *CSVLog) Append(rec sampler.Record) error {
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return apperrors.WrapError(err, "appending to log %s", l.path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(rec.CSVRow()); err != nil {
		return apperrors.WrapError(err, "appending to log %s", l.path)
	}
	writer.Flush()
	return apperrors.WrapError(writer.Error(), "appending to log %s", l.path)
}

// Emit implements sampler.Emitter.
func (l *CSVLog) Emit(rec sampler.Record) error { return l.Append(rec) }
