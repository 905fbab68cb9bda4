/*
PURPOSE:
  Writes the report as CSV for spreadsheets.

REQUIREMENTS:
  Implementation-discovered:
  - Header row is always written so empty results still parse.
  - The record stays one JSON-encoded column; fields are opaque.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Consumes: internal/model.Best

ERROR HANDLING:
  - Returns error on write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() before returning.

USAGE:
  err := output.NewCSVWriter(os.Stdout, "psnr").Write(best)

MAINTENANCE:
  - Update header and row together.
*/

package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/daryltucker/max-metric/internal/model"
)

// CSVHeader is the first row of every CSV report.
var CSVHeader = []string{"line", "metric", "value", "record"}

// CSVWriter handles writing the report as CSV.
type CSVWriter struct {
	writer *csv.Writer
	metric string
}

// NewCSVWriter creates a new CSVWriter.
func NewCSVWriter(w io.Writer, metric string) *CSVWriter {
	return &CSVWriter{
		writer: csv.NewWriter(w),
		metric: metric,
	}
}

// Write writes the header and, if a record was found, one data row.
func (cw *CSVWriter) Write(best model.Best) error {
	if err := cw.writer.Write(CSVHeader); err != nil {
		return err
	}

	if best.Found {
		row := []string{
			strconv.Itoa(best.Record.Line),
			cw.metric,
			strconv.FormatFloat(best.Record.Metric, 'g', -1, 64),
			string(best.Record.Raw),
		}
		if err := cw.writer.Write(row); err != nil {
			return err
		}
	}

	cw.writer.Flush()
	return cw.writer.Error()
}
