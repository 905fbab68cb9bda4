/*
PURPOSE:
  Writes the report as a single JSON object (one line).
  Optimized for machine parsing and piping into jq.

REQUIREMENTS:
  Implementation-discovered:
  - Same information as the text report plus scan statistics.
  - "found": false omits value/line/record rather than emitting zeros.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Consumes: internal/model.Best

ERROR HANDLING:
  - Returns encoder errors.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.

USAGE:
  err := output.NewJSONWriter(os.Stdout, "psnr").Write(best)
*/

package output

import (
	"encoding/json"
	"io"

	"github.com/daryltucker/max-metric/internal/model"
)

// JSONReport is the shape written by JSONWriter.
type JSONReport struct {
	Metric  string          `json:"metric"`
	Found   bool            `json:"found"`
	Value   *float64        `json:"value,omitempty"`
	Line    int             `json:"line,omitempty"`
	Record  json.RawMessage `json:"record,omitempty"`
	Lines   int             `json:"lines"`
	Skipped int             `json:"skipped"`
}

// JSONWriter handles writing the report as JSON.
type JSONWriter struct {
	encoder *json.Encoder
	metric  string
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(w io.Writer, metric string) *JSONWriter {
	return &JSONWriter{
		encoder: json.NewEncoder(w),
		metric:  metric,
	}
}

// Write writes the report as a JSON line.
func (jw *JSONWriter) Write(best model.Best) error {
	report := JSONReport{
		Metric:  jw.metric,
		Found:   best.Found,
		Lines:   best.Lines,
		Skipped: best.Skipped,
	}
	if best.Found {
		value := best.Record.Metric
		report.Value = &value
		report.Line = best.Record.Line
		report.Record = best.Record.Raw
	}
	return jw.encoder.Encode(report)
}
