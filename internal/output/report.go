/*
PURPOSE:
  Renders the human-readable report: a header line naming the metric,
  then the winning record.

REQUIREMENTS:
  User-specified:
  - Header "Parameters for maximum PSNR:" followed by the record.
  - Empty input prints a distinct "no record found" line.

  Implementation-discovered:
  - Record is printed from its original text (compacted) so field
    order and numbers look the way they did in the log.
  - Header color is optional; tests always render without it.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Consumes: internal/model.Best

ERROR HANDLING:
  - Returns the first write error.

USAGE:
  err := output.NewTextWriter(os.Stdout, "psnr", true).Write(best)

RELATED FILES:
  - internal/output/json.go
  - internal/output/csv.go
*/

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/daryltucker/max-metric/internal/model"
	"github.com/fatih/color"
)

// NoRecordFound is printed in place of a record when the scan found nothing.
const NoRecordFound = "No record found."

// Writer renders a finished scan.
type Writer interface {
	Write(best model.Best) error
}

// TextWriter writes the two-line human report.
type TextWriter struct {
	w      io.Writer
	metric string
	header *color.Color
}

// NewTextWriter creates a TextWriter. useColor enables a bold header.
func NewTextWriter(w io.Writer, metric string, useColor bool) *TextWriter {
	header := color.New(color.Bold, color.FgCyan)
	if useColor {
		header.EnableColor()
	} else {
		header.DisableColor()
	}
	return &TextWriter{w: w, metric: metric, header: header}
}

// Header returns the uncolored header line.
func Header(metric string) string {
	return fmt.Sprintf("Parameters for maximum %s:", strings.ToUpper(metric))
}

// Write prints the header and the winning record.
func (tw *TextWriter) Write(best model.Best) error {
	if _, err := fmt.Fprintln(tw.w, tw.header.Sprint(Header(tw.metric))); err != nil {
		return err
	}

	if !best.Found {
		_, err := fmt.Fprintln(tw.w, NoRecordFound)
		return err
	}
	_, err := fmt.Fprintln(tw.w, string(best.Record.Raw))
	return err
}
