/*
PURPOSE:
  High-level runner that wires config, scan and report together.

REQUIREMENTS:
  User-specified:
  - Read the input once, print the best record.

  Implementation-discovered:
  - Report format is chosen from config (text/json/csv).

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine/scan.go, internal/output

ERROR HANDLING:
  - Invalid config, unreadable input and (under PolicyFail) bad lines
    are returned to the caller. Nothing is printed on failure.

USAGE:
  engine.Run(cfg, os.Stdout, logger)

RELATED FILES:
  - internal/engine/scan.go
*/

package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/daryltucker/max-metric/internal/config"
	"github.com/daryltucker/max-metric/internal/output"
)

// Run scans cfg.Input and writes the report to w.
// Logs go to log; nil means output.Logger.
func Run(cfg *config.Config, w io.Writer, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	policy, err := cfg.Policy()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if log == nil {
		log = output.Logger
	}

	log.Debug("Scanning input", "path", cfg.Input, "metric", cfg.Metric, "on_error", policy)

	best, err := ScanFile(cfg.Input, Options{Metric: cfg.Metric, Policy: policy, Logger: log})
	if err != nil {
		return err
	}

	log.Debug("Scan complete",
		"lines", best.Lines,
		"skipped", best.Skipped,
		"found", best.Found,
	)

	if err := NewWriter(cfg, w).Write(best); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// NewWriter picks the report writer for cfg.Format.
func NewWriter(cfg *config.Config, w io.Writer) output.Writer {
	switch cfg.Format {
	case config.FormatJSON:
		return output.NewJSONWriter(w, cfg.Metric)
	case config.FormatCSV:
		return output.NewCSVWriter(w, cfg.Metric)
	default:
		return output.NewTextWriter(w, cfg.Metric, cfg.Color)
	}
}
