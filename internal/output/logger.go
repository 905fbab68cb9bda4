/*
PURPOSE:
  Provides a structured logger for max-metric.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - The report on stdout must stay exactly two lines.

  Implementation-discovered:
  - Logs go to stderr so they never mix with the report.
  - Needs Debug for --verbose, Warn for skipped lines.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  log := output.NewLogger(os.Stderr, slog.LevelDebug)
  log.Warn("message", "key", "value")

  Logger is the fallback for callers that pass no logger.

RELATED FILES:
  - internal/cli/root.go (sets the level)
*/

package output

import (
	"io"
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	Logger = NewLogger(os.Stderr, slog.LevelInfo)
}

// NewLogger builds a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
