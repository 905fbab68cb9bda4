/*
PURPOSE:
  The max-metric core: one linear pass over a JSON Lines source,
  keeping the record with the greatest metric value.

REQUIREMENTS:
  User-specified:
  - Report the record with the maximum "psnr".
  - Ties keep the first record seen.
  - Empty input is a "no record found" outcome, not a failure.

  Implementation-discovered:
  - Lines can be large (long config blobs); scanner buffer is raised.
  - Numeric strings ("42") and booleans are not numbers.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Uses: internal/model, internal/output (Logger, unless Options.Logger is set)

ERROR HANDLING:
  - PolicyFail: first bad line aborts with "line N: <reason>".
  - PolicySkip: bad line is logged, counted and ignored.
  - Reader errors are always fatal.
  - Sentinels (ErrMalformedLine, ErrMissingMetric, ErrNonNumericMetric)
    are wrapped so callers can use errors.Is.

IMPLEMENTATION RULES:
  - No global state; the accumulator is local and returned.
  - Hold only the current line and the current best.

USAGE:
  best, err := engine.Scan(r, engine.Options{Metric: "psnr"})

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update decodeRecord if the record shape gains required fields.
*/

package engine

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/daryltucker/max-metric/internal/model"
	"github.com/daryltucker/max-metric/internal/output"
)

var (
	ErrMalformedLine    = errors.New("malformed line")
	ErrMissingMetric    = errors.New("missing metric field")
	ErrNonNumericMetric = errors.New("non-numeric metric field")
)

// maxLineSize is the maximum size for a single input line (4MB).
const maxLineSize = 4 * 1024 * 1024

// Options controls a scan.
type Options struct {
	Metric string       // Key of the ranking field
	Policy model.Policy // Zero value behaves as PolicyFail
	Logger *slog.Logger // Nil falls back to output.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return output.Logger
}

// Scan reads r line by line and returns the best record found.
func Scan(r io.Reader, opts Options) (model.Best, error) {
	var best model.Best
	log := opts.logger()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		best.Lines++
		lineNum := best.Lines

		rec, err := decodeRecord(scanner.Bytes(), opts.Metric)
		if err != nil {
			if opts.Policy != model.PolicySkip {
				return best, fmt.Errorf("line %d: %w", lineNum, err)
			}
			best.Skipped++
			log.Warn("Skipping line", "line", lineNum, "reason", err)
			continue
		}
		rec.Line = lineNum

		if best.Offer(rec) {
			log.Debug("New maximum", "line", lineNum, "metric", opts.Metric, "value", rec.Metric)
		}
	}

	if err := scanner.Err(); err != nil {
		return best, fmt.Errorf("line %d: failed to read input: %w", best.Lines+1, err)
	}

	return best, nil
}

// ScanFile opens path and scans it.
func ScanFile(path string, opts Options) (model.Best, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Best{}, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	best, err := Scan(f, opts)
	if err != nil {
		return best, fmt.Errorf("%s: %w", path, err)
	}
	return best, nil
}

func decodeRecord(line []byte, metric string) (model.Record, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return model.Record{}, fmt.Errorf("%w: empty line", ErrMalformedLine)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return model.Record{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	// "null" decodes without error into a nil map.
	if fields == nil {
		return model.Record{}, fmt.Errorf("%w: not a JSON object", ErrMalformedLine)
	}

	raw, ok := fields[metric]
	if !ok {
		return model.Record{}, fmt.Errorf("%w: %q", ErrMissingMetric, metric)
	}
	value, err := parseMetric(raw)
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: %q is %s", ErrNonNumericMetric, metric, raw)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, line); err != nil {
		return model.Record{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	return model.Record{
		Metric: value,
		Fields: fields,
		Raw:    compact.Bytes(),
	}, nil
}

// parseMetric accepts JSON numbers only. A plain Unmarshal into json.Number
// would also take quoted numeric strings.
func parseMetric(raw json.RawMessage) (float64, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("not a number: %T", v)
	}
	return n.Float64()
}
