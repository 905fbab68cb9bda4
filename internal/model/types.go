/*
PURPOSE:
  Defines the core data structures used throughout max-metric.
  These models represent decoded log records and the running best result.

REQUIREMENTS:
  User-specified:
  - Each record carries a numeric metric (default "psnr").
  - All other fields are passed through untouched in the report.

  Implementation-discovered:
  - Keep the original object text so the report preserves field order
    and number spelling.
  - Need an explicit "nothing found" state instead of a magic sentinel value.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Fields stay as json.RawMessage; nothing here interprets them.

USAGE:
  best := model.Best{}
  best.Offer(rec)

RELATED FILES:
  - internal/engine/scan.go
  - internal/output/report.go

MAINTENANCE:
  - Update when the report needs more scan statistics.
*/

package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is one decoded JSON object from a single input line.
// Fields holds every key of the object, metric included, undecoded;
// nothing in the scan looks inside them.
type Record struct {
	Line   int
	Metric float64
	Fields map[string]json.RawMessage
	Raw    json.RawMessage // Compacted original object
}

// Best is the running best-so-far state of a scan.
type Best struct {
	Found   bool
	Record  Record
	Lines   int // Lines read, valid or not
	Skipped int // Lines dropped under PolicySkip
}

// Offer replaces the current best if rec has a strictly greater metric.
// Ties keep the record seen first. Reports whether rec was taken.
func (b *Best) Offer(rec Record) bool {
	if b.Found && rec.Metric <= b.Record.Metric {
		return false
	}
	b.Found = true
	b.Record = rec
	return true
}

// Policy decides what happens to a line that is not a usable record.
type Policy string

const (
	PolicyFail Policy = "fail"
	PolicySkip Policy = "skip"
)

// ParsePolicy converts a config or flag value into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyFail, PolicySkip:
		return p, nil
	default:
		return "", fmt.Errorf("unknown error policy %q (want %q or %q)", s, PolicyFail, PolicySkip)
	}
}
