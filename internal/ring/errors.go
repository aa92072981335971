package ring

import (
	"fmt"

	"github.com/paulmach/orb"
)

// ErrInvalidCoordinate indicates a coordinate outside geographic bounds
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be within ±90, lon finite)",
		e.Lat, e.Lon)
}

// ErrInvalidRing indicates a ring that is not a closed polygon boundary
type ErrInvalidRing struct {
	Index  int
	Reason string
}

func (e *ErrInvalidRing) Error() string {
	return fmt.Sprintf("invalid ring %d: %s", e.Index, e.Reason)
}

// DiagnosticKind classifies a soft anomaly found during extraction.
type DiagnosticKind int

const (
	// DiagnosticUnclosed marks a traced line whose end latitude differs
	// from its start latitude. The ring is kept as traced.
	DiagnosticUnclosed DiagnosticKind = iota + 1

	// DiagnosticInvalid marks a ring that fails Validate: too few points
	// or a coordinate outside geographic bounds. The ring is kept.
	DiagnosticInvalid
)

// String returns a short name for the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticUnclosed:
		return "unclosed"
	case DiagnosticInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Diagnostic reports a malformed ring that was passed through unchanged.
type Diagnostic struct {
	Index int // Position in Extraction.Rings
	Kind  DiagnosticKind
	Start orb.Point
	End   orb.Point
	Err   error // Validate error for DiagnosticInvalid
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("ring %d %s: start (%7.2f,%7.2f) end (%7.2f,%7.2f)",
		d.Index, d.Kind, d.Start[0], d.Start[1], d.End[0], d.End[1])
	if d.Err != nil {
		s += ": " + d.Err.Error()
	}
	return s
}
