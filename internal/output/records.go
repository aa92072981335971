// Package output flattens classified coastline rings into the record
// layout expected by the polygon writers and serializes them.
package output

import (
	"fmt"
	"math"

	"github.com/beetlebugorg/coastline/internal/ring"
	"github.com/paulmach/orb"
)

// Records is the flat (rings, signed areas, marks) triple.
//
// Every run of entries that starts at an outer ring and continues through
// the holes after it is one polygon. The magnitude of an area is the
// unsigned shoelace area; the sign tags outer (+) and hole (-).
//
// Outer flags the rings that start a polygon. A ring passed through
// unrepaired can have zero area, so when Outer is nil the sign bit decides:
// +0 is an outer ring and -0 a hole.
type Records struct {
	Rings []orb.Ring
	Areas []float64
	Marks []string
	Outer []bool
}

// Block is the half-open range [Start, End) of one polygon in Records.
type Block struct {
	Start int
	End   int
}

// Len returns the number of rings in the block.
func (b Block) Len() int {
	return b.End - b.Start
}

// FromGroups flattens classifier groups, outer ring first, holes after it.
func FromGroups(groups []ring.Group) Records {
	var rec Records
	for _, g := range groups {
		rec.Rings = append(rec.Rings, g.Outer)
		rec.Areas = append(rec.Areas, g.Area)
		rec.Marks = append(rec.Marks, g.Tag.String())
		rec.Outer = append(rec.Outer, true)
		for k, h := range g.Holes {
			rec.Rings = append(rec.Rings, h)
			rec.Areas = append(rec.Areas, -g.HoleAreas[k])
			rec.Marks = append(rec.Marks, ring.TagLake.String())
			rec.Outer = append(rec.Outer, false)
		}
	}
	return rec
}

// Len returns the number of rings.
func (r Records) Len() int {
	return len(r.Rings)
}

// IsOuter reports whether record i starts a polygon.
func (r Records) IsOuter(i int) bool {
	if r.Outer != nil {
		return r.Outer[i]
	}
	return !math.Signbit(r.Areas[i])
}

// Groups splits the records into polygon blocks. A new block starts at
// every outer ring.
func (r Records) Groups() []Block {
	var blocks []Block
	for i := range r.Areas {
		if r.IsOuter(i) || len(blocks) == 0 {
			blocks = append(blocks, Block{Start: i, End: i + 1})
			continue
		}
		blocks[len(blocks)-1].End = i + 1
	}
	return blocks
}

// Parts returns the rings of block b.
func (r Records) Parts(b Block) []orb.Ring {
	return r.Rings[b.Start:b.End]
}

// Validate checks the structural invariants of the triple.
func (r Records) Validate() error {
	if len(r.Areas) != len(r.Rings) || len(r.Marks) != len(r.Rings) ||
		(r.Outer != nil && len(r.Outer) != len(r.Rings)) {
		return &ErrLengthMismatch{Rings: len(r.Rings), Areas: len(r.Areas), Marks: len(r.Marks), Flags: len(r.Outer)}
	}
	for i := range r.Areas {
		if i == 0 && !r.IsOuter(i) {
			return &ErrInvalidRecord{Index: i, Reason: "hole before any outer ring"}
		}
		if r.Marks[i] == "" {
			return &ErrInvalidRecord{Index: i, Reason: "empty mark"}
		}
	}
	return nil
}

// ErrLengthMismatch reports a triple whose lists differ in length.
type ErrLengthMismatch struct {
	Rings int
	Areas int
	Marks int
	Flags int // Length of Outer; 0 when unset
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("record lists differ in length: %d rings, %d areas, %d marks, %d outer flags",
		e.Rings, e.Areas, e.Marks, e.Flags)
}

// ErrInvalidRecord reports a record that breaks the grouping rules.
type ErrInvalidRecord struct {
	Index  int
	Reason string
}

func (e *ErrInvalidRecord) Error() string {
	return fmt.Sprintf("invalid record %d: %s", e.Index, e.Reason)
}
