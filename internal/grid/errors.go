package grid

import (
	"fmt"
)

// ErrDegenerateGrid indicates a grid that cannot be contoured, such as a
// single longitude column (zero resolution)
type ErrDegenerateGrid struct {
	Reason string
}

func (e *ErrDegenerateGrid) Error() string {
	return fmt.Sprintf("degenerate grid: %s", e.Reason)
}

// ErrShapeMismatch indicates the mask does not match (len(lat), len(lon))
type ErrShapeMismatch struct {
	Row                int // Offending row, -1 when the row count itself is wrong
	Rows, Cols         int
	WantRows, WantCols int
}

func (e *ErrShapeMismatch) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("mask row %d has %d columns, want %d", e.Row, e.Cols, e.WantCols)
	}
	return fmt.Sprintf("mask has %d rows, want %d (one per latitude)", e.Rows, e.WantRows)
}

// ErrNotMonotonic indicates longitudes that are not strictly ascending
type ErrNotMonotonic struct {
	Index int
	Prev  float64
	Next  float64
}

func (e *ErrNotMonotonic) Error() string {
	return fmt.Sprintf("longitude not ascending at index %d: %f >= %f", e.Index, e.Prev, e.Next)
}
