// Package grid holds the rectilinear land-sea mask and the longitude
// remapping applied before contouring.
package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AntarcticLat is the latitude below which boundary columns keep their
// land values when the grid is extended.
const AntarcticLat = -60.0

// Grid is a land-sea mask on a rectilinear longitude/latitude grid.
//
// Mask is indexed [lat][lon]; 1 is land and 0 is sea. A Grid is treated as
// read-only: Recenter and Extend return new grids.
type Grid struct {
	Lon  []float64   // Ascending longitudes (degrees)
	Lat  []float64   // Latitudes (degrees), either order
	Mask [][]float64 // len(Lat) rows of len(Lon) values
}

// Validate checks that the mask shape matches the axes, that longitudes
// ascend strictly and that there are at least two columns and rows.
func (g Grid) Validate() error {
	if len(g.Lon) < 2 {
		return &ErrDegenerateGrid{Reason: "need at least 2 longitudes"}
	}
	if len(g.Lat) < 2 {
		return &ErrDegenerateGrid{Reason: "need at least 2 latitudes"}
	}
	if len(g.Mask) != len(g.Lat) {
		return &ErrShapeMismatch{Row: -1, Rows: len(g.Mask), WantRows: len(g.Lat), WantCols: len(g.Lon)}
	}
	for j, row := range g.Mask {
		if len(row) != len(g.Lon) {
			return &ErrShapeMismatch{Row: j, Rows: len(g.Mask), Cols: len(row), WantRows: len(g.Lat), WantCols: len(g.Lon)}
		}
	}
	for i := 1; i < len(g.Lon); i++ {
		if !(g.Lon[i] > g.Lon[i-1]) {
			return &ErrNotMonotonic{Index: i, Prev: g.Lon[i-1], Next: g.Lon[i]}
		}
	}
	return nil
}

// LonRange returns the minimum and maximum longitude.
func (g Grid) LonRange() (min, max float64) {
	if len(g.Lon) == 0 {
		return 0, 0
	}
	return floats.Min(g.Lon), floats.Max(g.Lon)
}

// Resolution returns the mean longitude spacing (max-min)/(n-1).
//
// A grid with fewer than two columns, or whose spacing is zero or not
// finite, cannot be contoured and yields ErrDegenerateGrid.
func (g Grid) Resolution() (float64, error) {
	n := len(g.Lon)
	if n < 2 {
		return 0, &ErrDegenerateGrid{Reason: "single longitude column has zero resolution"}
	}
	lo, hi := g.LonRange()
	res := (hi - lo) / float64(n-1)
	if res <= 0 || math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, &ErrDegenerateGrid{Reason: "longitude resolution is not positive"}
	}
	return res, nil
}

// column copies column i of every mask row into dst.
func (g Grid) column(i int, dst []float64) {
	for j, row := range g.Mask {
		dst[j] = row[i]
	}
}
