// Package isoline traces contour lines of a scalar field on a rectilinear
// grid using marching squares.
//
// Trace is a pure function: it keeps no state between calls and the level
// is an ordinary argument.
package isoline

import (
	"math"

	"github.com/paulmach/orb"
)

// gridEdge identifies the segment between two adjacent grid nodes.
// A vertical edge joins (i,j) and (i,j+1); a horizontal edge joins (i,j)
// and (i+1,j). i indexes x (columns), j indexes y (rows).
type gridEdge struct {
	vertical bool
	i, j     int
}

type segment [2]gridEdge

// Trace returns every polyline along which field crosses level.
//
// field is indexed [row][col] with len(y) rows of len(x) values. Points are
// linearly interpolated along grid edges and expressed in x/y coordinates.
// Lines that close on themselves repeat their first point at the end; lines
// that run into the grid boundary are returned open. Cells with a NaN
// corner are skipped. The order of the returned lines is unspecified.
func Trace(x, y []float64, field [][]float64, level float64) []orb.LineString {
	if len(x) < 2 || len(y) < 2 || len(field) < len(y) {
		return nil
	}

	t := &tracer{x: x, y: y, field: field, level: level, adj: make(map[gridEdge][]int)}
	for j := 0; j+1 < len(y); j++ {
		if len(field[j]) < len(x) || len(field[j+1]) < len(x) {
			continue
		}
		for i := 0; i+1 < len(x); i++ {
			t.cell(i, j)
		}
	}
	return t.join()
}

type tracer struct {
	x, y  []float64
	field [][]float64
	level float64

	segs []segment
	adj  map[gridEdge][]int // Segments touching each edge (at most two)
}

func (t *tracer) above(v float64) bool {
	return v >= t.level
}

func (t *tracer) add(a, b gridEdge) {
	t.segs = append(t.segs, segment{a, b})
	n := len(t.segs) - 1
	t.adj[a] = append(t.adj[a], n)
	t.adj[b] = append(t.adj[b], n)
}

// cell emits the contour segments of the cell whose lower-left node is (i,j).
func (t *tracer) cell(i, j int) {
	v00 := t.field[j][i]
	v10 := t.field[j][i+1]
	v11 := t.field[j+1][i+1]
	v01 := t.field[j+1][i]
	if math.IsNaN(v00) || math.IsNaN(v10) || math.IsNaN(v11) || math.IsNaN(v01) {
		return
	}

	bl, br, tr, tl := t.above(v00), t.above(v10), t.above(v11), t.above(v01)

	bottom := gridEdge{vertical: false, i: i, j: j}
	right := gridEdge{vertical: true, i: i + 1, j: j}
	top := gridEdge{vertical: false, i: i, j: j + 1}
	left := gridEdge{vertical: true, i: i, j: j}

	var crossed []gridEdge
	if bl != br {
		crossed = append(crossed, bottom)
	}
	if br != tr {
		crossed = append(crossed, right)
	}
	if tl != tr {
		crossed = append(crossed, top)
	}
	if bl != tl {
		crossed = append(crossed, left)
	}

	switch len(crossed) {
	case 2:
		t.add(crossed[0], crossed[1])
	case 4:
		// Saddle: resolve with the cell-centre average
		centre := t.above((v00 + v10 + v11 + v01) / 4)
		if bl == centre {
			// Diagonal through bl/tr is connected; cut off br and tl
			t.add(bottom, right)
			t.add(left, top)
		} else {
			t.add(left, bottom)
			t.add(top, right)
		}
	}
}

// point interpolates the level crossing on e.
func (t *tracer) point(e gridEdge) orb.Point {
	a := t.field[e.j][e.i]
	if e.vertical {
		b := t.field[e.j+1][e.i]
		f := fraction(a, b, t.level)
		return orb.Point{t.x[e.i], t.y[e.j] + f*(t.y[e.j+1]-t.y[e.j])}
	}
	b := t.field[e.j][e.i+1]
	f := fraction(a, b, t.level)
	return orb.Point{t.x[e.i] + f*(t.x[e.i+1]-t.x[e.i]), t.y[e.j]}
}

func fraction(a, b, level float64) float64 {
	if a == b {
		return 0.5
	}
	return (level - a) / (b - a)
}

// join links segments that share an edge into polylines. Open lines start
// at a boundary edge (degree one); everything left over is a closed loop.
func (t *tracer) join() []orb.LineString {
	used := make([]bool, len(t.segs))

	walk := func(s int, from gridEdge) orb.LineString {
		line := orb.LineString{t.point(from)}
		cur := from
		for s >= 0 {
			used[s] = true
			next := t.segs[s][0]
			if next == cur {
				next = t.segs[s][1]
			}
			line = append(line, t.point(next))
			cur = next

			s = -1
			for _, c := range t.adj[cur] {
				if !used[c] {
					s = c
					break
				}
			}
		}
		return line
	}

	var lines []orb.LineString
	for s, seg := range t.segs {
		if used[s] {
			continue
		}
		for _, e := range seg {
			if len(t.adj[e]) == 1 {
				lines = append(lines, walk(s, e))
				break
			}
		}
	}
	for s, seg := range t.segs {
		if !used[s] {
			lines = append(lines, walk(s, seg[0]))
		}
	}
	return lines
}
