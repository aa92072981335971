// Package ring repairs, ranks and classifies the closed coastline rings
// traced from a land-sea mask.
package ring

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/floats"
)

// MinPoints is the smallest closed ring: three distinct points plus the
// repeated first point.
const MinPoints = 4

// boundaryTolerance is the distance (degrees) under which a point is taken
// to lie on a ring's boundary.
const boundaryTolerance = 1e-9

// IsClosed checks if a ring is properly closed
func IsClosed(r orb.Ring) bool {
	if len(r) < MinPoints {
		return false
	}
	return r[0] == r[len(r)-1]
}

// EnsureClosed appends the first point when the ring does not end on it.
func EnsureClosed(r orb.Ring) orb.Ring {
	if len(r) < 3 {
		return r // Not enough points for a ring
	}
	if r[0] == r[len(r)-1] {
		return r
	}
	return append(r, r[0])
}

// Area returns the unsigned planar (shoelace) area in square degrees.
func Area(r orb.Ring) float64 {
	if len(r) < 3 {
		return 0
	}
	return math.Abs(planar.Area(r))
}

// IsClockwise reports whether r winds clockwise in (lon, lat).
func IsClockwise(r orb.Ring) bool {
	if len(r) < 3 {
		return false
	}
	return r.Orientation() == orb.CW
}

// Orient reverses r in place unless it already winds in the wanted
// direction. It returns true when the ring was reversed.
func Orient(r orb.Ring, want orb.Orientation) bool {
	if len(r) < 3 {
		return false
	}
	if r.Orientation() == want {
		return false
	}
	r.Reverse()
	return true
}

// MeanLat returns the average latitude over every point of r, including
// the repeated closing point.
func MeanLat(r orb.Ring) float64 {
	if len(r) == 0 {
		return 0
	}
	lats := make([]float64, len(r))
	for i, p := range r {
		lats[i] = p[1]
	}
	return floats.Sum(lats) / float64(len(lats))
}

// Contains reports whether ring a contains ring b: no part of b lies
// outside a and at least one point of b lies strictly inside it.
//
// Rings coming from the tracer never cross, so testing b's vertices (and,
// when every vertex sits on a's boundary, its edge midpoints) is enough.
func Contains(a, b orb.Ring) bool {
	if len(a) < MinPoints || len(b) < 2 {
		return false
	}
	ab, bb := a.Bound(), b.Bound()
	if !ab.Contains(bb.Min) || !ab.Contains(bb.Max) {
		return false
	}

	interior := false
	test := func(p orb.Point) bool {
		if interior {
			return planar.RingContains(a, p) || onBoundary(a, p)
		}
		if onBoundary(a, p) {
			return true
		}
		if !planar.RingContains(a, p) {
			return false
		}
		interior = true
		return true
	}

	for _, p := range b {
		if !test(p) {
			return false
		}
	}
	if interior {
		return true
	}

	// Every vertex is on a's boundary; decide with the edge midpoints
	for i := 1; i < len(b); i++ {
		m := orb.Point{(b[i-1][0] + b[i][0]) / 2, (b[i-1][1] + b[i][1]) / 2}
		if !test(m) {
			return false
		}
	}
	return interior
}

func onBoundary(r orb.Ring, p orb.Point) bool {
	for i := 1; i < len(r); i++ {
		if planar.DistanceFromSegment(r[i-1], r[i], p) <= boundaryTolerance {
			return true
		}
	}
	return false
}
