package coastline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Bounds represents a bounding box in (lon, lat) degrees.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// Intersects reports whether b and other overlap, edges included.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// Union returns the smallest bounds covering b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinLon: min(b.MinLon, other.MinLon),
		MaxLon: max(b.MaxLon, other.MaxLon),
		MinLat: min(b.MinLat, other.MinLat),
		MaxLat: max(b.MaxLat, other.MaxLat),
	}
}

// ParseBounds parses "minLon,minLat,maxLon,maxLat".
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, fmt.Errorf("bounds %q: want minLon,minLat,maxLon,maxLat", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Bounds{}, fmt.Errorf("bounds %q: %w", s, err)
		}
		v[i] = f
	}
	b := Bounds{MinLon: v[0], MinLat: v[1], MaxLon: v[2], MaxLat: v[3]}
	if b.MinLon > b.MaxLon || b.MinLat > b.MaxLat {
		return Bounds{}, fmt.Errorf("bounds %q: minimum exceeds maximum", s)
	}
	return b, nil
}

// ringBounds calculates the bounding box of a ring.
func ringBounds(r orb.Ring) Bounds {
	if len(r) == 0 {
		return Bounds{}
	}
	ob := r.Bound()
	return Bounds{
		MinLon: ob.Min[0],
		MaxLon: ob.Max[0],
		MinLat: ob.Min[1],
		MaxLat: ob.Max[1],
	}
}
