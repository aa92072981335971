package coastline

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// PolygonIndex provides fast bounds queries over generated polygons.
//
// Each polygon is stored under the bounding box of its outer ring in an
// R-tree, so a query touches only the polygons near the query box.
//
// Example:
//
//	idx := coastline.NewPolygonIndex(res.Polygons)
//	britain := idx.Query(coastline.Bounds{
//	    MinLon: -8.0, MaxLon: 2.0,
//	    MinLat: 49.5, MaxLat: 59.0,
//	})
type PolygonIndex struct {
	entries []polygonEntry
	rtree   *rtreego.Rtree
}

// polygonEntry wraps a polygon for R-tree storage.
type polygonEntry struct {
	order   int // Position in the input slice
	polygon Polygon
	bounds  Bounds
}

// Bounds implements rtreego.Spatial interface.
func (e polygonEntry) Bounds() rtreego.Rect {
	return toRect(e.bounds)
}

// toRect converts bounds to an R-tree rectangle.
func toRect(b Bounds) rtreego.Rect {
	point := rtreego.Point{b.MinLon, b.MinLat}

	// R-tree requires non-zero dimensions
	const epsilon = 0.0001
	lonLength := b.MaxLon - b.MinLon
	latLength := b.MaxLat - b.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

// NewPolygonIndex builds an index over polys.
func NewPolygonIndex(polys []Polygon) *PolygonIndex {
	// 2D, min=25 children, max=50 children
	idx := &PolygonIndex{
		entries: make([]polygonEntry, len(polys)),
		rtree:   rtreego.NewTree(2, 25, 50),
	}
	for i, p := range polys {
		idx.entries[i] = polygonEntry{order: i, polygon: p, bounds: p.Bounds()}
		idx.rtree.Insert(idx.entries[i])
	}
	return idx
}

// Query returns the polygons whose outer-ring bounds intersect b, in input
// order. R-tree hits are rechecked against the unpadded bounds, so a
// zero-width ring only matches boxes that reach its line.
func (idx *PolygonIndex) Query(b Bounds) []Polygon {
	spatials := idx.rtree.SearchIntersect(toRect(b))
	found := make([]polygonEntry, 0, len(spatials))
	for _, s := range spatials {
		e := s.(polygonEntry)
		if b.Intersects(e.bounds) {
			found = append(found, e)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].order < found[j].order
	})

	result := make([]Polygon, len(found))
	for i, e := range found {
		result[i] = e.polygon
	}
	return result
}

// Count returns the total number of polygons in the index.
func (idx *PolygonIndex) Count() int {
	return len(idx.entries)
}

// Bounds returns the union of all polygon bounds in the index.
func (idx *PolygonIndex) Bounds() Bounds {
	if len(idx.entries) == 0 {
		return Bounds{}
	}

	bounds := idx.entries[0].bounds
	for i := 1; i < len(idx.entries); i++ {
		bounds = bounds.Union(idx.entries[i].bounds)
	}
	return bounds
}
