package coastline

import (
	"io"

	"github.com/beetlebugorg/coastline/internal/output"
)

// Layout selects how polygons are grouped into shapefile features.
type Layout = output.Layout

const (
	// LayoutCartopy writes one multi-ring feature per polygon.
	LayoutCartopy = output.LayoutCartopy

	// LayoutBasemap writes one single-ring feature per ring.
	LayoutBasemap = output.LayoutBasemap
)

// ParseLayout converts "cartopy" or "basemap" to a Layout.
func ParseLayout(s string) (Layout, error) {
	return output.ParseLayout(s)
}

// WriteShapefile writes polys to a polygon shapefile at path. The DBF
// table has one character field, Polygon, holding the mark.
func WriteShapefile(path string, polys []Polygon, layout Layout) error {
	return output.WriteShapefile(path, toRecords(polys), layout)
}

// WriteGeoJSON writes polys to w as a FeatureCollection. Rings are
// written with RFC 7946 winding (exterior counter-clockwise); polys are
// not modified.
func WriteGeoJSON(w io.Writer, polys []Polygon) error {
	return output.WriteGeoJSON(w, toRecords(polys))
}
