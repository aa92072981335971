// Package coastline converts a land-sea raster mask into closed, nested,
// correctly oriented coastline polygons.
//
// The mask is a rectilinear grid with 1 for land and 0 for sea. The
// pipeline recenters the longitude domain, traces the 0.5 contour, repairs
// rings cut open at the pole, drops features below a scale threshold and
// sorts the remaining rings into outer boundaries and their holes.
//
// # Basic Usage
//
//	g := coastline.Grid{Lon: lon, Lat: lat, Mask: mask}
//	res, err := coastline.Generate(g, coastline.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, p := range res.Polygons {
//	    fmt.Printf("%s: %.1f sq deg, %d holes\n", p.Mark, p.Area, len(p.Holes))
//	}
//
// # Conventions
//
// Outer rings wind clockwise and holes counter-clockwise in (lon, lat), the
// shapefile convention. Every ring is closed: its first and last points are
// equal. Areas are planar shoelace areas in square degrees, used to rank
// and classify rings, not as geodesic areas.
//
// Outer rings are marked Land, or Antarctica when larger than 1000 square
// degrees with a mean latitude south of 60S. Holes are marked Lake. Only
// two nesting levels are modelled: an island inside a lake is reported as
// another hole of the surrounding land.
//
// # Output
//
// Result.Records returns the flat (rings, signed areas, marks) triple:
// each run starting at a positive area and continuing through the
// negative areas after it is one polygon. WriteShapefile and WriteGeoJSON
// serialize polygons directly.
//
// # Spatial Queries
//
//	idx := coastline.NewPolygonIndex(res.Polygons)
//	nearby := idx.Query(coastline.Bounds{
//	    MinLon: -10, MaxLon: 5,
//	    MinLat: 48, MaxLat: 60,
//	})
package coastline
