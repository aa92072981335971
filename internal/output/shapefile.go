package output

import (
	"fmt"
	"path/filepath"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/paulmach/orb"
)

// Layout selects how records are grouped into shapefile features.
type Layout int

const (
	// LayoutCartopy writes one multi-ring feature per block (outer ring and
	// its holes) carrying the block's first mark.
	LayoutCartopy Layout = iota

	// LayoutBasemap writes one single-ring feature per ring with its own
	// mark. Holes follow their outer ring directly.
	LayoutBasemap
)

// String returns the layout name used on the command line.
func (l Layout) String() string {
	switch l {
	case LayoutCartopy:
		return "cartopy"
	case LayoutBasemap:
		return "basemap"
	default:
		return "unknown"
	}
}

// ParseLayout converts a command-line layout name.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "cartopy":
		return LayoutCartopy, nil
	case "basemap":
		return LayoutBasemap, nil
	}
	return 0, fmt.Errorf("unknown layout %q (want cartopy or basemap)", s)
}

// shapeRecord is one shapefile row. The DBF table has a single character
// field named Polygon.
type shapeRecord struct {
	Shape   geom.Polygon
	Polygon string
}

// WriteShapefile writes rec to the shapefile at path (".shp" is appended
// when missing; the .shx and .dbf companions are written next to it).
func WriteShapefile(path string, rec Records, layout Layout) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if filepath.Ext(path) != ".shp" {
		path += ".shp"
	}

	enc, err := shp.NewEncoder(path, shapeRecord{})
	if err != nil {
		return fmt.Errorf("create shapefile %s: %w", path, err)
	}
	defer enc.Close()

	switch layout {
	case LayoutBasemap:
		for i, r := range rec.Rings {
			row := shapeRecord{Shape: toPolygon([]orb.Ring{r}), Polygon: rec.Marks[i]}
			if err := enc.Encode(row); err != nil {
				return fmt.Errorf("write ring %d: %w", i, err)
			}
		}
	case LayoutCartopy:
		for _, b := range rec.Groups() {
			row := shapeRecord{Shape: toPolygon(rec.Parts(b)), Polygon: rec.Marks[b.Start]}
			if err := enc.Encode(row); err != nil {
				return fmt.Errorf("write polygon at ring %d: %w", b.Start, err)
			}
		}
	default:
		return fmt.Errorf("unknown layout %d", layout)
	}
	return nil
}

// toPolygon converts rings to a ctessum polygon, keeping their winding.
func toPolygon(rings []orb.Ring) geom.Polygon {
	poly := make(geom.Polygon, len(rings))
	for i, r := range rings {
		path := make(geom.Path, len(r))
		for k, p := range r {
			path[k] = geom.Point{X: p[0], Y: p[1]}
		}
		poly[i] = path
	}
	return poly
}
