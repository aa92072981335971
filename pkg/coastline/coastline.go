package coastline

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/beetlebugorg/coastline/internal/grid"
	"github.com/beetlebugorg/coastline/internal/output"
	"github.com/beetlebugorg/coastline/internal/ring"
	"github.com/paulmach/orb"
)

// Grid is a rectilinear land-sea mask.
//
// Lon must be strictly ascending. Mask is indexed [lat][lon]; values are 1
// for land and 0 for sea.
type Grid struct {
	Lon  []float64
	Lat  []float64
	Mask [][]float64
}

// Mark classifies an output ring.
type Mark string

const (
	MarkLand       Mark = "Land"
	MarkLake       Mark = "Lake"
	MarkAntarctica Mark = "Antarctica"
)

// Polygon is an outer ring and the holes it contains.
type Polygon struct {
	Outer     orb.Ring   // Clockwise
	Holes     []orb.Ring // Counter-clockwise
	Mark      Mark       // Land or Antarctica; holes are always Lake
	Area      float64    // Unsigned area of Outer, square degrees
	HoleAreas []float64
}

// Bounds returns the bounding box of the outer ring.
func (p Polygon) Bounds() Bounds {
	return ringBounds(p.Outer)
}

// Diagnostic reports a ring passed through unrepaired: either its start
// and end latitudes differ, or Reason says why it is not a valid ring.
type Diagnostic struct {
	Start  orb.Point
	End    orb.Point
	Reason string // Empty for unclosed rings
}

func (d Diagnostic) String() string {
	if d.Reason != "" {
		return fmt.Sprintf("ring invalid: %s", d.Reason)
	}
	return fmt.Sprintf("ring not closed: start (%.4f, %.4f) end (%.4f, %.4f)",
		d.Start[0], d.Start[1], d.End[0], d.End[1])
}

// Stats counts the corrections made during generation.
type Stats struct {
	Traced    int // Lines returned by the tracer
	Discarded int // Lines below the scale threshold
	Stitched  int // Rings closed along the pole
	Unclosed  int // Rings with mismatched end latitudes
	Invalid   int // Rings too short or with out-of-range coordinates
	Clamped   int // Points clamped into the longitude domain
	Swaps     int // Tentative outers replaced by a containing ring
}

// Result is the output of Generate.
type Result struct {
	Polygons    []Polygon
	Diagnostics []Diagnostic
	Stats       Stats

	// Resolution is the longitude spacing of the recentered grid.
	Resolution float64

	// LonMin and LonMax bound every output longitude.
	LonMin, LonMax float64

	// Duration is the wall time spent in Generate.
	Duration time.Duration
}

// Records returns the polygons as a flat (rings, signed areas, marks)
// triple: outer rings carry +area, holes -area.
func (r *Result) Records() ([]orb.Ring, []float64, []string) {
	rec := toRecords(r.Polygons)
	return rec.Rings, rec.Areas, rec.Marks
}

// MarkCounts returns the number of output rings per mark.
func (r *Result) MarkCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range r.Polygons {
		counts[string(p.Mark)]++
		counts[string(MarkLake)] += len(p.Holes)
	}
	if counts[string(MarkLake)] == 0 {
		delete(counts, string(MarkLake))
	}
	return counts
}

// Generate runs the full pipeline on g: extraction, classification and
// orientation.
//
// The only error is a grid that cannot be processed (shape mismatch,
// non-ascending longitude, fewer than two columns or rows). Malformed
// rings are logged, counted and returned as Diagnostics.
func Generate(g Grid, opts Options) (*Result, error) {
	start := time.Now()
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	ext, err := ring.Extract(grid.Grid(g), extractOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("generate coastline: %w", err)
	}
	c := ring.Classify(ext.Rings)

	res := &Result{
		Polygons:   make([]Polygon, len(c.Groups)),
		Resolution: ext.Resolution,
		LonMin:     ext.LonMin,
		LonMax:     ext.LonMax,
		Stats: Stats{
			Traced:    ext.Stats.Traced,
			Discarded: ext.Stats.Discarded,
			Stitched:  ext.Stats.Stitched,
			Unclosed:  ext.Stats.Unclosed,
			Invalid:   ext.Stats.Invalid,
			Clamped:   ext.Stats.Clamped,
			Swaps:     c.Swaps,
		},
	}
	for i, grp := range c.Groups {
		res.Polygons[i] = Polygon{
			Outer:     grp.Outer,
			Holes:     grp.Holes,
			Mark:      Mark(grp.Tag.String()),
			Area:      grp.Area,
			HoleAreas: grp.HoleAreas,
		}
	}
	for _, d := range ext.Diagnostics {
		diag := Diagnostic{Start: d.Start, End: d.End}
		var invalid *ring.ErrInvalidRing
		if errors.As(d.Err, &invalid) {
			diag.Reason = invalid.Reason
		}
		res.Diagnostics = append(res.Diagnostics, diag)
	}
	res.Duration = time.Since(start)

	log.Info("coastline generated",
		"polygons", len(res.Polygons),
		"rings", len(ext.Rings),
		"discarded", res.Stats.Discarded,
		"unclosed", res.Stats.Unclosed,
		"invalid", res.Stats.Invalid,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

// Extract returns the repaired coastline rings of g, unclassified and in
// tracer order.
func Extract(g Grid, opts Options) ([]orb.Ring, error) {
	ext, err := ring.Extract(grid.Grid(g), extractOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("extract coastline: %w", err)
	}
	return ext.Rings, nil
}

// SortByArea returns rings and their unsigned areas sorted by area,
// largest first when descend is true. Equal areas keep their input order.
func SortByArea(rings []orb.Ring, descend bool) ([]orb.Ring, []float64) {
	return ring.SortByArea(rings, descend)
}

// SortByPolygon classifies rings into outers and holes and returns the
// flat (rings, signed areas, marks) triple. Rings are reoriented in place.
func SortByPolygon(rings []orb.Ring) ([]orb.Ring, []float64, []string) {
	rec := output.FromGroups(ring.Classify(rings).Groups)
	return rec.Rings, rec.Areas, rec.Marks
}

func extractOptions(opts Options) ring.ExtractOptions {
	return ring.ExtractOptions{
		CenterLon:   opts.CenterLon,
		ScaleThresh: opts.ScaleThresh,
		Logger:      opts.Logger,
	}
}

// toRecords flattens polygons, outer ring first.
func toRecords(polys []Polygon) output.Records {
	groups := make([]ring.Group, len(polys))
	for i, p := range polys {
		groups[i] = ring.Group{
			Outer:     p.Outer,
			Holes:     p.Holes,
			Tag:       p.Mark.tag(),
			Area:      p.Area,
			HoleAreas: p.HoleAreas,
		}
	}
	return output.FromGroups(groups)
}

// tag maps an outer-ring mark back to its classifier tag.
func (m Mark) tag() ring.Tag {
	if m == MarkAntarctica {
		return ring.TagAntarctica
	}
	return ring.TagLand
}
