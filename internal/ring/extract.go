package ring

import (
	"fmt"
	"log/slog"

	"github.com/beetlebugorg/coastline/internal/grid"
	"github.com/beetlebugorg/coastline/internal/isoline"
	"github.com/paulmach/orb"
)

const (
	// Level is the contour value separating land (1) from sea (0).
	Level = 0.5

	// PoleLat is the latitude along which rings cut open at the pole are
	// stitched shut.
	PoleLat = -89.9

	// featurePoints is the point count of the smallest feature kept at a
	// scale of one grid cell.
	featurePoints = 4.0
)

// ExtractOptions configures ring extraction.
type ExtractOptions struct {
	// CenterLon is the center longitude of the output map.
	// e.g. 0 for [-180, 180], 180 for [0, 360], 210 for [30, 390].
	CenterLon float64

	// ScaleThresh (degrees) drops islands and lakes smaller than this
	// scale. Lines with fewer than 4*ScaleThresh/resolution points are
	// discarded.
	ScaleThresh float64

	// Logger receives diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultExtractOptions returns extraction options with defaults
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		CenterLon:   0.0,
		ScaleThresh: 1.0,
		Logger:      nil,
	}
}

// Stats counts the routine corrections made during extraction.
type Stats struct {
	Traced    int // Lines returned by the tracer
	Discarded int // Lines below the feature-size threshold
	Stitched  int // Rings closed along PoleLat
	Unclosed  int // Rings passed through with mismatched end latitudes
	Invalid   int // Rings passed through that fail Validate
	Clamped   int // Points clamped into the longitude domain
}

// Extraction is the output of Extract.
type Extraction struct {
	Rings       []orb.Ring
	Diagnostics []Diagnostic
	Stats       Stats

	// Resolution is the longitude spacing of the recentered grid.
	Resolution float64

	// LonMin and LonMax bound the recentered grid; every ring x is clamped
	// into this range.
	LonMin, LonMax float64
}

// Extract traces the coastline rings of g.
//
// The grid is recentered on opts.CenterLon, extended by one column on each
// side and contoured at Level. Each traced line is then:
//   - discarded when shorter than the feature-size threshold,
//   - stitched along PoleLat when the tracer cut it open at the pole
//     (start/end longitudes differ, latitudes match),
//   - reported as a Diagnostic when its end latitudes differ (the ring is
//     still returned),
//   - clamped into the recentered longitude range,
//   - checked with Validate unless already reported unclosed; failures
//     are reported as a Diagnostic and the ring is still returned.
//
// A grid that fails Validate, or whose recentered resolution is not
// positive, is a fatal error.
func Extract(g grid.Grid, opts ExtractOptions) (*Extraction, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	centered := grid.Recenter(g, opts.CenterLon)
	lonMin, lonMax := centered.LonRange()
	resolution, err := centered.Resolution()
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	extended := grid.Extend(centered)

	lines := isoline.Trace(extended.Lon, extended.Lat, extended.Mask, Level)

	out := &Extraction{
		Rings:      make([]orb.Ring, 0, len(lines)),
		Resolution: resolution,
		LonMin:     lonMin,
		LonMax:     lonMax,
	}
	minPoints := featurePoints * opts.ScaleThresh / resolution

	for _, line := range lines {
		out.Stats.Traced++

		// Remove small islands and lakes
		if len(line) < 2 || float64(len(line)) < minPoints {
			out.Stats.Discarded++
			continue
		}

		r := make(orb.Ring, len(line), len(line)+3)
		copy(r, line)
		start, end := r[0], r[len(r)-1]
		unclosed := false

		switch {
		case start[0] != end[0] && start[1] == end[1]:
			// Cut open at the pole: walk along PoleLat back to the start
			r = append(r, orb.Point{end[0], PoleLat}, orb.Point{start[0], PoleLat})
			r = EnsureClosed(r)
			out.Stats.Stitched++
			log.Debug("ring lon cyclic",
				"lon_min", lonMin, "lon_max", lonMax,
				"start", start, "end", end)

		case start[1] != end[1]:
			d := Diagnostic{
				Index: len(out.Rings),
				Kind:  DiagnosticUnclosed,
				Start: start,
				End:   end,
			}
			out.Diagnostics = append(out.Diagnostics, d)
			out.Stats.Unclosed++
			unclosed = true
			log.Warn("ring not closed",
				"index", d.Index,
				"lon_min", lonMin, "lon_max", lonMax,
				"start", start, "end", end)
		}

		out.Stats.Clamped += clampLon(r, lonMin, lonMax)
		if !unclosed {
			if err := Validate(len(out.Rings), r); err != nil {
				d := Diagnostic{
					Index: len(out.Rings),
					Kind:  DiagnosticInvalid,
					Start: r[0],
					End:   r[len(r)-1],
					Err:   err,
				}
				out.Diagnostics = append(out.Diagnostics, d)
				out.Stats.Invalid++
				log.Warn("ring invalid", "index", d.Index, "error", err)
			}
		}
		out.Rings = append(out.Rings, r)
	}

	return out, nil
}

// clampLon clamps every x of r into [lo, hi] and returns how many points
// moved.
func clampLon(r orb.Ring, lo, hi float64) int {
	n := 0
	for i := range r {
		switch {
		case r[i][0] < lo:
			r[i][0] = lo
			n++
		case r[i][0] > hi:
			r[i][0] = hi
			n++
		}
	}
	return n
}
