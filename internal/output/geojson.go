package output

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection converts rec to GeoJSON, one Polygon feature per block.
//
// GeoJSON wants exterior rings counter-clockwise and holes clockwise, the
// opposite of the shapefile convention, so rings are reversed on copy.
// Each feature carries the block's first mark and the outer ring's area.
func FeatureCollection(rec Records) (*geojson.FeatureCollection, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, b := range rec.Groups() {
		parts := rec.Parts(b)
		poly := make(orb.Polygon, len(parts))
		for i, r := range parts {
			c := r.Clone()
			c.Reverse()
			poly[i] = c
		}

		f := geojson.NewFeature(poly)
		f.Properties["mark"] = rec.Marks[b.Start]
		f.Properties["area"] = rec.Areas[b.Start]
		fc.Append(f)
	}
	return fc, nil
}

// WriteGeoJSON writes rec to w as a GeoJSON FeatureCollection.
func WriteGeoJSON(w io.Writer, rec Records) error {
	fc, err := FeatureCollection(rec)
	if err != nil {
		return err
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}
