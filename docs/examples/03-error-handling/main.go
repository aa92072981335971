package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/coastline/pkg/coastline"
)

func safeGenerate(g coastline.Grid) (*coastline.Result, error) {
	res, err := coastline.Generate(g, coastline.DefaultOptions())
	if err != nil {
		// Shape or axis problems: nothing can be traced
		return nil, fmt.Errorf("unusable mask: %w", err)
	}

	// Malformed rings are kept and reported
	for _, d := range res.Diagnostics {
		log.Printf("Warning: %s", d)
	}
	if len(res.Polygons) == 0 {
		log.Printf("Warning: mask contains no land above the scale threshold")
	}
	return res, nil
}

func main() {
	// A single longitude cannot be recentered or traced
	_, err := safeGenerate(coastline.Grid{
		Lon:  []float64{0},
		Lat:  []float64{0, 1},
		Mask: [][]float64{{1}, {0}},
	})
	if err != nil {
		log.Printf("Expected error: %v", err)
	}

	// Rows must match the longitude axis
	_, err = safeGenerate(coastline.Grid{
		Lon:  []float64{0, 1, 2},
		Lat:  []float64{0, 1},
		Mask: [][]float64{{1, 0, 0}, {0, 0}},
	})
	if err != nil {
		log.Printf("Expected error: %v", err)
	}

	// A lone column of land on the southern edge is cut open by the grid
	// boundary; the rings are kept and reported
	g := coastline.Grid{}
	for lon := -180.0; lon < 180; lon += 10 {
		g.Lon = append(g.Lon, lon)
	}
	for lat := -85.0; lat <= 85; lat += 10 {
		g.Lat = append(g.Lat, lat)
	}
	g.Mask = make([][]float64, len(g.Lat))
	for j := range g.Mask {
		g.Mask[j] = make([]float64, len(g.Lon))
	}
	g.Mask[0][0], g.Mask[1][0], g.Mask[2][0] = 1, 1, 1

	res, err := safeGenerate(g)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Polygons: %d, unclosed rings: %d\n", len(res.Polygons), res.Stats.Unclosed)
}
