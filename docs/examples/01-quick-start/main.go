package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/coastline/pkg/coastline"
)

func main() {
	// Build a 1-degree mask with one island and a lake in it
	g := coastline.Grid{}
	for lon := -180.0; lon < 180; lon++ {
		g.Lon = append(g.Lon, lon)
	}
	for lat := -10.0; lat <= 30; lat++ {
		g.Lat = append(g.Lat, lat)
	}
	g.Mask = make([][]float64, len(g.Lat))
	for j := range g.Mask {
		g.Mask[j] = make([]float64, len(g.Lon))
	}
	for j := 15; j <= 25; j++ {
		for i := 170; i <= 185; i++ {
			g.Mask[j][i] = 1
		}
	}
	g.Mask[20][178] = 0

	// Generate polygons
	res, err := coastline.Generate(g, coastline.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Resolution: %.2f degrees\n", res.Resolution)
	fmt.Printf("Polygons: %d\n", len(res.Polygons))
	for _, p := range res.Polygons {
		fmt.Printf("  %s: area %.2f, %d holes\n", p.Mark, p.Area, len(p.Holes))
	}

	// Flat records for a shapefile writer
	rings, areas, marks := res.Records()
	for i := range rings {
		fmt.Printf("Ring %d: %d points, area %+.2f, %s\n", i, len(rings[i]), areas[i], marks[i])
	}
}
