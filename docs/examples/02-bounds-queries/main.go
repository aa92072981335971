package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/coastline/pkg/coastline"
)

func main() {
	bbox := flag.String("bbox", "-20,-20,20,20", "minLon,minLat,maxLon,maxLat")
	out := flag.String("geojson", "", "Write matching polygons as GeoJSON")
	flag.Parse()

	query, err := coastline.ParseBounds(*bbox)
	if err != nil {
		log.Fatal(err)
	}

	// A 2-degree mask with a row of islands along the equator
	g := coastline.Grid{}
	for lon := -180.0; lon < 180; lon += 2 {
		g.Lon = append(g.Lon, lon)
	}
	for lat := -20.0; lat <= 20; lat += 2 {
		g.Lat = append(g.Lat, lat)
	}
	g.Mask = make([][]float64, len(g.Lat))
	for j := range g.Mask {
		g.Mask[j] = make([]float64, len(g.Lon))
	}
	for i := 5; i < len(g.Lon)-5; i += 10 {
		for j := 9; j <= 11; j++ {
			g.Mask[j][i] = 1
			g.Mask[j][i+1] = 1
		}
	}

	res, err := coastline.Generate(g, coastline.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	// Index the polygons and query
	idx := coastline.NewPolygonIndex(res.Polygons)
	fmt.Printf("Indexed %d polygons covering %+v\n", idx.Count(), idx.Bounds())

	found := idx.Query(query)
	fmt.Printf("Found %d polygons in %s\n", len(found), *bbox)
	for _, p := range found {
		b := p.Bounds()
		fmt.Printf("  %s [%.1f,%.1f] to [%.1f,%.1f]\n", p.Mark, b.MinLon, b.MinLat, b.MaxLon, b.MaxLat)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := coastline.WriteGeoJSON(f, found); err != nil {
			log.Fatal(err)
		}
	}
}
