// Command gencoast turns a netCDF land-sea mask into a coastline shapefile.
//
// Usage:
//
//	gencoast -in mask.nc -out coast [-layout cartopy|basemap] [-geojson coast.json]
//	         [-center 0] [-scale 1] [-bbox minLon,minLat,maxLon,maxLat] [-metrics coast.prom]
//
// Defaults for -center, -scale and the netCDF variable names come from the
// environment (COASTLINE_CENTER_LON, COASTLINE_SCALE_THRESH,
// COASTLINE_LON_VAR, COASTLINE_LAT_VAR, COASTLINE_MASK_VAR), optionally
// loaded from a .env file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/beetlebugorg/coastline/internal/logger"
	"github.com/beetlebugorg/coastline/internal/maskio"
	"github.com/beetlebugorg/coastline/internal/metrics"
	"github.com/beetlebugorg/coastline/pkg/coastline"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	l := logger.Setup()

	if err := run(os.Args[1:], os.Stdout, l); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		l.Error("gencoast failed", "err", err)
		os.Exit(1)
	}
}

// config is the parsed command line.
type config struct {
	in      string
	out     string
	layout  string
	geojson string
	bbox    string
	metrics string
	vars    maskio.Vars
	opts    coastline.Options
}

func parseFlags(args []string) (config, error) {
	cfg := config{vars: maskio.DefaultVars(), opts: coastline.DefaultOptions()}
	cfg.vars.Lon = envString("COASTLINE_LON_VAR", cfg.vars.Lon)
	cfg.vars.Lat = envString("COASTLINE_LAT_VAR", cfg.vars.Lat)
	cfg.vars.Mask = envString("COASTLINE_MASK_VAR", cfg.vars.Mask)

	center, err := envFloat("COASTLINE_CENTER_LON", cfg.opts.CenterLon)
	if err != nil {
		return cfg, err
	}
	scale, err := envFloat("COASTLINE_SCALE_THRESH", cfg.opts.ScaleThresh)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("gencoast", flag.ContinueOnError)
	fs.StringVar(&cfg.in, "in", "", "Path to netCDF land-sea mask")
	fs.StringVar(&cfg.out, "out", "", "Output shapefile path (.shp appended if missing)")
	fs.StringVar(&cfg.layout, "layout", "cartopy", "Shapefile layout: cartopy or basemap")
	fs.StringVar(&cfg.geojson, "geojson", "", "Also write GeoJSON to this path (- for stdout)")
	fs.Float64Var(&cfg.opts.CenterLon, "center", center, "Center longitude of the output map")
	fs.Float64Var(&cfg.opts.ScaleThresh, "scale", scale, "Drop features smaller than this scale (degrees)")
	fs.StringVar(&cfg.bbox, "bbox", "", "Keep only polygons intersecting minLon,minLat,maxLon,maxLat")
	fs.StringVar(&cfg.metrics, "metrics", "", "Write Prometheus metrics to this textfile")
	fs.StringVar(&cfg.vars.Lon, "lon-var", cfg.vars.Lon, "netCDF longitude variable")
	fs.StringVar(&cfg.vars.Lat, "lat-var", cfg.vars.Lat, "netCDF latitude variable")
	fs.StringVar(&cfg.vars.Mask, "mask-var", cfg.vars.Mask, "netCDF mask variable")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.in == "" {
		return cfg, fmt.Errorf("please provide -in path")
	}
	if cfg.out == "" && cfg.geojson == "" {
		return cfg, fmt.Errorf("please provide -out or -geojson")
	}
	return cfg, nil
}

func run(args []string, stdout io.Writer, l *slog.Logger) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg.opts.Logger = l

	layout, err := coastline.ParseLayout(cfg.layout)
	if err != nil {
		return err
	}

	g, err := maskio.LoadNetCDF(cfg.in, cfg.vars)
	if err != nil {
		return err
	}
	l.Debug("mask loaded", "path", cfg.in, "nlon", len(g.Lon), "nlat", len(g.Lat))

	res, err := coastline.Generate(coastline.Grid{Lon: g.Lon, Lat: g.Lat, Mask: g.Mask}, cfg.opts)
	if err != nil {
		return err
	}

	polys := res.Polygons
	if cfg.bbox != "" {
		b, err := coastline.ParseBounds(cfg.bbox)
		if err != nil {
			return err
		}
		polys = coastline.NewPolygonIndex(polys).Query(b)
		l.Info("bounds filter", "bbox", cfg.bbox, "kept", len(polys), "total", len(res.Polygons))
	}

	if cfg.out != "" {
		if err := coastline.WriteShapefile(cfg.out, polys, layout); err != nil {
			return err
		}
		l.Info("shapefile written", "path", cfg.out, "layout", layout.String(), "polygons", len(polys))
	}

	if cfg.geojson != "" {
		if err := writeGeoJSON(cfg.geojson, stdout, polys); err != nil {
			return err
		}
	}

	if cfg.metrics != "" {
		p := metrics.New()
		p.Observe(metrics.Counts{
			Traced:    res.Stats.Traced,
			Discarded: res.Stats.Discarded,
			Stitched:  res.Stats.Stitched,
			Unclosed:  res.Stats.Unclosed,
			Invalid:   res.Stats.Invalid,
			Clamped:   res.Stats.Clamped,
			Swaps:     res.Stats.Swaps,
			Marks:     res.MarkCounts(),
			Duration:  res.Duration,
		})
		if err := p.WriteTextfile(cfg.metrics); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func writeGeoJSON(path string, stdout io.Writer, polys []coastline.Polygon) error {
	if path == "-" {
		return coastline.WriteGeoJSON(stdout, polys)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := coastline.WriteGeoJSON(f, polys); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
