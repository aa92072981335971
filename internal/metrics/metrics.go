// Package metrics exports pipeline statistics as Prometheus metrics.
//
// A coastline run is a batch job, so metrics are written to a textfile
// for the node exporter's textfile collector instead of being served.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Counts is one pipeline run's statistics.
type Counts struct {
	Traced    int
	Discarded int
	Stitched  int
	Unclosed  int
	Invalid   int
	Clamped   int
	Swaps     int
	Marks     map[string]int // Output rings per mark
	Duration  time.Duration
}

// Pipeline holds the coastline metrics in a private registry.
type Pipeline struct {
	registry *prometheus.Registry

	RingsTotal    *prometheus.CounterVec
	ClampedTotal  prometheus.Counter
	SwapsTotal    prometheus.Counter
	OutputTotal   *prometheus.CounterVec
	RunDurationMs prometheus.Histogram
}

// New creates and registers the pipeline metrics.
func New() *Pipeline {
	p := &Pipeline{
		registry: prometheus.NewRegistry(),
		RingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coastline_rings_total",
			Help: "Traced lines by extraction outcome",
		}, []string{"outcome"}),
		ClampedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coastline_points_clamped_total",
			Help: "Ring points clamped into the longitude domain",
		}),
		SwapsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coastline_classifier_swaps_total",
			Help: "Tentative outer rings replaced by a containing ring",
		}),
		OutputTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coastline_output_rings_total",
			Help: "Output rings by mark",
		}, []string{"mark"}),
		RunDurationMs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "coastline_run_duration_ms",
			Help:    "Pipeline run duration in milliseconds",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 60000},
		}),
	}
	p.registry.MustRegister(p.RingsTotal)
	p.registry.MustRegister(p.ClampedTotal)
	p.registry.MustRegister(p.SwapsTotal)
	p.registry.MustRegister(p.OutputTotal)
	p.registry.MustRegister(p.RunDurationMs)
	return p
}

// Observe adds one run's statistics.
func (p *Pipeline) Observe(c Counts) {
	p.RingsTotal.WithLabelValues("traced").Add(float64(c.Traced))
	p.RingsTotal.WithLabelValues("discarded").Add(float64(c.Discarded))
	p.RingsTotal.WithLabelValues("stitched").Add(float64(c.Stitched))
	p.RingsTotal.WithLabelValues("unclosed").Add(float64(c.Unclosed))
	p.RingsTotal.WithLabelValues("invalid").Add(float64(c.Invalid))
	p.ClampedTotal.Add(float64(c.Clamped))
	p.SwapsTotal.Add(float64(c.Swaps))
	for mark, n := range c.Marks {
		p.OutputTotal.WithLabelValues(mark).Add(float64(n))
	}
	p.RunDurationMs.Observe(float64(c.Duration.Milliseconds()))
}

// WriteTextfile writes the metrics in the text exposition format to path.
func (p *Pipeline) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
