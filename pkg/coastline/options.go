package coastline

import "log/slog"

// Options configures coastline generation.
type Options struct {
	// CenterLon is the center longitude of the output map. The longitude
	// domain becomes [CenterLon-180, CenterLon+180].
	CenterLon float64

	// ScaleThresh is the smallest feature scale kept, in degrees. Rings
	// with fewer than 4*ScaleThresh/resolution points are dropped.
	ScaleThresh float64

	// Logger receives warnings about malformed rings. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		CenterLon:   0.0,
		ScaleThresh: 1.0,
		Logger:      nil,
	}
}
