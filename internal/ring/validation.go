package ring

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ValidateCoordinate validates a single coordinate pair.
// Longitude is only required to be finite: recentered maps may span
// [30, 390] or similar windows.
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return nil
}

// Validate checks that r is a closed ring of at least MinPoints valid
// coordinates. index is only used to label the error.
func Validate(index int, r orb.Ring) error {
	if len(r) < MinPoints {
		return &ErrInvalidRing{
			Index:  index,
			Reason: fmt.Sprintf("ring needs at least %d points, got %d", MinPoints, len(r)),
		}
	}
	if !IsClosed(r) {
		return &ErrInvalidRing{
			Index:  index,
			Reason: fmt.Sprintf("start %v does not match end %v", r[0], r[len(r)-1]),
		}
	}
	for i, p := range r {
		if err := ValidateCoordinate(p[1], p[0]); err != nil {
			return &ErrInvalidRing{
				Index:  index,
				Reason: fmt.Sprintf("point %d invalid: %v", i, err),
			}
		}
	}
	return nil
}
