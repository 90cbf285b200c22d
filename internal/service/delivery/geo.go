package delivery

import (
	"math"

	"vibe-shop/internal/domain"
)

const earthRadiusKm = 6371.0

// DistanceFallback says why a distance was not measured.
type DistanceFallback int

// List of distance fallbacks
const (
	// DistanceMeasured means the value comes from the haversine formula.
	DistanceMeasured DistanceFallback = iota
	// DistanceFallbackNoOrigin means no origin was supplied.
	DistanceFallbackNoOrigin
	// DistanceFallbackInvalid means the coordinates could not be evaluated
	// (NaN/Inf input or an arc-sine argument outside [-1, 1]).
	DistanceFallbackInvalid
)

// String returns the fallback name used in logs.
func (f DistanceFallback) String() string {
	switch f {
	case DistanceMeasured:
		return "measured"
	case DistanceFallbackNoOrigin:
		return "no_origin"
	case DistanceFallbackInvalid:
		return "invalid_coordinates"
	default:
		return "unknown"
	}
}

// Distance is a rounded depot distance. Km is 0 whenever Fallback != DistanceMeasured.
type Distance struct {
	Km       int
	Fallback DistanceFallback
}

// HaversineKm returns the great-circle distance between a and b in kilometres.
// ok is false when the computation leaves the real domain.
func HaversineKm(a, b domain.Coordinates) (km float64, ok bool) {
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*sinLon*sinLon

	root := math.Sqrt(h)
	if math.IsNaN(root) || root > 1 {
		return 0, false
	}
	km = 2 * earthRadiusKm * math.Asin(root)
	if math.IsNaN(km) || math.IsInf(km, 0) {
		return 0, false
	}
	return km, true
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
