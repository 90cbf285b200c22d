package delivery

import (
	"math"
	"time"

	"vibe-shop/internal/domain"
)

// Depot is the shipping origin all distances are measured from.
type Depot struct {
	Latitude  float64
	Longitude float64
}

// DefaultDepot is the Novosibirsk warehouse.
var DefaultDepot = Depot{Latitude: 55.0084, Longitude: 82.9357}

// Coordinates returns the depot as a domain point.
func (d Depot) Coordinates() domain.Coordinates {
	return domain.Coordinates{Latitude: d.Latitude, Longitude: d.Longitude}
}

const (
	minEtaDays = 1
	maxEtaDays = 28

	// kilometres covered per extra delivery day
	kmPerDay = 700

	// quantities past this cannot move the clamped result
	quantityCap = 1 << 20
)

// Estimator turns cart contents and an optional origin into a delivery estimate.
// It holds only read-only configuration and is safe for concurrent use.
type Estimator struct {
	depot Depot
	now   func() time.Time
}

// NewEstimator creates an Estimator for the given depot using the wall clock.
func NewEstimator(depot Depot) *Estimator {
	return NewEstimatorWithClock(depot, time.Now)
}

// NewEstimatorWithClock creates an Estimator reading the current time from now.
func NewEstimatorWithClock(depot Depot, now func() time.Time) *Estimator {
	if now == nil {
		now = time.Now
	}
	return &Estimator{depot: depot, now: now}
}

// Depot returns the configured depot.
func (e *Estimator) Depot() Depot { return e.depot }

// Distance measures origin against the depot.
func (e *Estimator) Distance(origin *domain.Coordinates) Distance {
	if origin == nil {
		return Distance{Fallback: DistanceFallbackNoOrigin}
	}
	km, ok := HaversineKm(*origin, e.depot.Coordinates())
	if !ok {
		return Distance{Fallback: DistanceFallbackInvalid}
	}
	return Distance{Km: int(math.Round(km)), Fallback: DistanceMeasured}
}

// Estimate computes distance, delivery days and the delivery date.
func (e *Estimator) Estimate(items []domain.CartItem, origin *domain.Coordinates) domain.EtaResult {
	dist := e.Distance(origin)
	days := Days(items, dist.Km)
	return domain.EtaResult{
		DistanceKm: dist.Km,
		Days:       days,
		Date:       e.now().AddDate(0, 0, days).Format(domain.EtaLayout),
	}
}

// Days is 1 + ceil(qty/2) + ceil(unique*0.3) + ceil(km/700), clamped to [1, 28].
func Days(items []domain.CartItem, distanceKm int) int {
	var total int64
	unique := make(map[int64]struct{}, len(items))
	for _, it := range items {
		unique[it.ID] = struct{}{}
		if it.Quantity > 0 && total < quantityCap {
			total += int64(it.Quantity)
		}
	}
	if total > quantityCap {
		total = quantityCap
	}
	u := int64(len(unique))
	d := int64(distanceKm)
	if d < 0 {
		d = 0
	}

	days := 1 + ceilDiv(total, 2) + ceilDiv(3*u, 10) + ceilDiv(d, kmPerDay)
	return clampDays(days)
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

func clampDays(days int64) int {
	if days < minEtaDays {
		return minEtaDays
	}
	if days > maxEtaDays {
		return maxEtaDays
	}
	return int(days)
}
