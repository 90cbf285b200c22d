package domain

// CartItem is a cart line as seen by the delivery estimator.
type CartItem struct {
	ID       int64
	Quantity int
}

// Coordinates is a geographic point in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the point lies within [-90,90] x [-180,180].
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// EtaLayout is the DD.MM.YYYY layout of delivery dates.
const EtaLayout = "02.01.2006"

// EtaResult is a delivery estimate.
type EtaResult struct {
	DistanceKm int
	Days       int
	Date       string
}
