package payment

import "vibe-shop/internal/domain"

const acceptedLength = 16

// Policy decides whether a classified card may be charged.
type Policy struct {
	// RequireLuhn additionally rejects numbers failing the Luhn checksum.
	RequireLuhn bool
}

// Acceptable requires a known brand and a 16-digit number; Luhn only when
// RequireLuhn is set.
func (p Policy) Acceptable(number string, c domain.CardClassification) bool {
	num := NormalizeNumber(number)
	if c.Brand == domain.BrandUnknown {
		return false
	}
	if !isDigits(num) || len(num) != acceptedLength {
		return false
	}
	if p.RequireLuhn && !c.Valid {
		return false
	}
	return true
}
