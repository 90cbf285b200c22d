package domain

// CardBrand is the payment network a card number belongs to.
type CardBrand string

// List of card brands
const (
	BrandVisa        CardBrand = "visa"
	BrandMastercard  CardBrand = "mastercard"
	BrandMir         CardBrand = "mir"
	BrandVisaDecline CardBrand = "visa_decline"
	BrandUnknown     CardBrand = "unknown"
)

// CardClassification is the outcome of classifying a card number.
type CardClassification struct {
	Brand CardBrand
	Valid bool
}
