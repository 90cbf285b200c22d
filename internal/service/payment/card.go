package payment

import (
	"strconv"
	"strings"

	"vibe-shop/internal/domain"
)

// PrefixRange matches when the first Digits characters of a number parse to a
// value within [Min, Max].
type PrefixRange struct {
	Digits int `yaml:"digits"`
	Min    int `yaml:"min"`
	Max    int `yaml:"max"`
}

func (r PrefixRange) match(num string) bool {
	if r.Digits <= 0 || len(num) < r.Digits {
		return false
	}
	v, err := strconv.Atoi(num[:r.Digits])
	if err != nil {
		return false
	}
	return v >= r.Min && v <= r.Max
}

// BrandRule assigns Brand to numbers of one of Lengths whose prefix falls in
// any of Prefixes.
type BrandRule struct {
	Brand      domain.CardBrand `yaml:"brand"`
	Lengths    []int            `yaml:"lengths"`
	DigitsOnly bool             `yaml:"digits_only"`
	Prefixes   []PrefixRange    `yaml:"prefixes"`
}

func (r BrandRule) match(num string) bool {
	if !containsInt(r.Lengths, len(num)) {
		return false
	}
	if r.DigitsOnly && !isDigits(num) {
		return false
	}
	for _, p := range r.Prefixes {
		if p.match(num) {
			return true
		}
	}
	return false
}

// CardRules is the read-only brand table. Rules are evaluated in order.
type CardRules struct {
	DeclineSentinel string      `yaml:"decline_sentinel"`
	Brands          []BrandRule `yaml:"brands"`
}

// DefaultCardRules returns the built-in Visa/Mastercard/Mir table.
func DefaultCardRules() CardRules {
	return CardRules{
		DeclineSentinel: "4000000000009995",
		Brands: []BrandRule{
			{
				Brand:    domain.BrandVisa,
				Lengths:  []int{13, 16, 19},
				Prefixes: []PrefixRange{{Digits: 1, Min: 4, Max: 4}},
			},
			{
				Brand:      domain.BrandMastercard,
				Lengths:    []int{16},
				DigitsOnly: true,
				Prefixes: []PrefixRange{
					{Digits: 2, Min: 51, Max: 55},
					{Digits: 4, Min: 2221, Max: 2720},
					{Digits: 6, Min: 222100, Max: 272099},
				},
			},
			{
				Brand:      domain.BrandMir,
				Lengths:    []int{16},
				DigitsOnly: true,
				Prefixes:   []PrefixRange{{Digits: 4, Min: 2200, Max: 2204}},
			},
		},
	}
}

// Classifier detects the card network of a number.
type Classifier struct {
	rules CardRules
}

// NewClassifier creates a Classifier over rules.
func NewClassifier(rules CardRules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the brand of number and its Luhn validity. The decline
// sentinel is reported as a valid visa_decline card.
func (c *Classifier) Classify(number string) domain.CardClassification {
	num := NormalizeNumber(number)
	if c.rules.DeclineSentinel != "" && num == c.rules.DeclineSentinel {
		return domain.CardClassification{Brand: domain.BrandVisaDecline, Valid: true}
	}
	return domain.CardClassification{Brand: c.brand(num), Valid: luhn(num)}
}

func (c *Classifier) brand(num string) domain.CardBrand {
	for _, r := range c.rules.Brands {
		if r.match(num) {
			return r.Brand
		}
	}
	return domain.BrandUnknown
}

// LuhnValid reports whether number passes the Luhn checksum. Spaces are ignored.
func LuhnValid(number string) bool {
	return luhn(NormalizeNumber(number))
}

func luhn(num string) bool {
	if !isDigits(num) {
		return false
	}
	sum := 0
	double := false
	for i := len(num) - 1; i >= 0; i-- {
		d := int(num[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// NormalizeNumber strips spaces from a card number.
func NormalizeNumber(number string) string {
	return strings.ReplaceAll(number, " ", "")
}

// Last4 returns the last four characters of a normalized number.
func Last4(num string) string {
	if len(num) <= 4 {
		return num
	}
	return num[len(num)-4:]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
