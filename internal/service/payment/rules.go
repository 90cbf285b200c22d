package payment

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCardRulesFile reads card rules from a YAML file.
func LoadCardRulesFile(path string) (CardRules, error) {
	f, err := os.Open(path)
	if err != nil {
		return CardRules{}, fmt.Errorf("open card rules: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadCardRules(f)
}

// LoadCardRules decodes and validates card rules from YAML.
func LoadCardRules(r io.Reader) (CardRules, error) {
	var rules CardRules
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil {
		return CardRules{}, fmt.Errorf("decode card rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return CardRules{}, err
	}
	return rules, nil
}

// Validate checks that every rule can match something.
func (r CardRules) Validate() error {
	if len(r.Brands) == 0 {
		return errors.New("card rules: no brands")
	}
	for i, b := range r.Brands {
		if b.Brand == "" {
			return fmt.Errorf("card rules: brand #%d has no name", i)
		}
		if len(b.Lengths) == 0 {
			return fmt.Errorf("card rules: brand %q has no lengths", b.Brand)
		}
		if len(b.Prefixes) == 0 {
			return fmt.Errorf("card rules: brand %q has no prefixes", b.Brand)
		}
		for _, p := range b.Prefixes {
			if p.Digits <= 0 || p.Min > p.Max {
				return fmt.Errorf("card rules: brand %q has bad prefix %+v", b.Brand, p)
			}
		}
	}
	if r.DeclineSentinel != "" && !isDigits(r.DeclineSentinel) {
		return fmt.Errorf("card rules: decline sentinel %q is not numeric", r.DeclineSentinel)
	}
	return nil
}
