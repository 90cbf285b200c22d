package payment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vibe-shop/internal/domain"
)

const rulesYAML = `
decline_sentinel: "4111111111111111"
brands:
  - brand: visa
    lengths: [16]
    prefixes:
      - {digits: 1, min: 4, max: 4}
  - brand: mir
    lengths: [16]
    digits_only: true
    prefixes:
      - {digits: 4, min: 2200, max: 2204}
`

func TestLoadCardRules(t *testing.T) {
	t.Parallel()

	rules, err := LoadCardRules(strings.NewReader(rulesYAML))
	require.NoError(t, err)
	require.Equal(t, "4111111111111111", rules.DeclineSentinel)
	require.Len(t, rules.Brands, 2)
	require.Equal(t, domain.BrandMir, rules.Brands[1].Brand)
	require.True(t, rules.Brands[1].DigitsOnly)

	c := NewClassifier(rules)
	require.Equal(t, domain.BrandVisaDecline, c.Classify("4111111111111111").Brand)
	require.Equal(t, domain.BrandVisa, c.Classify("4000000000009995").Brand)
	require.Equal(t, domain.BrandUnknown, c.Classify("5105105105105100").Brand)
}

func TestLoadCardRules_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown field": "brands: []\nfoo: 1\n",
		"no brands":     "decline_sentinel: \"1\"\n",
		"no lengths":    "brands:\n  - brand: visa\n    prefixes: [{digits: 1, min: 4, max: 4}]\n",
		"bad prefix":    "brands:\n  - brand: visa\n    lengths: [16]\n    prefixes: [{digits: 1, min: 5, max: 4}]\n",
		"bad sentinel":  "decline_sentinel: abc\nbrands:\n  - brand: visa\n    lengths: [16]\n    prefixes: [{digits: 1, min: 4, max: 4}]\n",
		"not yaml":      "brands: [",
	}
	for name, in := range cases {
		_, err := LoadCardRules(strings.NewReader(in))
		require.Error(t, err, name)
	}
}

func TestLoadCardRulesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rulesYAML), 0o600))

	rules, err := LoadCardRulesFile(path)
	require.NoError(t, err)
	require.Len(t, rules.Brands, 2)

	_, err = LoadCardRulesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultCardRules_Valid(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultCardRules().Validate())
}
