package models

import (
	"fmt"

	dErrors "unipick/pkg/domain-errors"
)

// Country is the closed set of survey targets. Its value is the literal the
// backend expects in target_country.
type Country string

const (
	CountryUSA       Country = "USA"
	CountryAustralia Country = "Australia"
	CountryUK        Country = "UK"
	CountrySingapore Country = "Singapore"
)

// DefaultCountry is used when navigation carries no country.
const DefaultCountry = CountryUSA

// Countries lists every supported target in display order.
var Countries = []Country{CountryUSA, CountryUK, CountryAustralia, CountrySingapore}

func (c Country) IsValid() bool {
	switch c {
	case CountryUSA, CountryAustralia, CountryUK, CountrySingapore:
		return true
	}
	return false
}

func (c Country) String() string {
	return string(c)
}

// ParseCountry is an exact literal lookup.
func ParseCountry(s string) (Country, error) {
	c := Country(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unsupported country %q", s))
	}
	return c, nil
}

// ResolveCountry maps a navigation parameter to a country: empty selects the
// default, anything else must match a literal exactly.
func ResolveCountry(param string) (Country, error) {
	if param == "" {
		return DefaultCountry, nil
	}
	return ParseCountry(param)
}

// NewForm returns the empty form for a country.
func NewForm(c Country) (Form, error) {
	switch c {
	case CountryUSA:
		return NewUSAForm(), nil
	case CountryAustralia:
		return NewAustraliaForm(), nil
	case CountryUK:
		return NewUKForm(), nil
	case CountrySingapore:
		return NewSingaporeForm(), nil
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unsupported country %q", c))
	}
}
