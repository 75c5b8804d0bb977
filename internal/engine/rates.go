package engine

import (
	"github.com/jonathan/project-estimator/internal/types"
)

// RateFor resolves the effective hourly rate for a role in a country:
// a country-specific user override wins, then the country's base rate, then 0.
// Rates are already denominated in the country's own currency; the engine
// performs no conversion.
func RateFor(role types.Role, country *types.Country, selections types.Selections) float64 {
	if country == nil {
		return 0
	}
	if overrides, ok := selections.RateOverrides()[country.Code].(map[string]any); ok {
		if rate, ok := toNumber(overrides[string(role)]); ok && rate >= 0 {
			return rate
		}
	}
	return country.BaseRate(role)
}

// ResolveTax returns the country's tax treatment with any user override for
// that country applied on top.
func ResolveTax(country *types.Country, selections types.Selections) types.Tax {
	if country == nil {
		return types.Tax{}
	}
	tax := country.Tax
	override, ok := selections.TaxOverrides()[country.Code].(map[string]any)
	if !ok {
		return tax
	}
	if included, ok := override["vatIncluded"].(bool); ok {
		tax.VATIncluded = included
	}
	if pct, ok := toNumber(override["vatPercent"]); ok && pct >= 0 {
		tax.VATPercent = pct
	}
	return tax
}

// CountryBaseRates returns the configured base rate for every role of the
// given country, before any override is applied. Intended for populating a
// rate-editing UI with defaults. Unknown codes fall back to the default
// country; an empty config yields all zeroes.
func CountryBaseRates(cfg *types.Config, countryCode string) map[types.Role]float64 {
	country := cfg.CountryByCode(countryCode)
	rates := make(map[types.Role]float64, len(types.Roles))
	for _, role := range types.Roles {
		rates[role] = country.BaseRate(role)
	}
	return rates
}
