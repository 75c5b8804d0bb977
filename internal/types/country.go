package types

// Country describes a billing region: per-role hourly rates in the country's
// own currency plus its VAT treatment.
type Country struct {
	Code      string           `json:"code" validate:"required"`
	Name      string           `json:"name"`
	Currency  string           `json:"currency" validate:"required"`
	BaseRates map[Role]float64 `json:"baseRates"`
	Tax       Tax              `json:"tax"`
}

// Tax describes how VAT applies to a country's rates.
type Tax struct {
	VATIncluded bool    `json:"vatIncluded"`
	VATPercent  float64 `json:"vatPercent"`
}

// BaseRate returns the country's hourly rate for a role, or 0 when none is
// configured. Rates are never negative in a valid config; a missing entry is
// treated as a zero rate rather than an error.
func (c *Country) BaseRate(role Role) float64 {
	if c == nil || c.BaseRates == nil {
		return 0
	}
	rate, ok := c.BaseRates[role]
	if !ok || rate < 0 {
		return 0
	}
	return rate
}
