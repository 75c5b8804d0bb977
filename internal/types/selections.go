package types

// Reserved selection keys. Everything else in a Selections map is keyed by
// lever id and holds that lever's current value: a string for select levers,
// a slice of strings for multiselect levers, a number for number levers.
const (
	KeyCountry       = "_country"
	KeyRoleAdjust    = "_roleAdjust"
	KeyRateOverrides = "_rateOverrides"
	KeyTaxOverrides  = "_taxOverrides"
	KeyRiskLevel     = "risk_level"
)

// Selections is the sparse, user- and default-populated input map driving a
// computation. The caller rebuilds it on every interaction and passes it fresh
// into the engine; the engine never retains one between calls.
type Selections map[string]any

// Clone returns a shallow copy with the nested reserved maps copied one level
// deep, so the engine can overwrite forced values without aliasing the
// caller's map.
func (s Selections) Clone() Selections {
	out := make(Selections, len(s))
	for k, v := range s {
		out[k] = v
	}
	if adj, ok := s[KeyRoleAdjust].(map[string]any); ok {
		copied := make(map[string]any, len(adj))
		for k, v := range adj {
			copied[k] = v
		}
		out[KeyRoleAdjust] = copied
	}
	return out
}

// CountryCode returns the selected country code, or "" when none is set.
func (s Selections) CountryCode() string {
	code, _ := s[KeyCountry].(string)
	return code
}

// RoleAdjust returns the manual per-role hour deltas, or nil when none are set.
// Values are left untyped; the engine coerces them numerically.
func (s Selections) RoleAdjust() map[string]any {
	adj, _ := s[KeyRoleAdjust].(map[string]any)
	return adj
}

// RateOverrides returns the per-country per-role rate overrides, or nil.
// Shape: countryCode -> role -> rate.
func (s Selections) RateOverrides() map[string]any {
	overrides, _ := s[KeyRateOverrides].(map[string]any)
	return overrides
}

// TaxOverrides returns the per-country tax overrides, or nil.
// Shape: countryCode -> {vatIncluded, vatPercent}.
func (s Selections) TaxOverrides() map[string]any {
	overrides, _ := s[KeyTaxOverrides].(map[string]any)
	return overrides
}
