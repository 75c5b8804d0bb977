package engine

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/project-estimator/internal/types"
)

// ComputeEstimate is the single computation entry point: raw selections are
// seeded with defaults, expanded against the dependency rules, accumulated
// into per-role hours, scaled by multipliers, adjusted by manual deltas,
// priced at the resolved country rates, topped with pm/qa overhead and risk
// bands, and rounded into the final result. The computation is pure and
// synchronous: it never fails, holds no state between calls, and treats the
// config as read-only. Degenerate inputs are defaulted and recorded as
// anomalies in the debug trace. The only precondition worth caring about is a
// non-empty country list; without one every rate resolves to zero.
func ComputeEstimate(cfg *types.Config, rawSelections types.Selections) *types.EstimateResult {
	tr := &tracer{}

	selections := SeedDefaults(cfg, rawSelections)
	res := resolve(cfg, selections, tr)

	accumulated := accumulateHours(cfg, res.Selections, res.HiddenIDs, tr)
	multipliers := collectMultipliers(cfg, res.Selections, res.HiddenIDs, tr)
	preAdjust := ApplyMultipliers(accumulated, multipliers)
	hours, appliedDeltas := applyManualDeltas(preAdjust, res.Selections.RoleAdjust(), tr)

	country := cfg.CountryByCode(res.Selections.CountryCode())
	rates := make(map[types.Role]float64, len(types.Roles))
	for _, role := range types.Roles {
		rates[role] = RateFor(role, country, res.Selections)
	}

	buildHours := 0.0
	buildCost := 0.0
	cost := make(map[types.Role]float64, len(types.BuildRoles))
	for _, role := range types.BuildRoles {
		cost[role] = hours[role] * rates[role]
		buildHours += hours[role]
		buildCost += cost[role]
	}

	riskLevel, riskPct := resolveRisk(res.Selections, cfg.GlobalOverheads.ContingencyRiskBands, tr)
	bands := computeBands(buildHours, buildCost,
		cfg.GlobalOverheads.PMPercentOfBuild, cfg.GlobalOverheads.QAPercentOfBuild,
		riskPct, rates[types.RolePM], rates[types.RoleQA])

	tax := ResolveTax(country, res.Selections)

	rounding := cfg.OutputConfig.Rounding
	hp := rounding.HoursPlaces()
	cp := rounding.CurrencyPlaces()

	result := &types.EstimateResult{
		Hours: make(map[types.Role]float64, len(types.Roles)),
		Cost:  make(map[types.Role]float64, len(types.Roles)),
		Subtotal: types.Subtotal{
			Hours: Round(buildHours, hp),
			Cost:  Round(buildCost, cp),
		},
		Overhead: types.Overhead{
			PMHours: Round(bands.PMHours, hp),
			PMCost:  Round(bands.PMCost, cp),
			QAHours: Round(bands.QAHours, hp),
			QACost:  Round(bands.QACost, cp),
		},
		P50: roundedBand(bands.P50, tax, hp, cp),
		P80: roundedBand(bands.P80, tax, hp, cp),
		Tax: tax,
	}

	if country != nil {
		result.Currency = country.Currency
		result.Symbol = cfg.CurrencySymbol(country.Currency)
	}

	// Per-role breakdown: build roles carry their accumulated values, pm and
	// qa always carry the overhead derivation.
	for _, role := range types.BuildRoles {
		result.Hours[role] = Round(hours[role], hp)
		result.Cost[role] = Round(cost[role], cp)
	}
	result.Hours[types.RolePM] = result.Overhead.PMHours
	result.Cost[types.RolePM] = result.Overhead.PMCost
	result.Hours[types.RoleQA] = result.Overhead.QAHours
	result.Cost[types.RoleQA] = result.Overhead.QACost

	result.Trace = types.DebugTrace{
		EstimateID:     uuid.New().String(),
		HiddenLeverIDs: sortedIDs(res.HiddenIDs),
		Multipliers:    multipliers,
		Rates:          rates,
		PreAdjustHours: preAdjust,
		RoleAdjust:     appliedDeltas,
		RiskLevel:      riskLevel,
		RiskPercent:    riskPct,
		Converged:      res.Converged,
		Anomalies:      tr.anomalies,
	}

	return result
}

// resolveRisk reads the risk_level selection, defaulting to medium when absent
// or non-string and to the fixed 12% contingency when the level names no
// configured band.
func resolveRisk(selections types.Selections, bands types.RiskBands, tr *tracer) (string, float64) {
	level, ok := toStringValue(selections[types.KeyRiskLevel])
	if !ok || level == "" {
		level = RiskMedium
	}
	pct, known := riskPercent(level, bands)
	if !known {
		tr.note(types.AnomalyUnknownRisk, types.KeyRiskLevel,
			fmt.Sprintf("unknown risk level %q; using default %.0f%%", level, defaultRiskPercent*100))
	}
	return level, pct
}

func roundedBand(band BandValue, tax types.Tax, hoursPlaces, currencyPlaces int) types.Band {
	costWithVAT := band.Cost
	if !tax.VATIncluded && tax.VATPercent > 0 {
		costWithVAT = band.Cost * (1 + tax.VATPercent/100)
	}
	return types.Band{
		Hours:       Round(band.Hours, hoursPlaces),
		Cost:        Round(band.Cost, currencyPlaces),
		CostWithVAT: Round(costWithVAT, currencyPlaces),
	}
}

func sortedIDs(ids map[string]bool) []string {
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
