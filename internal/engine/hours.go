package engine

import (
	"fmt"
	"math"

	"github.com/jonathan/project-estimator/internal/types"
)

// AccumulateHours walks every visible lever and converts its current value
// into per-role hour contributions. The returned map has an entry for every
// build role, starting from zero; pm and qa are never accumulated here.
func AccumulateHours(cfg *types.Config, selections types.Selections, hiddenIDs map[string]bool) map[types.Role]float64 {
	return accumulateHours(cfg, selections, hiddenIDs, nil)
}

func accumulateHours(cfg *types.Config, selections types.Selections, hiddenIDs map[string]bool, tr *tracer) map[types.Role]float64 {
	hours := zeroRoleHours()

	for i := range cfg.Levers {
		lever := &cfg.Levers[i]
		if hiddenIDs[lever.ID] || !IsVisible(lever, selections) {
			continue
		}

		switch lever.Type {
		case types.LeverNumber:
			accumulateNumber(lever, selections, hours, tr)
		case types.LeverSelect:
			accumulateSelect(lever, selections, hours, tr)
		case types.LeverMultiselect:
			accumulateMultiselect(lever, selections, hours, tr)
		}
	}

	return hours
}

// accumulateNumber applies each declared hour-generation rule of a number
// lever independently and additively: linear per-unit hours, base-plus-extra
// locale hours, and ceiling-divided batch hours may all combine on one lever.
func accumulateNumber(lever *types.Lever, selections types.Selections, hours map[types.Role]float64, tr *tracer) {
	n := clampedNumberValue(lever, selections[lever.ID], tr)

	for role, perUnit := range lever.HoursPerUnit {
		addHours(hours, role, effectNumber(perUnit)*n, tr, lever.ID)
	}

	if n > 0 {
		for role, base := range lever.HoursBase {
			addHours(hours, role, effectNumber(base), tr, lever.ID)
		}
	}
	if n > 1 {
		for role, perExtra := range lever.HoursPerExtraLocale {
			addHours(hours, role, effectNumber(perExtra)*(n-1), tr, lever.ID)
		}
	}

	if lever.BatchSize > 0 && len(lever.HoursPerBatch) > 0 {
		batches := math.Ceil(n / lever.BatchSize)
		if batches < 0 {
			batches = 0
		}
		for role, perBatch := range lever.HoursPerBatch {
			addHours(hours, role, effectNumber(perBatch)*batches, tr, lever.ID)
		}
	}
}

func accumulateSelect(lever *types.Lever, selections types.Selections, hours map[types.Role]float64, tr *tracer) {
	opt := selectedOption(lever, selections, tr)
	if opt == nil {
		return
	}
	addOptionHours(opt, hours, tr, lever.ID)
}

func accumulateMultiselect(lever *types.Lever, selections types.Selections, hours map[types.Role]float64, tr *tracer) {
	for _, value := range multiselectValues(lever, selections, tr) {
		opt := lever.OptionByValue(value)
		if opt == nil {
			tr.note(types.AnomalyUnknownOption, lever.ID,
				fmt.Sprintf("selected value %q matches no option; skipped", value))
			continue
		}
		addOptionHours(opt, hours, tr, lever.ID)
	}
}

func addOptionHours(opt *types.Option, hours map[types.Role]float64, tr *tracer, leverID string) {
	for _, effect := range opt.Effects {
		if effect.Hours == nil {
			continue
		}
		addHours(hours, types.Role(effect.Role), effectNumber(*effect.Hours), tr, leverID)
	}
}

// addHours adds a contribution to a build role. Contributions targeting pm,
// qa, or an unknown role are dropped: overhead roles are always derived from
// the build subtotal, never lever-accumulated.
func addHours(hours map[types.Role]float64, role types.Role, amount float64, tr *tracer, leverID string) {
	if amount == 0 {
		return
	}
	if !types.IsBuildRole(role) {
		tr.note(types.AnomalyBadNumber, leverID,
			fmt.Sprintf("hour contribution for non-build role %q ignored", role))
		return
	}
	hours[role] += amount
}

// clampedNumberValue coerces a number lever's selection into [min, max].
// Non-numeric values fall back to the lever's min; an absent upper bound
// (max <= min) clamps only from below.
func clampedNumberValue(lever *types.Lever, raw any, tr *tracer) float64 {
	n, ok := toNumber(raw)
	if !ok {
		if raw != nil {
			tr.note(types.AnomalyBadNumber, lever.ID, "non-numeric value; using minimum")
		}
		n = lever.Min
	}

	if n < lever.Min {
		tr.note(types.AnomalyClampedValue, lever.ID,
			fmt.Sprintf("value %v below minimum %v", n, lever.Min))
		n = lever.Min
	}
	if lever.Max > lever.Min && n > lever.Max {
		tr.note(types.AnomalyClampedValue, lever.ID,
			fmt.Sprintf("value %v above maximum %v", n, lever.Max))
		n = lever.Max
	}
	return n
}

// selectedOption resolves a select lever's current choice, falling back to the
// first option when the current value matches none.
func selectedOption(lever *types.Lever, selections types.Selections, tr *tracer) *types.Option {
	if len(lever.Options) == 0 {
		return nil
	}
	value, _ := toStringValue(selections[lever.ID])
	if opt := lever.OptionByValue(value); opt != nil {
		return opt
	}
	if value != "" {
		tr.note(types.AnomalyUnknownOption, lever.ID,
			fmt.Sprintf("value %q matches no option; using first option", value))
	}
	return &lever.Options[0]
}

// multiselectValues returns a multiselect lever's chosen values, trimmed to
// maxSelected when configured.
func multiselectValues(lever *types.Lever, selections types.Selections, tr *tracer) []string {
	values := toStringSlice(selections[lever.ID])
	if lever.MaxSelected > 0 && len(values) > lever.MaxSelected {
		tr.note(types.AnomalyTrimmedSelected, lever.ID,
			fmt.Sprintf("%d values selected, keeping first %d", len(values), lever.MaxSelected))
		values = values[:lever.MaxSelected]
	}
	return values
}

// effectNumber sanitizes a configured hour amount: non-finite values
// contribute nothing.
func effectNumber(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func zeroRoleHours() map[types.Role]float64 {
	hours := make(map[types.Role]float64, len(types.BuildRoles))
	for _, role := range types.BuildRoles {
		hours[role] = 0
	}
	return hours
}
