package engine

import (
	"fmt"

	"github.com/jonathan/project-estimator/internal/types"
)

// CollectMultipliers scans visible select and multiselect levers for
// multiplier effects and composes them into per-key running factors, seeded
// at 1. Keys are role names or "all". Multiple contributing options multiply
// together, they never add. A non-finite configured factor is neutral (1):
// a malformed multiplier must never zero out hours.
func CollectMultipliers(cfg *types.Config, selections types.Selections, hiddenIDs map[string]bool) map[string]float64 {
	return collectMultipliers(cfg, selections, hiddenIDs, nil)
}

func collectMultipliers(cfg *types.Config, selections types.Selections, hiddenIDs map[string]bool, tr *tracer) map[string]float64 {
	factors := make(map[string]float64)

	for i := range cfg.Levers {
		lever := &cfg.Levers[i]
		if hiddenIDs[lever.ID] || !IsVisible(lever, selections) {
			continue
		}

		switch lever.Type {
		case types.LeverSelect:
			if opt := selectedOption(lever, selections, nil); opt != nil {
				multiplyOption(opt, factors, tr, lever.ID)
			}
		case types.LeverMultiselect:
			for _, value := range multiselectValues(lever, selections, nil) {
				if opt := lever.OptionByValue(value); opt != nil {
					multiplyOption(opt, factors, tr, lever.ID)
				}
			}
		}
	}

	return factors
}

func multiplyOption(opt *types.Option, factors map[string]float64, tr *tracer, leverID string) {
	for _, effect := range opt.Effects {
		if effect.Multiplier == nil {
			continue
		}
		factor := *effect.Multiplier
		if !isFinite(factor) {
			tr.note(types.AnomalyBadMultiplier, leverID,
				fmt.Sprintf("non-finite multiplier for %q treated as neutral", effect.Role))
			factor = 1
		}
		current, ok := factors[effect.Role]
		if !ok {
			current = 1
		}
		factors[effect.Role] = current * factor
	}
}

// ApplyMultipliers scales accumulated hours by the collected factors. Every
// role is scaled from the same pre-multiplier snapshot: hours[r] × factor(r)
// × factor("all"), with absent factors defaulting to 1. The input map is not
// modified.
func ApplyMultipliers(hours map[types.Role]float64, multipliers map[string]float64) map[types.Role]float64 {
	all, ok := multipliers[types.EffectAll]
	if !ok {
		all = 1
	}

	out := make(map[types.Role]float64, len(hours))
	for role, h := range hours {
		factor, ok := multipliers[string(role)]
		if !ok {
			factor = 1
		}
		out[role] = h * factor * all
	}
	return out
}
