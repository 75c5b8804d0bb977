package engine

import (
	"github.com/jonathan/project-estimator/internal/types"
)

// SeedDefaults returns a copy of selections with every missing entry filled
// from the config: country (first configured country), risk level (medium),
// and each lever's default value. Exported because the UI layer needs the
// same seeding the engine applies before resolving dependencies.
func SeedDefaults(cfg *types.Config, selections types.Selections) types.Selections {
	work := selections.Clone()

	if work.CountryCode() == "" && len(cfg.Countries) > 0 {
		work[types.KeyCountry] = cfg.Countries[0].Code
	}
	if _, ok := work[types.KeyRiskLevel]; !ok {
		work[types.KeyRiskLevel] = RiskMedium
	}

	for i := range cfg.Levers {
		lever := &cfg.Levers[i]
		if _, ok := work[lever.ID]; ok {
			continue
		}
		work[lever.ID] = leverDefault(lever)
	}

	return work
}

func leverDefault(lever *types.Lever) any {
	switch lever.Type {
	case types.LeverNumber:
		if n, ok := toNumber(lever.Default); ok {
			return n
		}
		return lever.Min
	case types.LeverSelect:
		if s, ok := toStringValue(lever.Default); ok && lever.OptionByValue(s) != nil {
			return s
		}
		if len(lever.Options) > 0 {
			return lever.Options[0].Value
		}
		return ""
	case types.LeverMultiselect:
		if values := toStringSlice(lever.Default); values != nil {
			return values
		}
		return []string{}
	default:
		return nil
	}
}

// ApplyPreset merges a named preset's fixed values, and its target country if
// it names one, over the current selection map. An unknown preset id is a
// no-op returning the input unchanged.
func ApplyPreset(cfg *types.Config, current types.Selections, presetID string) types.Selections {
	preset := cfg.PresetByID(presetID)
	if preset == nil {
		return current
	}

	out := current.Clone()
	for key, value := range preset.Values {
		out[key] = value
	}
	if preset.Country != "" {
		out[types.KeyCountry] = preset.Country
	}
	return out
}
