package engine

import (
	"github.com/jonathan/project-estimator/internal/types"
)

// IsVisible reports whether a lever's own visibleWhen condition holds against
// the effective selection map. A lever with no visibleWhen is always visible.
// Resolver-level hiding is applied by the caller on top of this check.
func IsVisible(lever *types.Lever, selections types.Selections) bool {
	for _, rule := range lever.VisibleWhen {
		if !strictEquals(selections[rule.ID], rule.Equals) {
			return false
		}
	}
	return true
}

// VisibleLeverIDs re-derives the set of lever ids that should render, using
// the same seeding, resolution, and visibility logic as ComputeEstimate so the
// UI and the engine can never disagree.
func VisibleLeverIDs(cfg *types.Config, selections types.Selections) map[string]bool {
	seeded := SeedDefaults(cfg, selections)
	res := Resolve(cfg, seeded)

	visible := make(map[string]bool)
	for i := range cfg.Levers {
		lever := &cfg.Levers[i]
		if res.HiddenIDs[lever.ID] {
			continue
		}
		if !IsVisible(lever, res.Selections) {
			continue
		}
		visible[lever.ID] = true
	}
	return visible
}
