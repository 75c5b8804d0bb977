package engine

import (
	"github.com/jonathan/project-estimator/internal/types"
)

// maxResolvePasses caps dependency resolution so that cyclic or contradictory
// rule sets still terminate. Hitting the cap yields a bounded but possibly
// non-converged result; callers see this through Resolution.Converged rather
// than an error.
const maxResolvePasses = 6

// Resolution is the outcome of expanding a raw selection map against the
// config's dependency rules.
type Resolution struct {
	// Selections is the effective selection map with all forced values applied.
	Selections types.Selections
	// HiddenIDs holds every lever id hidden by a matched dependency. Hiding
	// at this level overrides a lever's own visibleWhen.
	HiddenIDs map[string]bool
	// Converged is false when the pass cap was reached while rules were still
	// changing selections; the output is then cap-dependent.
	Converged bool
}

// Resolve expands selections to a fixed point under the config's dependencies.
// Each pass applies every dependency whose condition currently holds: hide ids
// are unioned into the hidden set, show ids are removed from it, and adjust
// entries overwrite differing selections. Passes repeat until a pass forces no
// new value or the cap is reached. Resolve never fails; re-running it on its
// own output changes nothing.
func Resolve(cfg *types.Config, selections types.Selections) Resolution {
	return resolve(cfg, selections, nil)
}

func resolve(cfg *types.Config, selections types.Selections, tr *tracer) Resolution {
	work := selections.Clone()
	hidden := make(map[string]bool)
	converged := false

	for pass := 0; pass < maxResolvePasses; pass++ {
		changed := false

		for i := range cfg.Dependencies {
			dep := &cfg.Dependencies[i]
			if !strictEquals(work[dep.If.ID], dep.If.Equals) {
				continue
			}

			for _, id := range dep.Then.Hide {
				hidden[id] = true
			}
			for _, id := range dep.Then.Show {
				delete(hidden, id)
			}
			for _, adj := range dep.Then.Adjust {
				if !strictEquals(work[adj.ID], adj.Set) {
					work[adj.ID] = adj.Set
					changed = true
				}
			}
		}

		if !changed {
			converged = true
			break
		}
	}

	if !converged {
		tr.note(types.AnomalyNotConverged, "",
			"dependency resolution still changing after pass cap; output is cap-dependent")
	}

	return Resolution{
		Selections: work,
		HiddenIDs:  hidden,
		Converged:  converged,
	}
}
