package engine

import (
	"fmt"

	"github.com/jonathan/project-estimator/internal/types"
)

// ApplyManualDeltas adds user-entered per-role hour deltas on top of computed
// hours and returns the adjusted map plus the deltas that were actually
// applied. Only build roles are adjustable; pm and qa deltas are ignored
// because overhead roles are always derived, never manually set. Deltas are
// added verbatim with no floor; a role's hours may go negative, which is the
// deliberate escape hatch for correcting overestimates. The input map is not
// modified; callers keep it as the pre-adjustment snapshot.
func ApplyManualDeltas(hours map[types.Role]float64, roleAdjust map[string]any) (map[types.Role]float64, map[types.Role]float64) {
	return applyManualDeltas(hours, roleAdjust, nil)
}

func applyManualDeltas(hours map[types.Role]float64, roleAdjust map[string]any, tr *tracer) (map[types.Role]float64, map[types.Role]float64) {
	out := make(map[types.Role]float64, len(hours))
	for role, h := range hours {
		out[role] = h
	}

	applied := make(map[types.Role]float64)
	for key, raw := range roleAdjust {
		role := types.Role(key)
		delta, ok := toNumber(raw)
		if !ok || delta == 0 {
			continue
		}
		if types.IsOverheadRole(role) {
			tr.note(types.AnomalyOverheadDelta, key,
				fmt.Sprintf("manual delta for overhead role %q ignored", key))
			continue
		}
		if !types.IsBuildRole(role) {
			continue
		}
		out[role] += delta
		applied[role] = delta
	}

	return out, applied
}
