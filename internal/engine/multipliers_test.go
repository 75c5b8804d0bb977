package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/project-estimator/internal/types"
)

func TestCollectMultipliers_NoMultiplierKeysLeavesHoursUnchanged(t *testing.T) {
	cfg := &types.Config{
		Levers: []types.Lever{
			{
				ID: "cms", Type: types.LeverSelect,
				Options: []types.Option{
					{Value: "headless", Effects: []types.Effect{{Role: "backend", Hours: f64(40)}}},
				},
			},
		},
	}

	multipliers := CollectMultipliers(cfg, types.Selections{"cms": "headless"}, nil)
	hours := map[types.Role]float64{types.RoleBackend: 40}

	assert.Empty(t, multipliers)
	assert.Equal(t, hours, ApplyMultipliers(hours, multipliers))
}

func TestCollectMultipliers_ComposeMultiplicatively(t *testing.T) {
	cfg := &types.Config{
		Levers: []types.Lever{
			{
				ID: "quality", Type: types.LeverMultiselect,
				Options: []types.Option{
					{Value: "a11y", Effects: []types.Effect{{Role: "frontend", Multiplier: f64(1.1)}}},
					{Value: "perf", Effects: []types.Effect{{Role: "frontend", Multiplier: f64(1.1)}}},
				},
			},
		},
	}

	multipliers := CollectMultipliers(cfg, types.Selections{"quality": []string{"a11y", "perf"}}, nil)

	// Two ×1.1 options compose to ×1.21, not ×1.2.
	assert.InDelta(t, 1.21, multipliers["frontend"], 1e-9)
}

func TestCollectMultipliers_NonFiniteTreatedAsNeutral(t *testing.T) {
	cfg := &types.Config{
		Levers: []types.Lever{
			{
				ID: "rush", Type: types.LeverSelect,
				Options: []types.Option{
					{Value: "yes", Effects: []types.Effect{{Role: "all", Multiplier: f64(math.Inf(1))}}},
				},
			},
		},
	}

	multipliers := CollectMultipliers(cfg, types.Selections{"rush": "yes"}, nil)

	assert.Equal(t, 1.0, multipliers["all"])
}

func TestCollectMultipliers_SkipsHiddenLevers(t *testing.T) {
	cfg := &types.Config{
		Levers: []types.Lever{
			{
				ID: "rush", Type: types.LeverSelect,
				Options: []types.Option{
					{Value: "yes", Effects: []types.Effect{{Role: "all", Multiplier: f64(1.5)}}},
				},
			},
		},
	}

	multipliers := CollectMultipliers(cfg, types.Selections{"rush": "yes"}, map[string]bool{"rush": true})

	assert.Empty(t, multipliers)
}

func TestApplyMultipliers_AllStacksWithPerRole(t *testing.T) {
	hours := map[types.Role]float64{
		types.RoleFrontend: 10,
		types.RoleBackend:  20,
	}
	multipliers := map[string]float64{
		"frontend": 1.2,
		"all":      1.5,
	}

	out := ApplyMultipliers(hours, multipliers)

	assert.InDelta(t, 10*1.2*1.5, out[types.RoleFrontend], 1e-9)
	assert.InDelta(t, 20*1.5, out[types.RoleBackend], 1e-9)
	// Input snapshot untouched.
	assert.Equal(t, 10.0, hours[types.RoleFrontend])
}

func TestApplyMultipliers_DefaultsToOne(t *testing.T) {
	hours := map[types.Role]float64{types.RoleDesign: 7}

	out := ApplyMultipliers(hours, map[string]float64{})

	assert.Equal(t, 7.0, out[types.RoleDesign])
}
