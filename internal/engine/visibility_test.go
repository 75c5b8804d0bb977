package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/project-estimator/internal/types"
)

func TestIsVisible_NoConditionAlwaysVisible(t *testing.T) {
	lever := &types.Lever{ID: "pages", Type: types.LeverNumber}

	assert.True(t, IsVisible(lever, types.Selections{}))
}

func TestIsVisible_AllRulesMustHold(t *testing.T) {
	lever := &types.Lever{
		ID:   "shop_extras",
		Type: types.LeverSelect,
		VisibleWhen: []types.VisibleRule{
			{ID: "site_type", Equals: "shop"},
			{ID: "payments", Equals: "full"},
		},
	}

	assert.True(t, IsVisible(lever, types.Selections{"site_type": "shop", "payments": "full"}))
	assert.False(t, IsVisible(lever, types.Selections{"site_type": "shop", "payments": "none"}))
	assert.False(t, IsVisible(lever, types.Selections{"site_type": "shop"}))
}

func TestIsVisible_StrictEqualityNoCoercion(t *testing.T) {
	lever := &types.Lever{
		ID:          "locales_extra",
		Type:        types.LeverNumber,
		VisibleWhen: []types.VisibleRule{{ID: "locales", Equals: 2.0}},
	}

	// A string "2" never equals the number 2.
	assert.False(t, IsVisible(lever, types.Selections{"locales": "2"}))
	assert.True(t, IsVisible(lever, types.Selections{"locales": 2.0}))
	// Integer and float representations are the same number.
	assert.True(t, IsVisible(lever, types.Selections{"locales": 2}))
}

func TestVisibleLeverIDs_CombinesHiddenAndVisibleWhen(t *testing.T) {
	cfg := &types.Config{
		Countries: []types.Country{{Code: "US", Currency: "USD"}},
		Levers: []types.Lever{
			{ID: "site_type", Type: types.LeverSelect, Options: []types.Option{
				{Value: "landing"}, {Value: "shop"},
			}},
			{ID: "cms", Type: types.LeverSelect, Options: []types.Option{{Value: "none"}}},
			{ID: "checkout", Type: types.LeverSelect,
				VisibleWhen: []types.VisibleRule{{ID: "site_type", Equals: "shop"}},
				Options:     []types.Option{{Value: "standard"}}},
		},
		Dependencies: []types.Dependency{
			{
				If:   types.Condition{ID: "site_type", Equals: "landing"},
				Then: types.Actions{Hide: []string{"cms"}},
			},
		},
	}

	visible := VisibleLeverIDs(cfg, types.Selections{"site_type": "landing"})

	assert.True(t, visible["site_type"])
	assert.False(t, visible["cms"], "hidden by dependency")
	assert.False(t, visible["checkout"], "visibleWhen not satisfied")

	visible = VisibleLeverIDs(cfg, types.Selections{"site_type": "shop"})

	assert.True(t, visible["cms"])
	assert.True(t, visible["checkout"])
}

func TestVisibleLeverIDs_MatchesComputeEstimateVisibility(t *testing.T) {
	// A lever hidden by a dependency must contribute no hours, mirroring its
	// absence from the visible id set.
	hours := 40.0
	cfg := &types.Config{
		Countries: []types.Country{{Code: "US", Currency: "USD"}},
		Levers: []types.Lever{
			{ID: "site_type", Type: types.LeverSelect, Options: []types.Option{
				{Value: "landing"}, {Value: "shop"},
			}},
			{ID: "cms", Type: types.LeverSelect, Options: []types.Option{
				{Value: "headless", Effects: []types.Effect{{Role: "backend", Hours: &hours}}},
			}},
		},
		Dependencies: []types.Dependency{
			{
				If:   types.Condition{ID: "site_type", Equals: "landing"},
				Then: types.Actions{Hide: []string{"cms"}},
			},
		},
	}
	selections := types.Selections{"site_type": "landing", "cms": "headless"}

	visible := VisibleLeverIDs(cfg, selections)
	result := ComputeEstimate(cfg, selections)

	assert.False(t, visible["cms"])
	assert.Zero(t, result.Hours[types.RoleBackend])
	assert.Contains(t, result.Trace.HiddenLeverIDs, "cms")
}
