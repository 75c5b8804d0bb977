package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupConfig() *Config {
	return &Config{
		Countries: []Country{
			{Code: "US", Currency: "USD"},
			{Code: "DE", Currency: "EUR"},
		},
		Levers: []Lever{
			{ID: "pages", Type: LeverNumber},
		},
		Currencies: map[string]string{"USD": "$"},
		Presets: []Preset{
			{ID: "starter", Label: "Starter"},
		},
	}
}

func TestCountryByCode_FallsBackToFirstCountry(t *testing.T) {
	cfg := lookupConfig()

	require.NotNil(t, cfg.CountryByCode("DE"))
	assert.Equal(t, "DE", cfg.CountryByCode("DE").Code)
	assert.Equal(t, "US", cfg.CountryByCode("ZZ").Code)
	assert.Equal(t, "US", cfg.CountryByCode("").Code)
}

func TestCountryByCode_EmptyConfigReturnsNil(t *testing.T) {
	cfg := &Config{}

	assert.Nil(t, cfg.CountryByCode("US"))
}

func TestLeverByID(t *testing.T) {
	cfg := lookupConfig()

	require.NotNil(t, cfg.LeverByID("pages"))
	assert.Nil(t, cfg.LeverByID("ghost"))
}

func TestPresetByID(t *testing.T) {
	cfg := lookupConfig()

	require.NotNil(t, cfg.PresetByID("starter"))
	assert.Nil(t, cfg.PresetByID("ghost"))
}

func TestCurrencySymbol_FallsBackToCode(t *testing.T) {
	cfg := lookupConfig()

	assert.Equal(t, "$", cfg.CurrencySymbol("USD"))
	assert.Equal(t, "EUR", cfg.CurrencySymbol("EUR"))
}

func TestRounding_Defaults(t *testing.T) {
	var r Rounding

	assert.Equal(t, 1, r.HoursPlaces())
	assert.Equal(t, 0, r.CurrencyPlaces())

	zero := 0
	two := 2
	r = Rounding{Hours: &zero, Currency: &two}
	assert.Equal(t, 0, r.HoursPlaces(), "explicit 0 is not the same as absent")
	assert.Equal(t, 2, r.CurrencyPlaces())
}

func TestConfigValidate_RequiresCountries(t *testing.T) {
	cfg := &Config{}

	assert.Error(t, cfg.Validate())
	assert.NoError(t, lookupConfig().Validate())
}

func TestBaseRate_MissingAndNegativeTreatedAsZero(t *testing.T) {
	country := &Country{
		Code: "US", Currency: "USD",
		BaseRates: map[Role]float64{RoleFrontend: 50, RoleBackend: -10},
	}

	assert.Equal(t, 50.0, country.BaseRate(RoleFrontend))
	assert.Zero(t, country.BaseRate(RoleSEO))
	assert.Zero(t, country.BaseRate(RoleBackend))
	assert.Zero(t, (*Country)(nil).BaseRate(RoleFrontend))
}

func TestOptionByValue(t *testing.T) {
	lever := &Lever{
		Options: []Option{{Value: "a"}, {Value: "b"}},
	}

	require.NotNil(t, lever.OptionByValue("b"))
	assert.Nil(t, lever.OptionByValue("c"))
}
