package types

import (
	"github.com/go-playground/validator/v10"
)

// Config aggregates everything the estimation engine evaluates against. It is
// loaded once, treated as immutable, and passed explicitly into every engine
// call; there is no ambient configuration state.
type Config struct {
	Countries       []Country         `json:"countries" validate:"required,min=1,dive"`
	Levers          []Lever           `json:"levers" validate:"dive"`
	Dependencies    []Dependency      `json:"dependencies,omitempty" validate:"dive"`
	GlobalOverheads GlobalOverheads   `json:"globalOverheads"`
	OutputConfig    OutputConfig      `json:"outputConfig"`
	Currencies      map[string]string `json:"currencies,omitempty"`
	Presets         []Preset          `json:"presets,omitempty" validate:"dive"`
}

// GlobalOverheads is the overhead and risk policy applied to every estimate.
type GlobalOverheads struct {
	PMPercentOfBuild     float64   `json:"pmPercentOfBuild" validate:"gte=0"`
	QAPercentOfBuild     float64   `json:"qaPercentOfBuild" validate:"gte=0"`
	ContingencyRiskBands RiskBands `json:"contingencyRiskBands"`
}

// RiskBands maps a risk level to its contingency percentage.
type RiskBands struct {
	Low    float64 `json:"low" validate:"gte=0"`
	Medium float64 `json:"medium" validate:"gte=0"`
	High   float64 `json:"high" validate:"gte=0"`
}

// OutputConfig controls result formatting.
type OutputConfig struct {
	Rounding Rounding `json:"rounding"`
}

// Rounding holds decimal-place precision for hours and currency outputs.
// Fields are pointers so an explicit 0 is distinguishable from an absent
// value; absent values use the engine defaults (1 for hours, 0 for currency).
type Rounding struct {
	Hours    *int `json:"hours,omitempty" validate:"omitempty,gte=0,lte=6"`
	Currency *int `json:"currency,omitempty" validate:"omitempty,gte=0,lte=6"`
}

// HoursPlaces returns the configured hours precision, defaulting to 1.
func (r Rounding) HoursPlaces() int {
	if r.Hours == nil {
		return 1
	}
	return *r.Hours
}

// CurrencyPlaces returns the configured currency precision, defaulting to 0.
func (r Rounding) CurrencyPlaces() int {
	if r.Currency == nil {
		return 0
	}
	return *r.Currency
}

// Preset is a named bundle of selection values applied atomically, optionally
// retargeting the estimate to another country.
type Preset struct {
	ID      string         `json:"id" validate:"required"`
	Label   string         `json:"label"`
	Country string         `json:"country,omitempty"`
	Values  map[string]any `json:"values,omitempty"`
}

// LeverByID returns the lever with the given id, or nil.
func (c *Config) LeverByID(id string) *Lever {
	for i := range c.Levers {
		if c.Levers[i].ID == id {
			return &c.Levers[i]
		}
	}
	return nil
}

// CountryByCode returns the country with the given code, falling back to the
// first configured country when the code is unknown or empty. Returns nil only
// when no countries are configured at all.
func (c *Config) CountryByCode(code string) *Country {
	for i := range c.Countries {
		if c.Countries[i].Code == code {
			return &c.Countries[i]
		}
	}
	if len(c.Countries) > 0 {
		return &c.Countries[0]
	}
	return nil
}

// PresetByID returns the preset with the given id, or nil.
func (c *Config) PresetByID(id string) *Preset {
	for i := range c.Presets {
		if c.Presets[i].ID == id {
			return &c.Presets[i]
		}
	}
	return nil
}

// CurrencySymbol returns the display symbol for a currency code, falling back
// to the code itself when no symbol is configured.
func (c *Config) CurrencySymbol(code string) string {
	if symbol, ok := c.Currencies[code]; ok && symbol != "" {
		return symbol
	}
	return code
}

// Validate validates the Config using the validator.
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
