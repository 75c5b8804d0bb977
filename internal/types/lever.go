package types

// LeverType tags the input kind of a lever.
type LeverType string

// Supported lever types.
const (
	LeverNumber      LeverType = "number"
	LeverSelect      LeverType = "select"
	LeverMultiselect LeverType = "multiselect"
)

// Lever is a single named, user-adjustable cost driver. Exactly one of the
// type-specific field groups is meaningful, selected by Type; the engine
// ignores the rest.
type Lever struct {
	ID      string    `json:"id" validate:"required"`
	Label   string    `json:"label"`
	Type    LeverType `json:"type" validate:"required,oneof=number select multiselect"`
	Group   string    `json:"group,omitempty"`
	Default any       `json:"default,omitempty"`

	// number levers
	Min                 float64            `json:"min,omitempty"`
	Max                 float64            `json:"max,omitempty"`
	HoursPerUnit        map[Role]float64   `json:"hoursPerUnit,omitempty"`
	HoursBase           map[Role]float64   `json:"hoursBase,omitempty"`
	HoursPerExtraLocale map[Role]float64   `json:"hoursPerExtraLocale,omitempty"`
	BatchSize           float64            `json:"batchSize,omitempty"`
	HoursPerBatch       map[Role]float64   `json:"hoursPerBatch,omitempty"`

	// select and multiselect levers
	Options     []Option `json:"options,omitempty"`
	MaxSelected int      `json:"maxSelected,omitempty"`

	// VisibleWhen is a conjunction: the lever renders only if every rule's
	// referenced selection strictly equals the rule's value.
	VisibleWhen []VisibleRule `json:"visibleWhen,omitempty"`
}

// Option is one choice of a select or multiselect lever. Effects carry the
// option's per-role hour and multiplier contributions as tagged entries rather
// than stringly-keyed fields.
type Option struct {
	Value   string   `json:"value" validate:"required"`
	Label   string   `json:"label"`
	Effects []Effect `json:"effects,omitempty"`
}

// Effect is a single role-tagged contribution of an option. Hours adds to the
// role's accumulated hours; Multiplier scales them. Role may be "all" for
// multiplier effects only, scaling every role.
type Effect struct {
	Role       string   `json:"role" validate:"required"`
	Hours      *float64 `json:"hours,omitempty"`
	Multiplier *float64 `json:"multiplier,omitempty"`
}

// VisibleRule is one conjunct of a lever's visibility condition.
type VisibleRule struct {
	ID     string `json:"id" validate:"required"`
	Equals any    `json:"equals"`
}

// OptionByValue returns the option whose value matches, or nil.
func (l *Lever) OptionByValue(value string) *Option {
	for i := range l.Options {
		if l.Options[i].Value == value {
			return &l.Options[i]
		}
	}
	return nil
}
