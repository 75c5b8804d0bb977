package types

// Dependency is a cross-lever rule: whenever the If condition holds against
// the working selection map, the Then actions apply. Hide wins over a lever's
// own visibleWhen; Adjust forces selections regardless of user input.
type Dependency struct {
	If   Condition `json:"if"`
	Then Actions   `json:"then"`
}

// Condition matches when the referenced selection strictly equals the value.
type Condition struct {
	ID     string `json:"id" validate:"required"`
	Equals any    `json:"equals"`
}

// Actions are the consequences of a matched dependency condition.
type Actions struct {
	Hide   []string     `json:"hide,omitempty"`
	Show   []string     `json:"show,omitempty"`
	Adjust []Adjustment `json:"adjust,omitempty"`
}

// Adjustment forces a selection to a fixed value.
type Adjustment struct {
	ID  string `json:"id" validate:"required"`
	Set any    `json:"set"`
}
