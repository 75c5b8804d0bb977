package types

// EstimateResult is the full wire contract between the engine and its
// presentation layer. Every role in Roles has an entry in Hours and Cost, zero
// or not; pm and qa always carry their overhead-derived values.
type EstimateResult struct {
	Hours    map[Role]float64 `json:"hours"`
	Cost     map[Role]float64 `json:"cost"`
	Subtotal Subtotal         `json:"subtotal"`
	Overhead Overhead         `json:"overheads"`
	P50      Band             `json:"p50"`
	P80      Band             `json:"p80"`
	Currency string           `json:"currency"`
	Symbol   string           `json:"symbol"`
	Tax      Tax              `json:"tax"`
	Trace    DebugTrace       `json:"trace"`
}

// Subtotal is the build-roles-only total before overhead and risk.
type Subtotal struct {
	Hours float64 `json:"hours"`
	Cost  float64 `json:"cost"`
}

// Overhead is the pm/qa block derived from the build subtotal.
type Overhead struct {
	PMHours float64 `json:"pmHours"`
	PMCost  float64 `json:"pmCost"`
	QAHours float64 `json:"qaHours"`
	QACost  float64 `json:"qaCost"`
}

// Band is one percentile estimate. CostWithVAT equals Cost when the selected
// country's rates already include VAT.
type Band struct {
	Hours       float64 `json:"hours"`
	Cost        float64 `json:"cost"`
	CostWithVAT float64 `json:"costWithVat"`
}

// DebugTrace exposes the intermediate state of a computation for
// introspection and testing; it is not meant for end-user display.
type DebugTrace struct {
	EstimateID     string             `json:"estimateId"`
	HiddenLeverIDs []string           `json:"hiddenLeverIds"`
	Multipliers    map[string]float64 `json:"multipliers"`
	Rates          map[Role]float64   `json:"rates"`
	PreAdjustHours map[Role]float64   `json:"preAdjustHours"`
	RoleAdjust     map[Role]float64   `json:"roleAdjust"`
	RiskLevel      string             `json:"riskLevel"`
	RiskPercent    float64            `json:"riskPercent"`
	Converged      bool               `json:"converged"`
	Anomalies      []Anomaly          `json:"anomalies,omitempty"`
}

// Anomaly records a defaulted or ignored input gathered during computation.
// Anomalies are emitted, never thrown: every degenerate input still produces a
// best-effort numeric result.
type Anomaly struct {
	Code    string `json:"code"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Anomaly codes.
const (
	AnomalyClampedValue    = "CLAMPED_VALUE"
	AnomalyUnknownOption   = "UNKNOWN_OPTION"
	AnomalyBadNumber       = "BAD_NUMBER"
	AnomalyBadMultiplier   = "BAD_MULTIPLIER"
	AnomalyUnknownRisk     = "UNKNOWN_RISK_LEVEL"
	AnomalyOverheadDelta   = "OVERHEAD_DELTA_IGNORED"
	AnomalyNotConverged    = "DEPENDENCY_CAP_REACHED"
	AnomalyTrimmedSelected = "MAX_SELECTED_TRIMMED"
)
