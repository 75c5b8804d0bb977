package engine

import (
	"github.com/jonathan/project-estimator/internal/types"
)

// defaultRiskPercent is the contingency applied when the selected risk level
// matches no configured band.
const defaultRiskPercent = 0.12

// Risk levels recognized in the risk_level selection.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Bands is the overhead and percentile output of ComputeBands, all values
// unrounded.
type Bands struct {
	PMHours float64
	QAHours float64
	PMCost  float64
	QACost  float64
	P50     BandValue
	P80     BandValue
}

// BandValue is one percentile's hours and cost.
type BandValue struct {
	Hours float64
	Cost  float64
}

// ComputeBands derives pm/qa overhead from the build subtotal and the P50/P80
// percentile bands. P50 is build plus overhead with no risk padding; P80
// inflates both P50 hours and cost by the single scalar risk percentage.
func ComputeBands(buildHours, buildCost, pmPct, qaPct float64, riskLevel string, riskBands types.RiskBands, pmRate, qaRate float64) Bands {
	riskPct, _ := riskPercent(riskLevel, riskBands)
	return computeBands(buildHours, buildCost, pmPct, qaPct, riskPct, pmRate, qaRate)
}

func computeBands(buildHours, buildCost, pmPct, qaPct, riskPct, pmRate, qaRate float64) Bands {
	pmHours := buildHours * pmPct
	qaHours := buildHours * qaPct
	pmCost := pmHours * pmRate
	qaCost := qaHours * qaRate

	p50 := BandValue{
		Hours: buildHours + pmHours + qaHours,
		Cost:  buildCost + pmCost + qaCost,
	}
	p80 := BandValue{
		Hours: p50.Hours * (1 + riskPct),
		Cost:  p50.Cost * (1 + riskPct),
	}

	return Bands{
		PMHours: pmHours,
		QAHours: qaHours,
		PMCost:  pmCost,
		QACost:  qaCost,
		P50:     p50,
		P80:     p80,
	}
}

// riskPercent looks up the contingency percentage for a risk level. The
// second return is false when the level is unrecognized and the fixed default
// was used instead.
func riskPercent(level string, bands types.RiskBands) (float64, bool) {
	switch level {
	case RiskLow:
		return bands.Low, true
	case RiskMedium:
		return bands.Medium, true
	case RiskHigh:
		return bands.High, true
	default:
		return defaultRiskPercent, false
	}
}
