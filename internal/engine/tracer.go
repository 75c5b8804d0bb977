package engine

import (
	"github.com/jonathan/project-estimator/internal/types"
)

// tracer accumulates the anomalies a computation gathers along the way.
// Anomalies are emitted in the debug trace, never thrown: every degenerate
// input still produces a best-effort numeric result. A nil tracer discards.
type tracer struct {
	anomalies []types.Anomaly
}

func (t *tracer) note(code, subject, message string) {
	if t == nil {
		return
	}
	t.anomalies = append(t.anomalies, types.Anomaly{
		Code:    code,
		Subject: subject,
		Message: message,
	})
}
