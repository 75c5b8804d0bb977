// Package engine implements the pure, configuration-driven estimation
// computation: it turns a declarative lever/dependency graph plus a sparse
// selection map into a deterministic hours-and-cost breakdown.
package engine

import (
	"math"
	"strconv"
)

// toNumber coerces a selection value to a float64. Numeric JSON values decode
// as float64; integers appear when selections are built in code; strings are
// parsed. NaN and infinities are rejected so they can be defaulted upstream.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, isFinite(n)
	case float32:
		return float64(n), isFinite(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil || !isFinite(parsed) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// toStringValue coerces a selection value to a string without formatting
// numbers; only genuine strings count.
func toStringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// toStringSlice coerces a multiselect selection value to its chosen option
// values. JSON arrays decode as []any; non-string elements are dropped.
func toStringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// strictEquals compares two selection values with no type coercion beyond
// treating all numeric representations as one numeric type. A string never
// equals a number, a missing selection never equals anything but nil.
func strictEquals(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if an, aok := numericValue(a); aok {
		bn, bok := numericValue(b)
		return bok && an == bn
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		// Slices and maps are never condition values in a valid config.
		return false
	}
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
