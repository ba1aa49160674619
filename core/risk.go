// Package core holds the risk classification and prediction logic for studentrisk.
package core

import "github.com/huangsam/studentrisk/schema"

// Thresholds for the deterministic bucketer, evaluated high to low.
const (
	lowThreshold    = 45.0
	mediumThreshold = 35.0
	highThreshold   = 25.0
)

// Bucket maps total internal marks to a categorical risk level.
// The input is expected to be pre-clamped to [0,60] by the caller, but the
// thresholds apply unconditionally: out-of-range totals still resolve to a
// bucket. Bucket is a pure total-order classifier, not a validator.
func Bucket(totalMarks float64) schema.RiskLevel {
	switch {
	case totalMarks >= lowThreshold:
		return schema.LowRisk
	case totalMarks >= mediumThreshold:
		return schema.MediumRisk
	case totalMarks >= highThreshold:
		return schema.HighRisk
	default:
		return schema.FailureRisk
	}
}

// Score rescales total internal marks to a 0-100 risk score.
func Score(totalMarks float64) float64 {
	return totalMarks / schema.MaxTotalMarks * 100.0
}

// Rank returns the ordinal position of a risk level: Failure < High <
// Medium < Low. Unknown labels rank below Failure.
func Rank(l schema.RiskLevel) int {
	switch l {
	case schema.FailureRisk:
		return 1
	case schema.HighRisk:
		return 2
	case schema.MediumRisk:
		return 3
	case schema.LowRisk:
		return 4
	default:
		return 0
	}
}

// Recalculate recomputes the derived fields of a student record from its
// component marks. Total, risk level and risk score always change together;
// callers must never mutate them independently.
func Recalculate(r *schema.StudentRecord) {
	r.TotalMarks = r.Cat1 + r.Cat2 + r.Assignment + r.Attendance + r.Quiz
	r.RiskLevel = Bucket(r.TotalMarks)
	r.RiskScore = Score(r.TotalMarks)
}
