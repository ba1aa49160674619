// Package schema has configs, models and shared constants for all parts of studentrisk.
package schema

import "math"

// StudentRecord represents a single student row in the roster.
// Identity fields are opaque to the scoring core; the five mark components
// drive the derived fields. A mark of NaN means the value is missing in the
// source data.
type StudentRecord struct {
	StudentID  string // Unique student identifier (e.g. STU1042)
	Name       string // Full name
	Email      string // Contact email
	Phone      string // Contact phone
	Age        int    // Age in years
	Gender     string // Self-reported gender
	CourseName string // Enrolled course name
	CourseCode string // Enrolled course code

	Cat1       float64 // CAT 1 marks, valid range [0,10]
	Cat2       float64 // CAT 2 marks, valid range [0,10]
	Assignment float64 // Assignment marks, valid range [0,15]
	Attendance float64 // Attendance marks, valid range [0,5]
	Quiz       float64 // Quiz marks, valid range [0,10]

	TotalMarks float64   // Sum of the five components, range [0,60]
	RiskLevel  RiskLevel // Derived categorical risk
	RiskScore  float64   // TotalMarks rescaled to [0,100]
}

// Mark returns the value of the given component column, or NaN when the
// feature name is not one of the canonical five.
func (r *StudentRecord) Mark(f Feature) float64 {
	switch f {
	case FeatureCat1:
		return r.Cat1
	case FeatureCat2:
		return r.Cat2
	case FeatureAssignment:
		return r.Assignment
	case FeatureAttendance:
		return r.Attendance
	case FeatureQuiz:
		return r.Quiz
	default:
		return math.NaN()
	}
}

// SetMark assigns a component column by name. Unknown names are ignored.
func (r *StudentRecord) SetMark(f Feature, v float64) {
	switch f {
	case FeatureCat1:
		r.Cat1 = v
	case FeatureCat2:
		r.Cat2 = v
	case FeatureAssignment:
		r.Assignment = v
	case FeatureAttendance:
		r.Attendance = v
	case FeatureQuiz:
		r.Quiz = v
	}
}

// HasAllMarks reports whether every listed component has a concrete value.
func (r *StudentRecord) HasAllMarks(features []Feature) bool {
	for _, f := range features {
		if math.IsNaN(r.Mark(f)) {
			return false
		}
	}
	return true
}

// Dataset is a tabular snapshot of the roster as loaded from a source.
// Features lists which of the canonical mark columns were actually present
// in the source; Labeled reports whether the risk_level column was present.
type Dataset struct {
	Features []Feature
	Labeled  bool
	Rows     []StudentRecord
}

// HasFeature reports whether the given column was present in the source.
func (d *Dataset) HasFeature(f Feature) bool {
	for _, have := range d.Features {
		if have == f {
			return true
		}
	}
	return false
}

// AvailableFeatures returns the intersection of the canonical feature list
// with the columns present in the source, preserving canonical order.
func (d *Dataset) AvailableFeatures() []Feature {
	var out []Feature
	for _, f := range CanonicalFeatures {
		if d.HasFeature(f) {
			out = append(out, f)
		}
	}
	return out
}
