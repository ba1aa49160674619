package schema

// featureMax holds the upper bound of the valid range for each component.
// All components share a lower bound of zero.
var featureMax = map[Feature]float64{
	FeatureCat1:       10,
	FeatureCat2:       10,
	FeatureAssignment: 15,
	FeatureAttendance: 5,
	FeatureQuiz:       10,
}

// FeatureMax returns the upper bound of the valid range for a component.
// Unknown features return 0.
func FeatureMax(f Feature) float64 {
	return featureMax[f]
}

// ClampMark clamps a component value into its valid range.
func ClampMark(f Feature, v float64) float64 {
	if v < 0 {
		return 0
	}
	if maxVal, ok := featureMax[f]; ok && v > maxVal {
		return maxVal
	}
	return v
}

// IsValidRiskLevel reports whether the label belongs to the fixed vocabulary.
func IsValidRiskLevel(l RiskLevel) bool {
	for _, known := range RiskLevels {
		if l == known {
			return true
		}
	}
	return false
}

// IsAtRisk reports whether the label counts as at-risk for reporting
// purposes (High or Failure).
func IsAtRisk(l RiskLevel) bool {
	return l == HighRisk || l == FailureRisk
}
