package core

import "github.com/huangsam/studentrisk/schema"

// RosterMetrics aggregates a roster snapshot for the stats command and the
// MCP roster_stats tool.
type RosterMetrics struct {
	TotalStudents int                      `json:"total_students"`
	AverageMarks  float64                  `json:"average_marks"`
	CourseCount   int                      `json:"course_count"`
	AtRisk        int                      `json:"at_risk"`
	Distribution  map[schema.RiskLevel]int `json:"risk_distribution"`
}

// ComputeMetrics derives summary metrics from the roster.
func ComputeMetrics(rows []schema.StudentRecord) RosterMetrics {
	m := RosterMetrics{Distribution: make(map[schema.RiskLevel]int)}
	m.TotalStudents = len(rows)
	if len(rows) == 0 {
		return m
	}

	courses := make(map[string]bool)
	var totalSum float64
	for i := range rows {
		r := &rows[i]
		totalSum += r.TotalMarks
		if r.CourseName != "" {
			courses[r.CourseName] = true
		}
		m.Distribution[r.RiskLevel]++
		if schema.IsAtRisk(r.RiskLevel) {
			m.AtRisk++
		}
	}
	m.AverageMarks = totalSum / float64(len(rows))
	m.CourseCount = len(courses)
	return m
}
