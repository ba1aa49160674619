package core

import (
	"testing"

	"github.com/huangsam/studentrisk/schema"
	"github.com/stretchr/testify/assert"
)

// TestComputeMetrics verifies roster aggregation.
func TestComputeMetrics(t *testing.T) {
	rows := []schema.StudentRecord{
		{CourseName: "CS", TotalMarks: 50, RiskLevel: schema.LowRisk},
		{CourseName: "CS", TotalMarks: 40, RiskLevel: schema.MediumRisk},
		{CourseName: "EE", TotalMarks: 30, RiskLevel: schema.HighRisk},
		{CourseName: "EE", TotalMarks: 20, RiskLevel: schema.FailureRisk},
	}

	m := ComputeMetrics(rows)
	assert.Equal(t, 4, m.TotalStudents)
	assert.InDelta(t, 35.0, m.AverageMarks, 1e-9)
	assert.Equal(t, 2, m.CourseCount)
	assert.Equal(t, 2, m.AtRisk)
	assert.Equal(t, 1, m.Distribution[schema.LowRisk])
	assert.Equal(t, 1, m.Distribution[schema.FailureRisk])
}

// TestComputeMetricsEmpty verifies the zero-roster shape.
func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(nil)
	assert.Zero(t, m.TotalStudents)
	assert.Zero(t, m.AverageMarks)
	assert.Empty(t, m.Distribution)
}
