package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows() []schema.StudentRecord {
	return []schema.StudentRecord{
		{
			StudentID: "STU0002", Name: "Arun Kumar", CourseCode: "CS201",
			Cat1: 3.0, Cat2: 4.0, Assignment: 6.0, Attendance: 2.0, Quiz: 5.0,
			TotalMarks: 20.0, RiskLevel: schema.FailureRisk, RiskScore: 33.3,
		},
		{
			StudentID: "STU0001", Name: "Priya Raman", CourseCode: "CS201",
			Cat1: 9.0, Cat2: 8.5, Assignment: 13.0, Attendance: 4.5, Quiz: 9.0,
			TotalMarks: 44.0, RiskLevel: schema.MediumRisk, RiskScore: 73.3,
		},
	}
}

func testConfig() *contract.Config {
	return &contract.Config{Precision: 1, Width: 100, Backend: schema.NoneBackend}
}

func TestWriteRankCSV(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(1)

	require.NoError(t, writeRankCSV(w, testRows(), fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, "rank", records[0][0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "STU0002", records[1][1])
	assert.Equal(t, "Failure", records[1][11])
	assert.Equal(t, "44.0", records[2][9])
}

func TestWriteRankCSVMissingMarks(t *testing.T) {
	rows := testRows()
	rows[0].Quiz = math.NaN()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(1)
	require.NoError(t, writeRankCSV(w, rows, fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records[1][8], "missing quiz mark should be a blank cell")
}

func TestWriteRankJSON(t *testing.T) {
	var buf bytes.Buffer
	rows := testRows()
	rows[1].Attendance = math.NaN()

	require.NoError(t, writeRankJSON(&buf, rows))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, float64(1), decoded[0]["rank"])
	assert.Equal(t, "STU0002", decoded[0]["student_id"])
	assert.Equal(t, "Failure", decoded[0]["risk_level"])

	// NaN marks serialize as null, never as invalid JSON
	assert.Nil(t, decoded[1]["attendance_marks"])
}

func TestWriteRankTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	cfg := testConfig()
	cfg.Detail = true

	require.NoError(t, writeRankTable(testRows(), cfg, fmtFloat, time.Millisecond, &buf))
	out := buf.String()

	assert.Contains(t, out, "Arun Kumar")
	assert.Contains(t, out, "Failure")
	assert.Contains(t, out, "Showing 2 students (1 at risk)")
	assert.Contains(t, out, "CS201")
}

func TestWriteTrainTable(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)

	report := &core.TrainReport{
		RowsUsed:    48,
		RowsDropped: 2,
		Features:    schema.CanonicalFeatures,
		Labels:      []schema.RiskLevel{schema.LowRisk, schema.HighRisk},
		Accuracy:    0.9,
		Importance: []core.FeatureImportance{
			{Feature: schema.FeatureAssignment, Weight: 0.4},
			{Feature: schema.FeatureCat1, Weight: 0.3},
			{Feature: schema.FeatureCat2, Weight: 0.15},
			{Feature: schema.FeatureQuiz, Weight: 0.1},
			{Feature: schema.FeatureAttendance, Weight: 0.05},
		},
	}

	require.NoError(t, writeTrainTable(report, fmtFloat, time.Second, &buf))
	out := buf.String()

	assert.Contains(t, out, "assignment_marks")
	assert.Contains(t, out, "Trained on 48 students (2 dropped) across 5 features")
	assert.Contains(t, out, "Holdout accuracy: 90.0%")

	// Importance rows keep their ranked order
	assert.Less(t, strings.Index(out, "assignment_marks"), strings.Index(out, "attendance_marks"))
}

func TestWriteTrainJSON(t *testing.T) {
	var buf bytes.Buffer
	report := &core.TrainReport{
		RowsUsed: 10,
		Features: schema.CanonicalFeatures,
		Labels:   []schema.RiskLevel{schema.LowRisk},
		Accuracy: 1.0,
	}
	require.NoError(t, writeTrainJSON(&buf, report, 1500*time.Millisecond))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(10), decoded["rows_used"])
	assert.Equal(t, float64(1500), decoded["duration_ms"])
}

func TestWritePredictText(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	marks := core.Marks{Cat1: 8, Cat2: 8, Assignment: 13, Attendance: 4, Quiz: 9}

	// Total is 42: thresholds say Medium, model says High
	pred := core.Prediction{Label: "High", Confidence: 72.0}
	require.NoError(t, writePredictText(&buf, marks, pred, fmtFloat))
	out := buf.String()

	assert.Contains(t, out, "Total marks: 42.0 / 60")
	assert.Contains(t, out, "Threshold level: Medium")
	assert.Contains(t, out, "Model prediction: High (72.0% confidence)")
	assert.Contains(t, out, "disagrees")
}

func TestWritePredictTextSentinel(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	marks := core.Marks{Cat1: 8, Cat2: 8, Assignment: 13, Attendance: 4, Quiz: 9}

	pred := core.Prediction{Label: core.NotTrainedLabel}
	require.NoError(t, writePredictText(&buf, marks, pred, fmtFloat))

	assert.Contains(t, buf.String(), core.NotTrainedLabel)
	assert.NotContains(t, buf.String(), "disagrees")
}

func TestWritePredictJSON(t *testing.T) {
	var buf bytes.Buffer
	marks := core.Marks{Cat1: 9, Cat2: 8, Assignment: 14, Attendance: 5, Quiz: 10}
	pred := core.Prediction{Label: "Low", Confidence: 95.0}

	require.NoError(t, writePredictJSON(&buf, marks, pred))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(46), decoded["total_internal_marks"])
	assert.Equal(t, "Low", decoded["threshold_level"])
	assert.Equal(t, "Low", decoded["predicted_level"])
}

func TestWriteStatsCSV(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(1)

	metrics := core.RosterMetrics{
		TotalStudents: 4,
		AverageMarks:  38.25,
		CourseCount:   2,
		AtRisk:        1,
		Distribution: map[schema.RiskLevel]int{
			schema.LowRisk:     2,
			schema.MediumRisk:  1,
			schema.FailureRisk: 1,
		},
	}
	require.NoError(t, writeStatsCSV(w, metrics, fmtFloat))
	w.Flush()

	out := buf.String()
	assert.Contains(t, out, "total_students,4")
	assert.Contains(t, out, "average_marks,38.2")
	assert.Contains(t, out, "level_Low,2")
	assert.Contains(t, out, "level_High,0")
}

func TestWriteStatsTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(1)
	metrics := core.RosterMetrics{TotalStudents: 1, AverageMarks: 44.0, CourseCount: 1,
		Distribution: map[schema.RiskLevel]int{schema.MediumRisk: 1}}

	require.NoError(t, writeStatsTable(metrics, fmtFloat, &buf))
	out := buf.String()

	assert.Contains(t, out, "Total students: 1")
	// Worst levels listed before better ones
	assert.Less(t, strings.Index(out, "Failure"), strings.Index(out, "Low"))
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		detail bool
		want   int
	}{
		{name: "narrow override", width: 40, detail: false, want: 12},
		{name: "wide override", width: 200, detail: false, want: 40},
		{name: "medium override", width: 80, detail: false, want: 30},
		{name: "detail eats width", width: 80, detail: true, want: 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width, Detail: tt.detail}
			assert.Equal(t, tt.want, getMaxTableNameWidth(cfg))
		})
	}
}
