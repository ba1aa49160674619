package core

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/internal/csvio"
	"github.com/huangsam/studentrisk/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubManager returns a fixed store without touching any database.
type stubManager struct {
	store contract.StudentStore
}

func (m *stubManager) GetRosterStore() contract.StudentStore { return m.store }

// stubStore serves canned rows for pipeline tests.
type stubStore struct {
	rows []schema.StudentRecord
}

func (s *stubStore) Upsert(schema.StudentRecord) error       { return nil }
func (s *stubStore) BulkUpsert([]schema.StudentRecord) error { return nil }
func (s *stubStore) List() ([]schema.StudentRecord, error)   { return s.rows, nil }
func (s *stubStore) Count() (int, error)                     { return len(s.rows), nil }
func (s *stubStore) Clear() error                            { return nil }
func (s *stubStore) GetStatus() (schema.RosterStatus, error) { return schema.RosterStatus{}, nil }
func (s *stubStore) Close() error                            { return nil }

var _ contract.StoreManager = &stubManager{}

func writeRosterCSV(t *testing.T, rows []schema.StudentRecord) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, csvio.WriteFile(path, rows, 2))
	return path
}

func TestLoadRosterPrefersStore(t *testing.T) {
	storeRows := []schema.StudentRecord{{StudentID: "DB0001", Name: "From Store"}}
	csvPath := writeRosterCSV(t, []schema.StudentRecord{{StudentID: "CSV0001", Name: "From CSV"}})

	cfg := &contract.Config{DataPath: csvPath, Backend: schema.SQLiteBackend}
	mgr := &stubManager{store: &stubStore{rows: storeRows}}

	ds, err := LoadRoster(cfg, mgr)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "DB0001", ds.Rows[0].StudentID)
	assert.Equal(t, schema.CanonicalFeatures, ds.Features)
	assert.True(t, ds.Labeled)
}

func TestLoadRosterFallsBackToCSV(t *testing.T) {
	csvPath := writeRosterCSV(t, []schema.StudentRecord{{StudentID: "CSV0001", Name: "From CSV"}})

	cfg := &contract.Config{DataPath: csvPath, Backend: schema.NoneBackend}
	mgr := &stubManager{store: &stubStore{}} // empty store

	ds, err := LoadRoster(cfg, mgr)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "CSV0001", ds.Rows[0].StudentID)
}

func TestLoadRosterMissingFile(t *testing.T) {
	cfg := &contract.Config{DataPath: filepath.Join(t.TempDir(), "absent.csv")}
	_, err := LoadRoster(cfg, nil)
	assert.Error(t, err)
}

func TestGetRankedStudentsOrdering(t *testing.T) {
	rows := []schema.StudentRecord{
		{StudentID: "STU0001", Name: "Low", Cat1: 9, Cat2: 9, Assignment: 14, Attendance: 5, Quiz: 9},     // 46 Low
		{StudentID: "STU0002", Name: "Failure", Cat1: 3, Cat2: 3, Assignment: 6, Attendance: 2, Quiz: 4},  // 18 Failure
		{StudentID: "STU0003", Name: "Medium", Cat1: 7, Cat2: 7, Assignment: 12, Attendance: 4, Quiz: 8},  // 38 Medium
		{StudentID: "STU0004", Name: "High", Cat1: 5, Cat2: 5, Assignment: 9, Attendance: 3, Quiz: 6},     // 28 High
	}
	cfg := &contract.Config{DataPath: writeRosterCSV(t, rows)}

	ranked, err := GetRankedStudents(cfg, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	// Worst first
	assert.Equal(t, "STU0002", ranked[0].StudentID)
	assert.Equal(t, "STU0004", ranked[1].StudentID)
	assert.Equal(t, "STU0003", ranked[2].StudentID)
	assert.Equal(t, "STU0001", ranked[3].StudentID)

	// Derived fields are fresh
	assert.Equal(t, schema.FailureRisk, ranked[0].RiskLevel)
	assert.InDelta(t, 30.0, ranked[0].RiskScore, 0.05)
}

func TestGetRankedStudentsFilters(t *testing.T) {
	rows := []schema.StudentRecord{
		{StudentID: "STU0001", Cat1: 9, Cat2: 9, Assignment: 14, Attendance: 5, Quiz: 9},
		{StudentID: "STU0002", Cat1: 3, Cat2: 3, Assignment: 6, Attendance: 2, Quiz: 4},
		{StudentID: "STU0003", Cat1: 5, Cat2: 5, Assignment: 9, Attendance: 3, Quiz: 6},
	}
	cfg := &contract.Config{DataPath: writeRosterCSV(t, rows), AtRiskOnly: true, ResultLimit: 1}

	ranked, err := GetRankedStudents(cfg, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "STU0002", ranked[0].StudentID)
}

func TestGetRosterStats(t *testing.T) {
	rows := []schema.StudentRecord{
		{StudentID: "STU0001", CourseName: "Algorithms", Cat1: 9, Cat2: 9, Assignment: 14, Attendance: 5, Quiz: 9},
		{StudentID: "STU0002", CourseName: "Databases", Cat1: 3, Cat2: 3, Assignment: 6, Attendance: 2, Quiz: 4},
	}
	cfg := &contract.Config{DataPath: writeRosterCSV(t, rows)}

	metrics, err := GetRosterStats(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, metrics.TotalStudents)
	assert.Equal(t, 2, metrics.CourseCount)
	assert.Equal(t, 1, metrics.AtRisk)
	assert.Equal(t, 1, metrics.Distribution[schema.LowRisk])
	assert.Equal(t, 1, metrics.Distribution[schema.FailureRisk])
}

func TestTrainAndSaveThenPredict(t *testing.T) {
	rows := GenerateSample(60)
	tmpDir := t.TempDir()
	cfg := &contract.Config{
		DataPath:  writeRosterCSV(t, rows),
		ModelPath: filepath.Join(tmpDir, "model", "predictor.json"),
	}

	report, err := TrainAndSave(cfg, nil)
	require.NoError(t, err)
	assert.Positive(t, report.RowsUsed)

	// Model file lands on disk
	_, err = os.Stat(cfg.ModelPath)
	require.NoError(t, err)

	pred, err := LoadAndPredict(cfg, Marks{Cat1: 9, Cat2: 9, Assignment: 14, Attendance: 5, Quiz: 9})
	require.NoError(t, err)
	assert.True(t, schema.IsValidRiskLevel(schema.RiskLevel(pred.Label)))
	assert.Greater(t, pred.Confidence, 0.0)
}

func TestLoadAndPredictWithoutModel(t *testing.T) {
	cfg := &contract.Config{ModelPath: filepath.Join(t.TempDir(), "absent.json")}

	pred, err := LoadAndPredict(cfg, Marks{Cat1: 9, Cat2: 9, Assignment: 14, Attendance: 5, Quiz: 9})
	require.NoError(t, err)
	assert.Equal(t, NotTrainedLabel, pred.Label)
	assert.Zero(t, pred.Confidence)
}

func TestTrainAndSaveInsufficientData(t *testing.T) {
	rows := []schema.StudentRecord{
		{StudentID: "STU0001", Cat1: 9, Cat2: 9, Assignment: 14, Attendance: 5, Quiz: 9},
	}
	cfg := &contract.Config{
		DataPath:  writeRosterCSV(t, rows),
		ModelPath: filepath.Join(t.TempDir(), "predictor.json"),
	}

	_, err := TrainAndSave(cfg, nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

// writeRawCSV writes CSV content verbatim, for rosters whose header differs
// from the canonical one.
func writeRawCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestTrainAndSavePartialColumns trains from a CSV that carries only three
// of the five mark columns. The absent columns must be excluded from the
// feature selection, not treated as missing values in every row.
func TestTrainAndSavePartialColumns(t *testing.T) {
	csv := "student_id,name,cat1_marks,cat2_marks,assignment_marks,risk_level\n"
	for i := 0; i < 8; i++ {
		csv += fmt.Sprintf("STU%02d,Strong %d,9,9,14,Low\n", i, i)
	}
	for i := 8; i < 12; i++ {
		csv += fmt.Sprintf("STU%02d,Weak %d,5,5,8,High\n", i, i)
	}

	cfg := &contract.Config{
		DataPath:  writeRawCSV(t, csv),
		ModelPath: filepath.Join(t.TempDir(), "predictor.json"),
	}

	report, err := TrainAndSave(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, report.RowsUsed)
	assert.Zero(t, report.RowsDropped)
	assert.Equal(t, []schema.Feature{
		schema.FeatureCat1, schema.FeatureCat2, schema.FeatureAssignment,
	}, report.Features)
	require.Len(t, report.Importance, 3)

	pred, err := LoadAndPredict(cfg, Marks{Cat1: 9, Cat2: 9, Assignment: 14})
	require.NoError(t, err)
	assert.True(t, schema.IsValidRiskLevel(schema.RiskLevel(pred.Label)))
}

// TestTrainAndSaveInsufficientFeatures verifies a two-column CSV fails with
// the feature precondition rather than the row-count one.
func TestTrainAndSaveInsufficientFeatures(t *testing.T) {
	csv := "student_id,cat1_marks,quiz_marks,risk_level\n"
	for i := 0; i < 12; i++ {
		csv += fmt.Sprintf("STU%02d,7,7,Medium\n", i)
	}

	cfg := &contract.Config{
		DataPath:  writeRawCSV(t, csv),
		ModelPath: filepath.Join(t.TempDir(), "predictor.json"),
	}

	_, err := TrainAndSave(cfg, nil)
	assert.ErrorIs(t, err, ErrInsufficientFeatures)
}

// TestTrainAndSaveUnlabeledCSV verifies a roster without a risk_level column
// fails with the label precondition.
func TestTrainAndSaveUnlabeledCSV(t *testing.T) {
	csv := "student_id,cat1_marks,cat2_marks,assignment_marks,attendance_marks,quiz_marks\n"
	for i := 0; i < 12; i++ {
		csv += fmt.Sprintf("STU%02d,7,7,11,4,7\n", i)
	}

	cfg := &contract.Config{
		DataPath:  writeRawCSV(t, csv),
		ModelPath: filepath.Join(t.TempDir(), "predictor.json"),
	}

	_, err := TrainAndSave(cfg, nil)
	assert.ErrorIs(t, err, ErrMissingLabel)
}
