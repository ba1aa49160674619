// Package csvio reads and writes the CSV roster format.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/huangsam/studentrisk/schema"
)

// Column names for the non-feature roster columns.
const (
	colStudentID  = "student_id"
	colName       = "name"
	colEmail      = "email"
	colPhone      = "phone"
	colAge        = "age"
	colGender     = "gender"
	colCourseName = "course_name"
	colCourseCode = "course_code"
	colTotal      = "total_internal_marks"
	colRiskLevel  = "risk_level"
	colRiskScore  = "risk_score"
)

// Header is the full canonical column order used when writing.
var Header = []string{
	colStudentID, colName, colEmail, colPhone, colAge, colGender,
	colCourseName, colCourseCode,
	string(schema.FeatureCat1), string(schema.FeatureCat2),
	string(schema.FeatureAssignment), string(schema.FeatureAttendance),
	string(schema.FeatureQuiz),
	colTotal, colRiskLevel, colRiskScore,
}

// Read parses a CSV roster. Mark columns absent from the header are
// reported as absent features; blank or unparsable mark cells become NaN.
// The file's own risk_level values are kept as-is so labeled historical
// data trains the predictor without re-derivation.
func Read(r io.Reader) (*schema.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return &schema.Dataset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	ds := &schema.Dataset{}
	for _, f := range schema.CanonicalFeatures {
		if _, ok := cols[string(f)]; ok {
			ds.Features = append(ds.Features, f)
		}
	}
	_, ds.Labeled = cols[colRiskLevel]

	cell := func(rec []string, name string) string {
		if i, ok := cols[name]; ok && i < len(rec) {
			return rec[i]
		}
		return ""
	}
	numCell := func(rec []string, name string) float64 {
		v, err := strconv.ParseFloat(cell(rec, name), 64)
		if err != nil {
			return math.NaN()
		}
		return v
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		row := schema.StudentRecord{
			StudentID:  cell(rec, colStudentID),
			Name:       cell(rec, colName),
			Email:      cell(rec, colEmail),
			Phone:      cell(rec, colPhone),
			Gender:     cell(rec, colGender),
			CourseName: cell(rec, colCourseName),
			CourseCode: cell(rec, colCourseCode),
		}
		if age, err := strconv.Atoi(cell(rec, colAge)); err == nil {
			row.Age = age
		}
		for _, f := range schema.CanonicalFeatures {
			row.SetMark(f, numCell(rec, string(f)))
		}
		row.TotalMarks = numCell(rec, colTotal)
		row.RiskLevel = schema.RiskLevel(cell(rec, colRiskLevel))
		row.RiskScore = numCell(rec, colRiskScore)
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

// ReadFile opens and parses a CSV roster from disk.
func ReadFile(path string) (*schema.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}

// Write emits the roster with the full canonical header. NaN marks become
// blank cells so a round-trip preserves missing values.
func Write(w io.Writer, rows []schema.StudentRecord, precision int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}

	fmtNum := func(v float64) string {
		if math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', precision, 64)
	}

	for i := range rows {
		r := &rows[i]
		rec := []string{
			r.StudentID, r.Name, r.Email, r.Phone,
			strconv.Itoa(r.Age), r.Gender, r.CourseName, r.CourseCode,
			fmtNum(r.Cat1), fmtNum(r.Cat2), fmtNum(r.Assignment),
			fmtNum(r.Attendance), fmtNum(r.Quiz),
			fmtNum(r.TotalMarks), string(r.RiskLevel), fmtNum(r.RiskScore),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the roster to disk, creating parent directories.
func WriteFile(path string, rows []schema.StudentRecord, precision int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating roster directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating roster %s: %w", path, err)
	}
	if err := Write(f, rows, precision); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
