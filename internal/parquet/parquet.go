// Package parquet provides data structures and functions for exporting student
// roster data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"math"
	"os"

	"github.com/huangsam/studentrisk/schema"
	"github.com/parquet-go/parquet-go"
)

// StudentRow represents a single student record for Parquet export.
// This struct maps to the students database table and CSV roster columns.
type StudentRow struct {
	// StudentID is the unique identifier for this student
	StudentID string `parquet:"student_id,snappy"`

	// Name is the student's full name
	Name string `parquet:"name,snappy"`

	// Email is the student's contact email (nullable)
	Email *string `parquet:"email,optional,snappy"`

	// Phone is the student's contact phone (nullable)
	Phone *string `parquet:"phone,optional,snappy"`

	// Age is the student's age in years
	Age int32 `parquet:"age,snappy"`

	// Gender is the student's self-reported gender (nullable)
	Gender *string `parquet:"gender,optional,snappy"`

	// CourseName is the enrolled course title (nullable)
	CourseName *string `parquet:"course_name,optional,snappy"`

	// CourseCode is the enrolled course code (nullable)
	CourseCode *string `parquet:"course_code,optional,snappy"`

	// Cat1Marks is the first continuous assessment test mark (nullable)
	Cat1Marks *float64 `parquet:"cat1_marks,optional,snappy"`

	// Cat2Marks is the second continuous assessment test mark (nullable)
	Cat2Marks *float64 `parquet:"cat2_marks,optional,snappy"`

	// AssignmentMarks is the assignment component mark (nullable)
	AssignmentMarks *float64 `parquet:"assignment_marks,optional,snappy"`

	// AttendanceMarks is the attendance component mark (nullable)
	AttendanceMarks *float64 `parquet:"attendance_marks,optional,snappy"`

	// QuizMarks is the quiz component mark (nullable)
	QuizMarks *float64 `parquet:"quiz_marks,optional,snappy"`

	// TotalInternalMarks is the sum of all five components (nullable)
	TotalInternalMarks *float64 `parquet:"total_internal_marks,optional,snappy"`

	// RiskLevel is the assigned risk bucket
	RiskLevel string `parquet:"risk_level,snappy"`

	// RiskScore is the percentage risk score derived from total marks (nullable)
	RiskScore *float64 `parquet:"risk_score,optional,snappy"`
}

// optionalString returns a pointer for non-empty strings, nil otherwise.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// optionalFloat returns a pointer for real values, nil for NaN.
func optionalFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// ConvertStudentRecords converts roster records to their Parquet export form.
func ConvertStudentRecords(records []schema.StudentRecord) []StudentRow {
	rows := make([]StudentRow, 0, len(records))
	for i := range records {
		rec := &records[i]
		rows = append(rows, StudentRow{
			StudentID:          rec.StudentID,
			Name:               rec.Name,
			Email:              optionalString(rec.Email),
			Phone:              optionalString(rec.Phone),
			Age:                int32(rec.Age),
			Gender:             optionalString(rec.Gender),
			CourseName:         optionalString(rec.CourseName),
			CourseCode:         optionalString(rec.CourseCode),
			Cat1Marks:          optionalFloat(rec.Cat1),
			Cat2Marks:          optionalFloat(rec.Cat2),
			AssignmentMarks:    optionalFloat(rec.Assignment),
			AttendanceMarks:    optionalFloat(rec.Attendance),
			QuizMarks:          optionalFloat(rec.Quiz),
			TotalInternalMarks: optionalFloat(rec.TotalMarks),
			RiskLevel:          string(rec.RiskLevel),
			RiskScore:          optionalFloat(rec.RiskScore),
		})
	}
	return rows
}

// WriteStudentsParquet writes a slice of StudentRow structs to a Parquet file.
func WriteStudentsParquet(data []StudentRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the StudentRow struct tags
	writer := parquet.NewGenericWriter[StudentRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
