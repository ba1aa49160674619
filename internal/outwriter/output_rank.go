package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRankResults outputs ranked students, dispatching based on the output format configured.
func WriteRankResults(rows []schema.StudentRecord, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeRankCSV(csvWriter, rows, fmtFloat)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTable(rows, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeRankTable generates and writes the human-readable table.
func writeRankTable(rows []schema.StudentRecord, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "ID", "Name", "Total", "Score", "Level"}
	if cfg.Detail {
		headers = append(headers, "Cat1", "Cat2", "Assign", "Attend", "Quiz", "Course")
	}
	table.Header(headers)

	// 2. Configure alignment for numeric-heavy rows
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	atRisk := 0
	for i := range rows {
		r := &rows[i]
		if schema.IsAtRisk(r.RiskLevel) {
			atRisk++
		}
		row := []string{
			strconv.Itoa(i + 1),
			r.StudentID,
			contract.TruncateName(r.Name, nameWidth),
			fmtFloat(r.TotalMarks),
			fmtFloat(r.RiskScore),
			contract.GetColorLabel(r.RiskLevel),
		}
		if cfg.Detail {
			row = append(
				row,
				formatMark(r.Cat1, fmtFloat),
				formatMark(r.Cat2, fmtFloat),
				formatMark(r.Assignment, fmtFloat),
				formatMark(r.Attendance, fmtFloat),
				formatMark(r.Quiz, fmtFloat),
				r.CourseCode,
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d students (%d at risk)\n", len(rows), atRisk); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Ranking completed in %v. Roster backend: %s\n", duration, cfg.Backend); err != nil {
		return err
	}
	return nil
}

// writeRankCSV writes ranked students in CSV format.
func writeRankCSV(w *csv.Writer, rows []schema.StudentRecord, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"student_id",
		"name",
		"course_code",
		"cat1_marks",
		"cat2_marks",
		"assignment_marks",
		"attendance_marks",
		"quiz_marks",
		"total_internal_marks",
		"risk_score",
		"risk_level",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := range rows {
		r := &rows[i]
		rec := []string{
			strconv.Itoa(i + 1),
			r.StudentID,
			r.Name,
			r.CourseCode,
			formatMark(r.Cat1, fmtFloat),
			formatMark(r.Cat2, fmtFloat),
			formatMark(r.Assignment, fmtFloat),
			formatMark(r.Attendance, fmtFloat),
			formatMark(r.Quiz, fmtFloat),
			fmtFloat(r.TotalMarks),
			fmtFloat(r.RiskScore),
			string(r.RiskLevel),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeRankJSON writes ranked students in JSON format.
func writeRankJSON(w io.Writer, rows []schema.StudentRecord) error {
	// Prepare the data structure for JSON with rank added and missing marks as null
	type JSONStudentRow struct {
		Rank       int      `json:"rank"`
		StudentID  string   `json:"student_id"`
		Name       string   `json:"name"`
		CourseCode string   `json:"course_code,omitempty"`
		Cat1       *float64 `json:"cat1_marks"`
		Cat2       *float64 `json:"cat2_marks"`
		Assignment *float64 `json:"assignment_marks"`
		Attendance *float64 `json:"attendance_marks"`
		Quiz       *float64 `json:"quiz_marks"`
		Total      *float64 `json:"total_internal_marks"`
		RiskScore  *float64 `json:"risk_score"`
		RiskLevel  string   `json:"risk_level"`
	}

	output := make([]JSONStudentRow, len(rows))
	for i := range rows {
		r := &rows[i]
		output[i] = JSONStudentRow{
			Rank:       i + 1,
			StudentID:  r.StudentID,
			Name:       r.Name,
			CourseCode: r.CourseCode,
			Cat1:       jsonMark(r.Cat1),
			Cat2:       jsonMark(r.Cat2),
			Assignment: jsonMark(r.Assignment),
			Attendance: jsonMark(r.Attendance),
			Quiz:       jsonMark(r.Quiz),
			Total:      jsonMark(r.TotalMarks),
			RiskScore:  jsonMark(r.RiskScore),
			RiskLevel:  string(r.RiskLevel),
		}
	}

	return writeJSON(w, output)
}
