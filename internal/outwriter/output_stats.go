package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteStatsResults outputs roster metrics, dispatching based on the output format configured.
func WriteStatsResults(metrics core.RosterMetrics, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, metrics)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeStatsCSV(csvWriter, metrics, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatsTable(metrics, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeStatsTable generates and writes the human-readable metrics summary.
func writeStatsTable(metrics core.RosterMetrics, fmtFloat func(float64) string, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Total students: %d\n", metrics.TotalStudents); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Average marks: %s\n", fmtFloat(metrics.AverageMarks)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Courses: %d\n", metrics.CourseCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "At risk: %d\n", metrics.AtRisk); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Level", "Students"})

	// Fixed severity order, worst first
	var data [][]string
	for i := len(schema.RiskLevels) - 1; i >= 0; i-- {
		level := schema.RiskLevels[i]
		data = append(data, []string{
			contract.GetColorLabel(level),
			strconv.Itoa(metrics.Distribution[level]),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeStatsCSV writes the risk distribution in CSV format.
func writeStatsCSV(w *csv.Writer, metrics core.RosterMetrics, fmtFloat func(float64) string) error {
	if err := w.Write([]string{"metric", "value"}); err != nil {
		return err
	}
	rows := [][]string{
		{"total_students", strconv.Itoa(metrics.TotalStudents)},
		{"average_marks", fmtFloat(metrics.AverageMarks)},
		{"course_count", strconv.Itoa(metrics.CourseCount)},
		{"at_risk", strconv.Itoa(metrics.AtRisk)},
	}
	for _, level := range schema.RiskLevels {
		rows = append(rows, []string{
			"level_" + string(level),
			strconv.Itoa(metrics.Distribution[level]),
		})
	}
	for _, rec := range rows {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
