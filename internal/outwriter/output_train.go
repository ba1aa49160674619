package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteTrainResults outputs a training report, dispatching based on the output format configured.
func WriteTrainResults(report *core.TrainReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrainJSON(w, report, duration)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeTrainCSV(csvWriter, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrainTable(report, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeTrainTable generates and writes the human-readable importance table.
func writeTrainTable(report *core.TrainReport, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Feature", "Importance"})

	var data [][]string
	for i, imp := range report.Importance {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			string(imp.Feature),
			fmt.Sprintf("%.4f", imp.Weight),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Trained on %d students (%d dropped) across %d features\n",
		report.RowsUsed, report.RowsDropped, len(report.Features)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Holdout accuracy: %s%%\n", fmtFloat(report.Accuracy*100)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Training completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeTrainCSV writes the importance ranking in CSV format.
func writeTrainCSV(w *csv.Writer, report *core.TrainReport) error {
	if err := w.Write([]string{"rank", "feature", "importance"}); err != nil {
		return err
	}
	for i, imp := range report.Importance {
		rec := []string{
			strconv.Itoa(i + 1),
			string(imp.Feature),
			fmt.Sprintf("%.6f", imp.Weight),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeTrainJSON writes the training report in JSON format.
func writeTrainJSON(w io.Writer, report *core.TrainReport, duration time.Duration) error {
	type JSONTrainReport struct {
		RowsUsed    int                      `json:"rows_used"`
		RowsDropped int                      `json:"rows_dropped"`
		Features    []schema.Feature         `json:"features"`
		Labels      []schema.RiskLevel       `json:"labels"`
		Accuracy    float64                  `json:"accuracy"`
		Importance  []core.FeatureImportance `json:"importance"`
		DurationMs  int64                    `json:"duration_ms"`
	}

	return writeJSON(w, JSONTrainReport{
		RowsUsed:    report.RowsUsed,
		RowsDropped: report.RowsDropped,
		Features:    report.Features,
		Labels:      report.Labels,
		Accuracy:    report.Accuracy,
		Importance:  report.Importance,
		DurationMs:  duration.Milliseconds(),
	})
}
