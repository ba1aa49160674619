package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/schema"
)

// WritePredictResults outputs a single prediction, dispatching based on the output format configured.
func WritePredictResults(marks core.Marks, pred core.Prediction, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePredictJSON(w, marks, pred)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writePredictCSV(csvWriter, marks, pred, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePredictText(w, marks, pred, fmtFloat)
		}, "Wrote text")
	}
}

// writePredictText writes the human-readable prediction summary.
func writePredictText(w io.Writer, marks core.Marks, pred core.Prediction, fmtFloat func(float64) string) error {
	total := marks.Total()
	bucket := core.Bucket(total)

	if _, err := fmt.Fprintf(w, "Total marks: %s / %d\n", fmtFloat(total), int(schema.MaxTotalMarks)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Risk score: %s%%\n", fmtFloat(core.Score(total))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Threshold level: %s\n", contract.GetColorLabel(bucket)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Model prediction: %s (%s%% confidence)\n",
		predColorLabel(pred.Label), fmtFloat(pred.Confidence)); err != nil {
		return err
	}

	// Flag when the learned model disagrees with the fixed thresholds
	if schema.IsValidRiskLevel(schema.RiskLevel(pred.Label)) && pred.Label != string(bucket) {
		if _, err := fmt.Fprintln(w, "Note: the model disagrees with the threshold level for these marks"); err != nil {
			return err
		}
	}
	return nil
}

// predColorLabel colors the prediction label when it names a risk level.
// Sentinel messages pass through unchanged.
func predColorLabel(label string) string {
	if schema.IsValidRiskLevel(schema.RiskLevel(label)) {
		return contract.GetColorLabel(schema.RiskLevel(label))
	}
	return label
}

// writePredictCSV writes the prediction in CSV format.
func writePredictCSV(w *csv.Writer, marks core.Marks, pred core.Prediction, fmtFloat func(float64) string) error {
	if err := w.Write([]string{
		"cat1_marks", "cat2_marks", "assignment_marks", "attendance_marks", "quiz_marks",
		"total_internal_marks", "risk_score", "threshold_level", "predicted_level", "confidence",
	}); err != nil {
		return err
	}
	total := marks.Total()
	rec := []string{
		fmtFloat(marks.Cat1),
		fmtFloat(marks.Cat2),
		fmtFloat(marks.Assignment),
		fmtFloat(marks.Attendance),
		fmtFloat(marks.Quiz),
		fmtFloat(total),
		fmtFloat(core.Score(total)),
		string(core.Bucket(total)),
		pred.Label,
		fmtFloat(pred.Confidence),
	}
	return w.Write(rec)
}

// writePredictJSON writes the prediction in JSON format.
func writePredictJSON(w io.Writer, marks core.Marks, pred core.Prediction) error {
	total := marks.Total()
	type JSONPrediction struct {
		Cat1           float64 `json:"cat1_marks"`
		Cat2           float64 `json:"cat2_marks"`
		Assignment     float64 `json:"assignment_marks"`
		Attendance     float64 `json:"attendance_marks"`
		Quiz           float64 `json:"quiz_marks"`
		Total          float64 `json:"total_internal_marks"`
		RiskScore      float64 `json:"risk_score"`
		ThresholdLevel string  `json:"threshold_level"`
		PredictedLevel string  `json:"predicted_level"`
		Confidence     float64 `json:"confidence"`
	}

	return writeJSON(w, JSONPrediction{
		Cat1:           marks.Cat1,
		Cat2:           marks.Cat2,
		Assignment:     marks.Assignment,
		Attendance:     marks.Attendance,
		Quiz:           marks.Quiz,
		Total:          total,
		RiskScore:      core.Score(total),
		ThresholdLevel: string(core.Bucket(total)),
		PredictedLevel: pred.Label,
		Confidence:     pred.Confidence,
	})
}
