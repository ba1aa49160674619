// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRank prints ranked student results using the configured output format.
func (ow *OutWriter) WriteRank(rows []schema.StudentRecord, cfg *contract.Config, duration time.Duration) error {
	return WriteRankResults(rows, cfg, duration)
}

// WriteTrain prints a training report using the configured output format.
func (ow *OutWriter) WriteTrain(report *core.TrainReport, cfg *contract.Config, duration time.Duration) error {
	return WriteTrainResults(report, cfg, duration)
}

// WritePredict prints a single prediction using the configured output format.
func (ow *OutWriter) WritePredict(marks core.Marks, pred core.Prediction, cfg *contract.Config) error {
	return WritePredictResults(marks, pred, cfg)
}

// WriteStats prints roster metrics using the configured output format.
func (ow *OutWriter) WriteStats(metrics core.RosterMetrics, cfg *contract.Config) error {
	return WriteStatsResults(metrics, cfg)
}
