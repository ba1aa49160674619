package cmd

import (
	"time"

	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/internal/outwriter"
	"github.com/spf13/cobra"
)

// trainCmd trains the risk prediction model.
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the risk prediction model on the roster.",
	Long: `Fit a fresh prediction model on the labeled roster and persist it.

Training needs at least 10 complete rows and at least 3 of the five mark
columns. Rows with missing marks or unknown risk labels are dropped before
fitting. The resulting model, its label vocabulary, and its feature
importance ranking are written to the model path as a single JSON blob,
atomically replacing any previous model.

The reported holdout accuracy is informational; a weak model still
replaces the previous one.

Examples:
  # Train on the default roster
  studentrisk train

  # Train on a specific roster and model location
  studentrisk train --data fall2026.csv --model models/fall2026.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		report, err := core.TrainAndSave(cfg, storeManager)
		if err != nil {
			contract.LogFatal("Cannot train model", err)
		}
		ow := outwriter.NewOutWriter()
		if err := ow.WriteTrain(report, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write training report", err)
		}
	},
}
