package cmd

import (
	"fmt"

	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/internal/csvio"
	"github.com/spf13/cobra"
)

// sampleCmd generates a synthetic roster.
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a synthetic roster CSV for experimentation.",
	Long: `Write a deterministic synthetic roster to the data path.

The generator produces realistic mark distributions across several
courses. The same count always yields the same roster, which makes the
output usable as a test fixture or demo dataset.

Examples:
  # Generate the default 50 students
  studentrisk sample

  # Generate a larger roster at a custom location
  studentrisk sample --count 200 --data demo/students.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		rows := core.GenerateSample(cfg.SampleCount)
		if err := csvio.WriteFile(cfg.DataPath, rows, cfg.Precision); err != nil {
			contract.LogFatal("Cannot write sample roster", err)
		}
		fmt.Printf("Wrote %d synthetic students to %s.\n", len(rows), cfg.DataPath)
	},
}
