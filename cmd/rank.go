package cmd

import (
	"time"

	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/internal/outwriter"
	"github.com/spf13/cobra"
)

// rankCmd ranks students by academic risk.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Show students ranked by academic risk, worst first.",
	Long: `Score every student in the roster and rank them by risk.

Each student's five internal components (CAT 1, CAT 2, assignment,
attendance, quiz) are summed and bucketed against fixed thresholds:
- 45 and above: Low risk
- 35 to 44:     Medium risk
- 25 to 34:     High risk
- below 25:     Failure risk

Examples:
  # Rank the whole roster
  studentrisk rank

  # Focus on students who need intervention
  studentrisk rank --at-risk

  # Include per-component marks
  studentrisk rank --detail

  # Export the ranking to CSV for the department
  studentrisk rank --output csv --output-file ranking.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		ranked, err := core.GetRankedStudents(cfg, storeManager)
		if err != nil {
			contract.LogFatal("Cannot rank students", err)
		}
		ow := outwriter.NewOutWriter()
		if err := ow.WriteRank(ranked, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write ranking", err)
		}
	},
}
