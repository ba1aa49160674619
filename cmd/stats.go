package cmd

import (
	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/internal/outwriter"
	"github.com/spf13/cobra"
)

// statsCmd summarizes the roster.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the roster and its risk distribution.",
	Long: `Show aggregate roster metrics.

Displays:
- Total student count
- Average total internal marks
- Number of distinct courses
- At-risk count and the full risk level distribution

Examples:
  # Text summary
  studentrisk stats

  # Machine-readable summary for dashboards
  studentrisk stats --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		metrics, err := core.GetRosterStats(cfg, storeManager)
		if err != nil {
			contract.LogFatal("Cannot compute roster stats", err)
		}
		ow := outwriter.NewOutWriter()
		if err := ow.WriteStats(metrics, cfg); err != nil {
			contract.LogFatal("Cannot write stats", err)
		}
	},
}
