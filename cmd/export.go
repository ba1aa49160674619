package cmd

import (
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/internal/roster"
	"github.com/spf13/cobra"
)

// exportCmd exports the stored roster to a file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored roster to a Parquet or CSV file.",
	Long: `Dump the roster store to a file for analysis elsewhere.

The --output flag picks the format (parquet or csv) and --output-file
names the destination. Parquet files preserve missing marks as nulls
and work with Spark, Pandas, DuckDB, and similar tools.

Requires a database backend with imported data. Examples:
  # Export to Parquet
  studentrisk export --backend sqlite --output parquet --output-file roster.parquet

  # Export to CSV
  studentrisk export --backend sqlite --output csv --output-file roster.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := roster.ExecuteRosterExport(cfg.OutputFile, cfg.Output, cfg.Precision); err != nil {
			contract.LogFatal("Cannot export roster", err)
		}
	},
}
