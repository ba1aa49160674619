package cmd

import (
	"fmt"

	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/internal/csvio"
	"github.com/spf13/cobra"
)

// importCmd loads a CSV roster into the database backend.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a CSV roster into the configured database backend.",
	Long: `Validate a CSV roster and load it into the roster store.

Derived fields (total marks, risk score, risk level) are recomputed
during import, so stale values in the file never survive. Rows are
upserted by student ID; re-importing the same file is safe.

Requires a database backend. Examples:
  # Import into the local SQLite store
  studentrisk import --backend sqlite --data fall2026.csv

  # Import into a shared MySQL store
  studentrisk import --backend mysql --db-connect "user:pass@tcp(host:3306)/studentrisk" --data fall2026.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := storeManager.GetRosterStore()
		if store == nil {
			contract.LogFatal("Cannot import roster", fmt.Errorf("no roster store configured; set --backend"))
		}

		ds, err := csvio.ReadFile(cfg.DataPath)
		if err != nil {
			contract.LogFatal("Cannot read roster", err)
		}
		if err := core.ValidateRoster(ds.Rows); err != nil {
			contract.LogFatal("Roster failed validation", err)
		}

		for i := range ds.Rows {
			core.Recalculate(&ds.Rows[i])
		}
		if err := store.BulkUpsert(ds.Rows); err != nil {
			contract.LogFatal("Cannot import roster", err)
		}
		fmt.Printf("Imported %d students from %s into the %s backend.\n", len(ds.Rows), cfg.DataPath, cfg.Backend)
	},
}
