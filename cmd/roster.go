package cmd

import (
	"fmt"

	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/internal/roster"
	"github.com/huangsam/studentrisk/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rosterSetup loads minimal configuration needed for roster store operations.
// This is used by commands that need store access without full shared setup.
func rosterSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get roster-related config values
	backend := schema.DatabaseBackend(viper.GetString("backend"))
	connStr := viper.GetString("db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.Backend = backend
	cfg.DBConnect = connStr

	return nil
}

// rosterSetupWrapper wraps rosterSetup to provide PreRunE for roster commands.
func rosterSetupWrapper(_ *cobra.Command, _ []string) error {
	return rosterSetup()
}

// rosterCmd focused on roster store management.
//
// Note: Roster subcommands use minimal initialization (rosterSetup) instead of
// the full sharedSetup used by scoring commands. This avoids loading the CSV
// roster and model config for simple store operations.
var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the roster database store",
	Long: `Manage the database store that holds imported rosters.

Supported backends: SQLite (default file store), MySQL, PostgreSQL, or None

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all stored student data
  migrate - Run schema migrations against the store

Examples:
  # Check store status
  studentrisk roster status --backend sqlite

  # Clear the store after a bad import
  studentrisk roster clear --backend sqlite`,
}

// rosterStatusCmd shows roster store status.
var rosterStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display roster store statistics and connection details",
	Long: `Show detailed information about the roster store.

Displays:
- Backend type
- Total number of stored students
- How many of them are at risk

Examples:
  # SQLite store status
  studentrisk roster status --backend sqlite

  # MySQL store status
  STUDENTRISK_BACKEND=mysql STUDENTRISK_DB_CONNECT="..." studentrisk roster status`,
	PreRunE: rosterSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := roster.InitRoster(cfg.Backend, cfg.DBConnect); err != nil {
			contract.LogFatal("Failed to initialize roster store", err)
		}
		store := roster.Manager.GetRosterStore()
		if store == nil {
			contract.LogFatal("Cannot read roster status", fmt.Errorf("no roster store configured"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Cannot read roster status", err)
		}
		roster.PrintRosterStatus(status)
	},
}

// rosterClearCmd clears the roster store.
var rosterClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored student data",
	Long: `Delete all student data from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the students table

Examples:
  # Clear SQLite store (default file location)
  studentrisk roster clear --backend sqlite

  # Clear MySQL store (set connection string via env variable)
  STUDENTRISK_BACKEND=mysql STUDENTRISK_DB_CONNECT="..." studentrisk roster clear`,
	PreRunE: rosterSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		dbFilePath := cfg.DBConnect
		if dbFilePath == "" {
			dbFilePath = contract.GetRosterDBFilePath()
		}
		if err := roster.ClearRoster(cfg.Backend, dbFilePath, cfg.DBConnect); err != nil {
			contract.LogFatal("Failed to clear roster", err)
		}
		fmt.Println("Roster cleared successfully.")
	},
}

// rosterMigrateCmd runs schema migrations.
var rosterMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations against the roster store",
	Long: `Apply versioned schema migrations to the roster database.

The --target-version flag controls the migration target:
  -1 - migrate to the latest version (default)
   0 - roll back all migrations
   N - migrate to version N

Examples:
  # Migrate to the latest schema
  studentrisk roster migrate --backend sqlite

  # Roll everything back
  studentrisk roster migrate --backend sqlite --target-version 0`,
	PreRunE: rosterSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := roster.MigrateRoster(cfg.Backend, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate roster store", err)
		}
	},
}
