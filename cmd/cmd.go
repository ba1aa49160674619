// Package cmd defines the command-line interface for studentrisk.
package cmd

import (
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the model subcommands to the parent model command
	modelCmd.AddCommand(modelStatusCmd)
	modelCmd.AddCommand(modelClearCmd)

	// Add the roster subcommands to the parent roster command
	rosterCmd.AddCommand(rosterStatusCmd)
	rosterCmd.AddCommand(rosterClearCmd)
	rosterCmd.AddCommand(rosterMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("data", "d", contract.DefaultDataPath, "Path to the roster CSV file")
	rootCmd.PersistentFlags().StringP("model", "m", contract.DefaultModelPath, "Path to the persisted prediction model")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Bool("at-risk", false, "Only show High and Failure risk students")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-student component marks")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("backend", string(schema.NoneBackend), "Roster backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of predictCmd to Viper
	predictCmd.Flags().Float64("cat1", 0, "CAT 1 marks (0-10)")
	predictCmd.Flags().Float64("cat2", 0, "CAT 2 marks (0-10)")
	predictCmd.Flags().Float64("assignment", 0, "Assignment marks (0-15)")
	predictCmd.Flags().Float64("attendance", 0, "Attendance marks (0-5)")
	predictCmd.Flags().Float64("quiz", 0, "Quiz marks (0-10)")
	if err := viper.BindPFlags(predictCmd.Flags()); err != nil {
		contract.LogFatal("Error binding predict flags", err)
	}

	// Bind all flags of sampleCmd to Viper
	sampleCmd.Flags().IntP("count", "n", contract.DefaultSampleCount, "Number of synthetic students to generate")
	if err := viper.BindPFlags(sampleCmd.Flags()); err != nil {
		contract.LogFatal("Error binding sample flags", err)
	}

	// Bind all flags of rosterMigrateCmd to Viper
	rosterMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(rosterMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding roster migrate flags", err)
	}
}
