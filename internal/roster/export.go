package roster

import (
	"errors"
	"fmt"

	"github.com/huangsam/studentrisk/internal/csvio"
	"github.com/huangsam/studentrisk/internal/parquet"
	"github.com/huangsam/studentrisk/schema"
)

// ExecuteRosterExport exports the stored roster to a Parquet or CSV file.
func ExecuteRosterExport(outputFile string, mode schema.OutputMode, precision int) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the roster store
	store := Manager.GetRosterStore()
	if store == nil {
		return errors.New("no roster store configured; set --backend to sqlite, mysql, or postgres")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get roster status: %w", err)
	}
	if status.TotalStudents == 0 {
		return errors.New("no roster data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total students: %d\n", status.TotalStudents)

	records, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to retrieve students: %w", err)
	}

	switch mode {
	case schema.CSVOut:
		if err := csvio.WriteFile(outputFile, records, precision); err != nil {
			return fmt.Errorf("failed to write CSV export: %w", err)
		}
		fmt.Printf("Exported %d students to: %s\n", len(records), outputFile)

	case schema.ParquetOut:
		rows := parquet.ConvertStudentRecords(records)
		if err := parquet.WriteStudentsParquet(rows, outputFile); err != nil {
			return fmt.Errorf("failed to write Parquet export: %w", err)
		}
		fmt.Printf("Exported %d students to: %s\n", len(rows), outputFile)
		fmt.Println("\nExport complete! The Parquet file can be used with:")
		fmt.Println("  - Apache Spark")
		fmt.Println("  - Apache Arrow")
		fmt.Println("  - Pandas (via pyarrow)")
		fmt.Println("  - DuckDB")
		fmt.Println("  - Any other Parquet-compatible tool")

	default:
		return fmt.Errorf("unsupported export format: %s. Use csv or parquet", mode)
	}

	return nil
}
