//go:build basic

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStudentriskWorkflow drives the full CLI lifecycle against a SQLite backend.
func TestStudentriskWorkflow(t *testing.T) {
	workDir, err := os.MkdirTemp("", "studentrisk-basic-*")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(workDir) }()

	rosterPath := filepath.Join(workDir, "students.csv")
	modelPath := filepath.Join(workDir, "predictor.json")
	exportPath := filepath.Join(workDir, "export.csv")
	dbPath := filepath.Join(workDir, "roster.db")

	// Point the CLI at a throwaway SQLite file
	_ = os.Setenv("STUDENTRISK_BACKEND", "sqlite")
	_ = os.Setenv("STUDENTRISK_DB_CONNECT", dbPath)
	defer func() { _ = os.Unsetenv("STUDENTRISK_BACKEND") }()
	defer func() { _ = os.Unsetenv("STUDENTRISK_DB_CONNECT") }()

	// Generate a sample roster and import it
	err = runStudentriskCommand(t, "sample", "--data", rosterPath, "--count", "60")
	require.NoError(t, err)
	err = runStudentriskCommand(t, "import", "--data", rosterPath)
	require.NoError(t, err)

	// Rank the roster in each output format
	err = runStudentriskCommand(t, "rank", "--data", rosterPath, "--limit", "10")
	require.NoError(t, err)
	err = runStudentriskCommand(t, "rank", "--data", rosterPath, "--output", "json")
	require.NoError(t, err)
	err = runStudentriskCommand(t, "rank", "--data", rosterPath, "--output", "csv", "--at-risk")
	require.NoError(t, err)

	// Summarize the roster
	err = runStudentriskCommand(t, "stats", "--data", rosterPath)
	require.NoError(t, err)

	// Train a model and inspect it
	err = runStudentriskCommand(t, "train", "--data", rosterPath, "--model", modelPath)
	require.NoError(t, err)
	_, err = os.Stat(modelPath)
	require.NoError(t, err)
	err = runStudentriskCommand(t, "model", "status", "--model", modelPath)
	require.NoError(t, err)

	// Predict with the trained model
	err = runStudentriskCommand(t, "predict", "--model", modelPath,
		"--cat1", "8", "--cat2", "7", "--assignment", "12", "--attendance", "4", "--quiz", "9")
	require.NoError(t, err)

	// Export the stored roster back out as CSV
	err = runStudentriskCommand(t, "export", "--output", "csv", "--output-file", exportPath)
	require.NoError(t, err)
	_, err = os.Stat(exportPath)
	require.NoError(t, err)

	// Check roster status, then clear the roster and the model
	err = runStudentriskCommand(t, "roster", "status")
	require.NoError(t, err)
	err = runStudentriskCommand(t, "roster", "clear")
	require.NoError(t, err)
	err = runStudentriskCommand(t, "model", "clear", "--model", modelPath)
	require.NoError(t, err)
	_, err = os.Stat(modelPath)
	require.True(t, os.IsNotExist(err))
}
