package mcp_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	mcp_internal "github.com/huangsam/studentrisk/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestRoster writes a small labeled roster CSV and returns its path.
func writeTestRoster(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()
	require.NoError(t, w.Write([]string{
		"student_id", "name", "cat1_marks", "cat2_marks", "assignment_marks",
		"attendance_marks", "quiz_marks",
	}))
	rows := [][]string{
		{"STU0001", "Priya Raman", "9", "9", "14", "5", "9"},
		{"STU0002", "Arun Kumar", "3", "3", "6", "2", "4"},
		{"STU0003", "Divya Shankar", "7", "7", "12", "4", "8"},
	}
	for _, row := range rows {
		require.NoError(t, w.Write(row))
	}
	return path
}

func TestMCPServerTools(t *testing.T) {
	rosterPath := writeTestRoster(t)
	baseCfg := &contract.Config{
		DataPath:  rosterPath,
		ModelPath: filepath.Join(t.TempDir(), "predictor.json"),
		Precision: 1,
	}

	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)
	ctx := context.Background()

	run := func(name string, args map[string]any) *mcp.CallToolResult {
		tool := s.GetTool(name)
		require.NotNil(t, tool, "Tool %s should exist", name)
		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: name, Arguments: args},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		return res
	}

	t.Run("rank_students returns worst first", func(t *testing.T) {
		res := run("rank_students", map[string]any{})
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "STU0002")
		assert.Less(t, strings.Index(text, "STU0002"), strings.Index(text, "STU0001"))
	})

	t.Run("rank_students respects at_risk filter", func(t *testing.T) {
		res := run("rank_students", map[string]any{"at_risk": true})
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "STU0002")
		assert.NotContains(t, text, "STU0001")
	})

	t.Run("rank_students missing roster", func(t *testing.T) {
		res := run("rank_students", map[string]any{"data": filepath.Join(t.TempDir(), "absent.csv")})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "ranking failed")
	})

	t.Run("predict_risk before training", func(t *testing.T) {
		res := run("predict_risk", map[string]any{
			"cat1_marks": 9.0, "cat2_marks": 9.0, "assignment_marks": 14.0,
			"attendance_marks": 5.0, "quiz_marks": 9.0,
		})
		require.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, core.NotTrainedLabel)
	})

	t.Run("train_model with insufficient data", func(t *testing.T) {
		res := run("train_model", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "training failed")
	})

	t.Run("roster_stats summarizes the roster", func(t *testing.T) {
		res := run("roster_stats", map[string]any{})
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"total_students": 3`)
		assert.Contains(t, text, `"at_risk": 1`)
	})
}
