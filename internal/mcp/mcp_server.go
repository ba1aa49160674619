// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the student risk MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Student Risk Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: rank_students ---
	s.AddTool(mcp.NewTool("rank_students",
		mcp.WithDescription("Rank students by academic risk, worst first, from the configured roster."),
		mcp.WithString("data", mcp.Description("Path to the roster CSV file (defaults to the configured path).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
		mcp.WithBoolean("at_risk", mcp.Description("Only include High and Failure risk students.")),
	), h.handleRankStudents)

	// --- 2. Tool: predict_risk ---
	s.AddTool(mcp.NewTool("predict_risk",
		mcp.WithDescription("Predict the risk level for a set of component marks using the trained model."),
		mcp.WithNumber("cat1_marks", mcp.Description("CAT 1 marks, 0 to 10."), mcp.Required()),
		mcp.WithNumber("cat2_marks", mcp.Description("CAT 2 marks, 0 to 10."), mcp.Required()),
		mcp.WithNumber("assignment_marks", mcp.Description("Assignment marks, 0 to 15."), mcp.Required()),
		mcp.WithNumber("attendance_marks", mcp.Description("Attendance marks, 0 to 5."), mcp.Required()),
		mcp.WithNumber("quiz_marks", mcp.Description("Quiz marks, 0 to 10."), mcp.Required()),
	), h.handlePredictRisk)

	// --- 3. Tool: train_model ---
	s.AddTool(mcp.NewTool("train_model",
		mcp.WithDescription("Train the risk prediction model on the configured roster and persist it."),
		mcp.WithString("data", mcp.Description("Path to the roster CSV file (defaults to the configured path).")),
		mcp.WithString("model", mcp.Description("Path for the persisted model (defaults to the configured path).")),
	), h.handleTrainModel)

	// --- 4. Tool: roster_stats ---
	s.AddTool(mcp.NewTool("roster_stats",
		mcp.WithDescription("Summarize the roster: totals, averages, and the risk level distribution."),
		mcp.WithString("data", mcp.Description("Path to the roster CSV file (defaults to the configured path).")),
	), h.handleRosterStats)

	return s
}

// StartMCPServer starts the student risk MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
