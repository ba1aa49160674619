package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleRankStudents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("data", ""); p != "" {
		cfg.DataPath = p
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	cfg.AtRiskOnly = request.GetBool("at_risk", cfg.AtRiskOnly)

	ranked, err := core.GetRankedStudents(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(rankRows(ranked), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handlePredictRisk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	marks := core.Marks{
		Cat1:       request.GetFloat("cat1_marks", 0),
		Cat2:       request.GetFloat("cat2_marks", 0),
		Assignment: request.GetFloat("assignment_marks", 0),
		Attendance: request.GetFloat("attendance_marks", 0),
		Quiz:       request.GetFloat("quiz_marks", 0),
	}

	pred, err := core.LoadAndPredict(h.baseCfg, marks)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("prediction failed: %v", err)), nil
	}

	total := marks.Total()
	result := map[string]any{
		"total_internal_marks": total,
		"risk_score":           core.Score(total),
		"threshold_level":      string(core.Bucket(total)),
		"predicted_level":      pred.Label,
		"confidence":           pred.Confidence,
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleTrainModel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("data", ""); p != "" {
		cfg.DataPath = p
	}
	if m := request.GetString("model", ""); m != "" {
		cfg.ModelPath = m
	}

	report, err := core.TrainAndSave(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("training failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRosterStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("data", ""); p != "" {
		cfg.DataPath = p
	}

	metrics, err := core.GetRosterStats(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("stats failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(metrics, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// rankRow is the JSON-safe shape for ranked students. Missing marks become
// null instead of NaN, which encoding/json rejects.
type rankRow struct {
	Rank      int      `json:"rank"`
	StudentID string   `json:"student_id"`
	Name      string   `json:"name"`
	Total     *float64 `json:"total_internal_marks"`
	RiskScore *float64 `json:"risk_score"`
	RiskLevel string   `json:"risk_level"`
}

// jsonNumber converts a value to its JSON form; NaN maps to null.
func jsonNumber(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func rankRows(rows []schema.StudentRecord) []rankRow {
	out := make([]rankRow, len(rows))
	for i := range rows {
		r := &rows[i]
		out[i] = rankRow{
			Rank:      i + 1,
			StudentID: r.StudentID,
			Name:      r.Name,
			Total:     jsonNumber(r.TotalMarks),
			RiskScore: jsonNumber(r.RiskScore),
			RiskLevel: string(r.RiskLevel),
		}
	}
	return out
}
