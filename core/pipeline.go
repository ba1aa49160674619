package core

import (
	"fmt"
	"sort"

	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/internal/csvio"
	"github.com/huangsam/studentrisk/schema"
)

// LoadRoster returns the working roster as a dataset. A configured database
// backend wins over the CSV file when it holds any rows, so imported data
// stays authoritative until cleared. The database schema always carries all
// five mark columns and the label; a CSV reports whichever subset it has.
func LoadRoster(cfg *contract.Config, mgr contract.StoreManager) (*schema.Dataset, error) {
	if mgr != nil {
		if store := mgr.GetRosterStore(); store != nil {
			rows, err := store.List()
			if err != nil {
				return nil, fmt.Errorf("loading roster from %s backend: %w", cfg.Backend, err)
			}
			if len(rows) > 0 {
				return &schema.Dataset{
					Features: schema.CanonicalFeatures,
					Labeled:  true,
					Rows:     rows,
				}, nil
			}
		}
	}

	ds, err := csvio.ReadFile(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("loading roster from %s: %w", cfg.DataPath, err)
	}
	return ds, nil
}

// GetRankedStudents loads the roster, recomputes derived fields, and returns
// students ordered worst risk first. AtRiskOnly and ResultLimit narrow the
// result after ordering.
func GetRankedStudents(cfg *contract.Config, mgr contract.StoreManager) ([]schema.StudentRecord, error) {
	ds, err := LoadRoster(cfg, mgr)
	if err != nil {
		return nil, err
	}
	rows := ds.Rows

	for i := range rows {
		Recalculate(&rows[i])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := Rank(rows[i].RiskLevel), Rank(rows[j].RiskLevel)
		if ri != rj {
			return ri < rj
		}
		if rows[i].RiskScore != rows[j].RiskScore {
			return rows[i].RiskScore < rows[j].RiskScore
		}
		return rows[i].StudentID < rows[j].StudentID
	})

	if cfg.AtRiskOnly {
		filtered := rows[:0]
		for i := range rows {
			if schema.IsAtRisk(rows[i].RiskLevel) {
				filtered = append(filtered, rows[i])
			}
		}
		rows = filtered
	}

	if cfg.ResultLimit > 0 && len(rows) > cfg.ResultLimit {
		rows = rows[:cfg.ResultLimit]
	}
	return rows, nil
}

// GetRosterStats loads the roster and derives summary metrics from it.
func GetRosterStats(cfg *contract.Config, mgr contract.StoreManager) (RosterMetrics, error) {
	ds, err := LoadRoster(cfg, mgr)
	if err != nil {
		return RosterMetrics{}, err
	}
	for i := range ds.Rows {
		Recalculate(&ds.Rows[i])
	}
	return ComputeMetrics(ds.Rows), nil
}

// TrainAndSave trains a fresh model on the current roster and persists it to
// the configured model path. The dataset is trained as loaded: labels come
// from the source's risk_level column, and a CSV missing some mark columns
// trains on the subset it has.
func TrainAndSave(cfg *contract.Config, mgr contract.StoreManager) (*TrainReport, error) {
	ds, err := LoadRoster(cfg, mgr)
	if err != nil {
		return nil, err
	}

	p := NewPredictor()
	report, err := p.Train(ds)
	if err != nil {
		return nil, err
	}
	if err := p.Save(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("saving model to %s: %w", cfg.ModelPath, err)
	}
	return report, nil
}

// LoadAndPredict loads the persisted model and predicts a risk level for the
// given marks. A missing model yields the untrained sentinel, not an error.
func LoadAndPredict(cfg *contract.Config, marks Marks) (Prediction, error) {
	p := NewPredictor()
	if _, err := p.Load(cfg.ModelPath); err != nil {
		return Prediction{}, fmt.Errorf("loading model from %s: %w", cfg.ModelPath, err)
	}
	return p.Predict(marks), nil
}
