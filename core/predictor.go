package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/huangsam/studentrisk/core/forest"
	"github.com/huangsam/studentrisk/schema"
)

// Training configuration. The seed is fixed so that splits, bootstrap
// sampling and therefore the fitted model are fully reproducible.
const (
	MinTrainRows    = 10
	MinTrainColumns = 3
	TestRatio       = 0.2
	TrainSeed       = 42
)

// NotTrainedLabel is the sentinel label returned by Predict before any
// successful Train or Load.
const NotTrainedLabel = "Model not trained"

// Training failure conditions. These are reported outcomes, never faults:
// the predictor's state is unchanged when Train returns one of them.
var (
	ErrInsufficientData     = errors.New("not enough data to train the model: need at least 10 usable records")
	ErrInsufficientFeatures = errors.New("need at least 3 academic mark columns")
	ErrMissingLabel         = errors.New("risk level column not found in data")
)

// Marks holds the five component scores for a single prediction request.
// Fields left at zero behave exactly like absent inputs.
type Marks struct {
	Cat1       float64
	Cat2       float64
	Assignment float64
	Attendance float64
	Quiz       float64
}

// MarksFromMap builds Marks from a component-name mapping. Unknown keys are
// ignored and missing keys default to zero.
func MarksFromMap(values map[string]float64) Marks {
	var m Marks
	for name, v := range values {
		m.set(schema.Feature(name), v)
	}
	return m
}

func (m *Marks) set(f schema.Feature, v float64) {
	switch f {
	case schema.FeatureCat1:
		m.Cat1 = v
	case schema.FeatureCat2:
		m.Cat2 = v
	case schema.FeatureAssignment:
		m.Assignment = v
	case schema.FeatureAttendance:
		m.Attendance = v
	case schema.FeatureQuiz:
		m.Quiz = v
	}
}

// Value returns the mark for a canonical feature name, zero for others.
func (m Marks) Value(f schema.Feature) float64 {
	switch f {
	case schema.FeatureCat1:
		return m.Cat1
	case schema.FeatureCat2:
		return m.Cat2
	case schema.FeatureAssignment:
		return m.Assignment
	case schema.FeatureAttendance:
		return m.Attendance
	case schema.FeatureQuiz:
		return m.Quiz
	default:
		return 0
	}
}

// Total returns the summed marks, used for the deterministic bucket.
func (m Marks) Total() float64 {
	return m.Cat1 + m.Cat2 + m.Assignment + m.Attendance + m.Quiz
}

// FeatureImportance is one entry of the ranked importance table.
type FeatureImportance struct {
	Feature schema.Feature `json:"feature"`
	Weight  float64        `json:"weight"`
}

// TrainReport summarizes a successful training run. Accuracy is
// informational only and never gates training success.
type TrainReport struct {
	RowsUsed    int                 `json:"rows_used"`
	RowsDropped int                 `json:"rows_dropped"`
	Features    []schema.Feature    `json:"features"`
	Labels      []schema.RiskLevel  `json:"labels"`
	Accuracy    float64             `json:"accuracy"`
	Importance  []FeatureImportance `json:"importance"`
}

// Prediction is the uniform result shape of Predict. Failures surface as a
// label-shaped message with zero confidence rather than an error return.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"` // percent, 0-100
}

// Predictor learns to predict risk levels from component marks. Each
// instance is owned by a single logical caller; concurrent trainers must
// serialize access externally.
type Predictor struct {
	forest  *forest.Forest
	codec   LabelCodec
	ranking []FeatureImportance // descending weight; defines inference order
	trained bool
}

// NewPredictor returns an untrained predictor.
func NewPredictor() *Predictor {
	return &Predictor{}
}

// Trained reports whether the predictor holds a fitted model.
func (p *Predictor) Trained() bool {
	return p.trained
}

// Importance returns the ranked feature-importance table of the current
// model, nil when untrained.
func (p *Predictor) Importance() []FeatureImportance {
	if !p.trained {
		return nil
	}
	out := make([]FeatureImportance, len(p.ranking))
	copy(out, p.ranking)
	return out
}

// Train fits a fresh bagged ensemble on the dataset and replaces the
// predictor's model on success. On failure the predictor is left exactly as
// it was, trained or not.
func (p *Predictor) Train(ds *schema.Dataset) (*TrainReport, error) {
	if ds == nil || len(ds.Rows) < MinTrainRows {
		return nil, ErrInsufficientData
	}

	features := ds.AvailableFeatures()
	if len(features) < MinTrainColumns {
		return nil, fmt.Errorf("%w: found %d", ErrInsufficientFeatures, len(features))
	}
	if !ds.Labeled {
		return nil, ErrMissingLabel
	}

	// Drop rows with a missing mark among the selected features or a label
	// outside the fixed vocabulary.
	present := make(map[schema.RiskLevel]bool)
	var usable []*schema.StudentRecord
	for i := range ds.Rows {
		row := &ds.Rows[i]
		if !row.HasAllMarks(features) || !schema.IsValidRiskLevel(row.RiskLevel) {
			continue
		}
		present[row.RiskLevel] = true
		usable = append(usable, row)
	}
	if len(usable) < MinTrainRows {
		return nil, fmt.Errorf("%w: %d complete records after cleaning", ErrInsufficientData, len(usable))
	}

	codec := NewLabelCodec(present)
	xs := make([][]float64, len(usable))
	ys := make([]int, len(usable))
	for i, row := range usable {
		vec := make([]float64, len(features))
		for j, f := range features {
			vec[j] = row.Mark(f)
		}
		xs[i] = vec
		ys[i], _ = codec.Encode(row.RiskLevel)
	}

	rng := rand.New(rand.NewSource(TrainSeed))
	trainIdx, testIdx := stratifiedSplit(ys, codec.Len(), TestRatio, rng)

	trainX := make([][]float64, len(trainIdx))
	trainY := make([]int, len(trainIdx))
	for i, idx := range trainIdx {
		trainX[i] = xs[idx]
		trainY[i] = ys[idx]
	}

	fitted, err := forest.Fit(trainX, trainY, codec.Len(), forest.Config{
		Trees:    forest.DefaultTrees,
		MaxDepth: forest.DefaultMaxDepth,
		Seed:     TrainSeed,
	})
	if err != nil {
		return nil, fmt.Errorf("fitting ensemble: %w", err)
	}

	// Held-out accuracy is informational; a poor score never blocks the
	// state transition.
	correct := 0
	for _, idx := range testIdx {
		class, _, err := fitted.Predict(xs[idx])
		if err == nil && class == ys[idx] {
			correct++
		}
	}
	accuracy := 0.0
	if len(testIdx) > 0 {
		accuracy = float64(correct) / float64(len(testIdx))
	}

	// The descending importance ranking fixes the canonical feature order
	// used for inference.
	ranking := make([]FeatureImportance, len(features))
	for i, f := range features {
		ranking[i] = FeatureImportance{Feature: f, Weight: fitted.Importance[i]}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Weight > ranking[j].Weight
	})

	p.forest = fitted
	p.codec = codec
	p.ranking = ranking
	p.trained = true

	return &TrainReport{
		RowsUsed:    len(usable),
		RowsDropped: len(ds.Rows) - len(usable),
		Features:    features,
		Labels:      codec.Labels(),
		Accuracy:    accuracy,
		Importance:  p.Importance(),
	}, nil
}

// Predict runs a single-row inference. The feature vector is assembled in
// the canonical inference order, the importance ranking recorded at training
// time, with absent components defaulting to zero. Internal failures come
// back as an error-string label with zero confidence so callers can treat
// the result uniformly.
func (p *Predictor) Predict(m Marks) Prediction {
	if !p.trained {
		return Prediction{Label: NotTrainedLabel, Confidence: 0}
	}

	vec := make([]float64, len(p.ranking))
	for i, fi := range p.ranking {
		vec[i] = m.Value(fi.Feature)
	}

	probs, err := p.forest.PredictProba(vec)
	if err != nil {
		return Prediction{Label: fmt.Sprintf("Prediction error: %v", err), Confidence: 0}
	}

	best := 0
	for c, pr := range probs {
		if pr > probs[best] {
			best = c
		}
	}
	label, ok := p.codec.Decode(best)
	if !ok {
		return Prediction{Label: fmt.Sprintf("Prediction error: unknown class %d", best), Confidence: 0}
	}

	return Prediction{Label: string(label), Confidence: probs[best] * 100.0}
}

// modelBundle is the on-disk shape of a persisted predictor. All fields
// must round-trip exactly so a restored model predicts bit-identically.
type modelBundle struct {
	Trained    bool                `json:"trained"`
	Labels     []schema.RiskLevel  `json:"labels"`
	Importance []FeatureImportance `json:"feature_importance"`
	Forest     *forest.Forest      `json:"forest"`
}

// Save serializes the predictor as one atomic blob at path, creating the
// containing directory if absent. The blob is written to a temp file and
// renamed into place so a crash never leaves a half-written model.
func (p *Predictor) Save(path string) error {
	bundle := modelBundle{
		Trained:    p.trained,
		Labels:     p.codec.Labels(),
		Importance: p.ranking,
		Forest:     p.forest,
	}
	blob, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("encoding model bundle: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating model directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp model file: %w", err)
	}
	if _, err := tmp.Write(blob); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing model blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("closing temp model file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replacing model blob: %w", err)
	}
	return nil
}

// Load restores a predictor from the blob at path, replacing all in-memory
// state atomically: a blob that fails validation leaves the predictor
// untouched. A missing file is a normal "nothing to restore" outcome and
// returns (false, nil).
func (p *Predictor) Load(path string) (bool, error) {
	blob, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading model blob: %w", err)
	}

	var bundle modelBundle
	if err := json.Unmarshal(blob, &bundle); err != nil {
		return false, fmt.Errorf("decoding model blob: %w", err)
	}
	if bundle.Trained {
		if bundle.Forest == nil || len(bundle.Labels) == 0 || len(bundle.Importance) == 0 {
			return false, errors.New("model blob is marked trained but incomplete")
		}
		var sum float64
		for _, fi := range bundle.Importance {
			if math.IsNaN(fi.Weight) || fi.Weight < 0 {
				return false, errors.New("model blob has invalid feature importances")
			}
			sum += fi.Weight
		}
		if math.Abs(sum-1.0) > 1e-6 {
			return false, errors.New("model blob feature importances do not sum to 1")
		}
	}

	p.forest = bundle.Forest
	p.codec = codecFromLabels(bundle.Labels)
	p.ranking = bundle.Importance
	p.trained = bundle.Trained
	return true, nil
}
