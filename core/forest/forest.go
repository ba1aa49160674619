// Package forest implements a bagged ensemble of depth-limited decision
// trees. Fitting is fully deterministic for a fixed seed, and the fitted
// model serializes to JSON so it can round-trip through the model blob.
package forest

import (
	"errors"
	"math/rand"
)

// Defaults matching the fitted ensemble configuration.
const (
	DefaultTrees    = 100
	DefaultMaxDepth = 10
)

// ErrNotFitted is returned when predicting with an empty ensemble.
var ErrNotFitted = errors.New("forest has not been fitted")

// Config controls ensemble fitting.
type Config struct {
	Trees    int   // Number of trees in the ensemble
	MaxDepth int   // Depth limit per tree
	Seed     int64 // PRNG seed for bootstrap sampling
}

// Forest is a fitted bagging ensemble. Importance holds the normalized
// per-feature impurity decrease accumulated over all trees.
type Forest struct {
	Trees       []Tree    `json:"trees"`
	NumFeatures int       `json:"num_features"`
	NumClasses  int       `json:"num_classes"`
	Importance  []float64 `json:"importance"`
}

// Fit trains a bagging ensemble on the given samples. Each tree is grown on
// a bootstrap resample (with replacement) of the full training set, drawn
// from a single seeded PRNG so results are reproducible.
func Fit(xs [][]float64, ys []int, numClasses int, cfg Config) (*Forest, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil, errors.New("training samples and labels must be non-empty and aligned")
	}
	if cfg.Trees <= 0 {
		cfg.Trees = DefaultTrees
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	n := len(xs)
	numFeatures := len(xs[0])
	rng := rand.New(rand.NewSource(cfg.Seed))

	f := &Forest{
		Trees:       make([]Tree, 0, cfg.Trees),
		NumFeatures: numFeatures,
		NumClasses:  numClasses,
		Importance:  make([]float64, numFeatures),
	}

	for range cfg.Trees {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}

		b := &treeBuilder{
			xs:         xs,
			ys:         ys,
			numClasses: numClasses,
			maxDepth:   cfg.MaxDepth,
			nTotal:     float64(n),
			importance: make([]float64, numFeatures),
		}
		b.grow(sample, 0)
		f.Trees = append(f.Trees, Tree{Nodes: b.nodes})

		for i, v := range b.importance {
			f.Importance[i] += v
		}
	}

	// Normalize importances to sum to 1. A forest that never split (e.g. a
	// single-class dataset) falls back to a uniform spread so the ranking
	// invariant still holds.
	var total float64
	for _, v := range f.Importance {
		total += v
	}
	if total > 0 {
		for i := range f.Importance {
			f.Importance[i] /= total
		}
	} else {
		for i := range f.Importance {
			f.Importance[i] = 1.0 / float64(numFeatures)
		}
	}

	return f, nil
}

// PredictProba returns the mean leaf class distribution across all trees
// for a single feature vector.
func (f *Forest) PredictProba(x []float64) ([]float64, error) {
	if f == nil || len(f.Trees) == 0 || f.NumClasses == 0 {
		return nil, ErrNotFitted
	}

	probs := make([]float64, f.NumClasses)
	for i := range f.Trees {
		dist := f.Trees[i].predict(x)
		for c := 0; c < len(dist) && c < f.NumClasses; c++ {
			probs[c] += dist[c]
		}
	}
	for c := range probs {
		probs[c] /= float64(len(f.Trees))
	}
	return probs, nil
}

// Predict returns the majority class and its mean probability.
func (f *Forest) Predict(x []float64) (int, float64, error) {
	probs, err := f.PredictProba(x)
	if err != nil {
		return 0, 0, err
	}
	best := 0
	for c, p := range probs {
		if p > probs[best] {
			best = c
		}
	}
	return best, probs[best], nil
}
