package forest

import (
	"math"
	"sort"
)

// Node is a single decision node stored in a flat array. Leaves have
// Feature == -1 and carry the class distribution observed during fitting.
// Internal nodes route samples left when x[Feature] <= Threshold.
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Dist      []float64 `json:"dist,omitempty"`
}

// Tree is a depth-limited CART classifier over a flat node array.
// Index 0 is always the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// treeBuilder carries fitting state shared across the recursive growth.
type treeBuilder struct {
	xs         [][]float64
	ys         []int
	numClasses int
	maxDepth   int
	nTotal     float64
	importance []float64 // accumulated impurity decrease per feature
	nodes      []Node
}

// giniImpurity computes the Gini impurity of the label counts.
func giniImpurity(counts []int, total int) float64 {
	if total == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		impurity -= p * p
	}
	return impurity
}

// classCounts tallies labels for the given sample indices.
func (b *treeBuilder) classCounts(idx []int) []int {
	counts := make([]int, b.numClasses)
	for _, i := range idx {
		counts[b.ys[i]]++
	}
	return counts
}

// distribution converts label counts into a probability vector.
func distribution(counts []int, total int) []float64 {
	dist := make([]float64, len(counts))
	if total == 0 {
		return dist
	}
	for i, c := range counts {
		dist[i] = float64(c) / float64(total)
	}
	return dist
}

// bestSplit finds the (feature, threshold) pair with the largest impurity
// decrease over the given samples. Ties resolve to the lowest feature index
// and then the lowest threshold, keeping tree growth deterministic.
func (b *treeBuilder) bestSplit(idx []int, parentImpurity float64) (feature int, threshold, decrease float64) {
	feature = -1
	n := len(idx)
	if n < 2 {
		return
	}

	numFeatures := len(b.xs[idx[0]])
	values := make([]float64, 0, n)

	for f := range numFeatures {
		values = values[:0]
		for _, i := range idx {
			values = append(values, b.xs[i][f])
		}
		sort.Float64s(values)

		// Candidate thresholds are midpoints between distinct neighbors.
		for v := 1; v < n; v++ {
			if values[v] == values[v-1] {
				continue
			}
			thr := (values[v] + values[v-1]) / 2

			leftCounts := make([]int, b.numClasses)
			rightCounts := make([]int, b.numClasses)
			nLeft, nRight := 0, 0
			for _, i := range idx {
				if b.xs[i][f] <= thr {
					leftCounts[b.ys[i]]++
					nLeft++
				} else {
					rightCounts[b.ys[i]]++
					nRight++
				}
			}
			if nLeft == 0 || nRight == 0 {
				continue
			}

			weighted := (float64(nLeft)*giniImpurity(leftCounts, nLeft) +
				float64(nRight)*giniImpurity(rightCounts, nRight)) / float64(n)
			dec := parentImpurity - weighted
			if dec > decrease+1e-12 {
				feature, threshold, decrease = f, thr, dec
			}
		}
	}
	return
}

// grow recursively builds the subtree for idx and returns its node index.
func (b *treeBuilder) grow(idx []int, depth int) int {
	counts := b.classCounts(idx)
	impurity := giniImpurity(counts, len(idx))

	makeLeaf := func() int {
		b.nodes = append(b.nodes, Node{
			Feature: -1,
			Left:    -1,
			Right:   -1,
			Dist:    distribution(counts, len(idx)),
		})
		return len(b.nodes) - 1
	}

	if depth >= b.maxDepth || impurity == 0 || len(idx) < 2 {
		return makeLeaf()
	}

	feature, threshold, decrease := b.bestSplit(idx, impurity)
	if feature < 0 || decrease <= 0 {
		return makeLeaf()
	}

	// Weighted impurity decrease feeds the per-feature importance tally.
	b.importance[feature] += (float64(len(idx)) / b.nTotal) * decrease

	var left, right []int
	for _, i := range idx {
		if b.xs[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	// Reserve this node's slot before growing children so the root stays at 0.
	nodeIdx := len(b.nodes)
	b.nodes = append(b.nodes, Node{Feature: feature, Threshold: threshold, Left: -1, Right: -1})
	b.nodes[nodeIdx].Left = b.grow(left, depth+1)
	b.nodes[nodeIdx].Right = b.grow(right, depth+1)
	return nodeIdx
}

// predict walks the tree for a single feature vector and returns the leaf
// class distribution.
func (t *Tree) predict(x []float64) []float64 {
	if len(t.Nodes) == 0 {
		return nil
	}
	i := 0
	for {
		node := t.Nodes[i]
		if node.Feature < 0 {
			return node.Dist
		}
		v := 0.0
		if node.Feature < len(x) {
			v = x[node.Feature]
		}
		if v <= node.Threshold || math.IsNaN(v) {
			i = node.Left
		} else {
			i = node.Right
		}
	}
}
