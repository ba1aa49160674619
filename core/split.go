package core

import (
	"math"
	"math/rand"
)

// stratifiedSplit partitions sample indices into train and test sets,
// holding out roughly testRatio of each class. Shuffling within each class
// uses the provided seeded PRNG, so the split is reproducible. Every class
// keeps at least one training sample.
func stratifiedSplit(ys []int, numClasses int, testRatio float64, rng *rand.Rand) (train, test []int) {
	byClass := make([][]int, numClasses)
	for i, y := range ys {
		byClass[y] = append(byClass[y], i)
	}

	for _, group := range byClass {
		if len(group) == 0 {
			continue
		}
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})

		nTest := int(math.Round(testRatio * float64(len(group))))
		if nTest >= len(group) {
			nTest = len(group) - 1
		}
		test = append(test, group[:nTest]...)
		train = append(train, group[nTest:]...)
	}
	return train, test
}
