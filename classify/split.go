package classify

import (
	"fmt"
	"math"
	"math/rand"
)

// TrainTestSplit shuffles rows with the given seed and holds out testSize
// (a fraction in (0, 1)) of them for evaluation. The same seed always
// produces the same split.
func TrainTestSplit(rows [][]float64, labels []string, testSize float64, seed int64) (trainRows, testRows [][]float64, trainLabels, testLabels []string, err error) {
	if len(rows) != len(labels) {
		return nil, nil, nil, nil, fmt.Errorf("classify: %d rows but %d labels", len(rows), len(labels))
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, fmt.Errorf("classify: test size %v outside (0, 1)", testSize)
	}

	n := len(rows)
	testCount := int(math.Round(float64(n) * testSize))
	if testCount == 0 || testCount == n {
		return nil, nil, nil, nil, fmt.Errorf("classify: %d rows cannot be split with test size %v", n, testSize)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	for i, idx := range perm {
		if i < testCount {
			testRows = append(testRows, rows[idx])
			testLabels = append(testLabels, labels[idx])
		} else {
			trainRows = append(trainRows, rows[idx])
			trainLabels = append(trainLabels, labels[idx])
		}
	}
	return trainRows, testRows, trainLabels, testLabels, nil
}
