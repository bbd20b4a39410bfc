// Package stats provides the small statistical surface shared by the
// feature aggregator and the classifier, built on gonum for robustness.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Variance calculates the sample variance of a slice using gonum
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.Variance(data, nil)
}

// StandardDeviation calculates the sample standard deviation
func StandardDeviation(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return math.Sqrt(Variance(data))
}

// Column extracts the i-th column of a row-major matrix
func Column(rows [][]float64, i int) []float64 {
	column := make([]float64, len(rows))
	for r, row := range rows {
		column[r] = row[i]
	}
	return column
}
