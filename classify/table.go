// Package classify trains and evaluates a Gaussian Naive Bayes classifier
// over the serialized feature table: every column but the last is a
// numeric feature, the last column is the label.
package classify

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// LoadTable reads a feature table with a header row and a trailing label
// column, returning the feature matrix and the label vector.
func LoadTable(r io.Reader) ([][]float64, []string, error) {
	reader := csv.NewReader(r)

	if _, err := reader.Read(); err != nil {
		return nil, nil, fmt.Errorf("classify: reading header row: %w", err)
	}

	var rows [][]float64
	var labels []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("classify: reading table row: %w", err)
		}
		if len(record) < 2 {
			return nil, nil, fmt.Errorf("classify: table row %d has no feature columns", len(rows)+1)
		}

		row := make([]float64, len(record)-1)
		for i, field := range record[:len(record)-1] {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("classify: non-numeric feature in row %d: %w", len(rows)+1, err)
			}
			row[i] = value
		}

		rows = append(rows, row)
		labels = append(labels, record[len(record)-1])
	}

	return rows, labels, nil
}
