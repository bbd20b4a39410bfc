package classify

import (
	"errors"

	"github.com/RyanBlaney/ritmo-radar/stats"
)

// StandardScaler centers each feature column to zero mean and unit
// variance. Fit on the training split only, then applied to both splits.
type StandardScaler struct {
	means []float64
	stds  []float64
}

// Fit learns per-column means and standard deviations from rows.
func (s *StandardScaler) Fit(rows [][]float64) error {
	if len(rows) == 0 {
		return errors.New("classify: cannot fit scaler on an empty matrix")
	}

	columns := len(rows[0])
	s.means = make([]float64, columns)
	s.stds = make([]float64, columns)
	for i := 0; i < columns; i++ {
		column := stats.Column(rows, i)
		s.means[i] = stats.Mean(column)
		s.stds[i] = stats.StandardDeviation(column)
		if s.stds[i] == 0 {
			// Constant columns are centered but not scaled.
			s.stds[i] = 1
		}
	}
	return nil
}

// Transform returns a scaled copy of rows using the fitted parameters.
func (s *StandardScaler) Transform(rows [][]float64) [][]float64 {
	scaled := make([][]float64, len(rows))
	for r, row := range rows {
		scaledRow := make([]float64, len(row))
		for i, value := range row {
			scaledRow[i] = (value - s.means[i]) / s.stds[i]
		}
		scaled[r] = scaledRow
	}
	return scaled
}

// FitTransform fits the scaler on rows and returns their scaled copy.
func (s *StandardScaler) FitTransform(rows [][]float64) ([][]float64, error) {
	if err := s.Fit(rows); err != nil {
		return nil, err
	}
	return s.Transform(rows), nil
}
