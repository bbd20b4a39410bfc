package classify

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/RyanBlaney/ritmo-radar/logging"
	"github.com/RyanBlaney/ritmo-radar/stats"
)

// varianceFloor keeps per-class Gaussians well defined when a feature is
// constant within a class.
const varianceFloor = 1e-9

// GaussianNB is a Gaussian Naive Bayes classifier: one independent normal
// per (class, feature), class priors from training frequencies.
type GaussianNB struct {
	classes   []string
	priors    map[string]float64
	means     map[string][]float64
	variances map[string][]float64
	logger    logging.Logger
}

// NewGaussianNB creates an unfitted classifier.
func NewGaussianNB() *GaussianNB {
	return &GaussianNB{
		logger: logging.WithFields(logging.Fields{
			"component": "gaussian_nb",
		}),
	}
}

// Fit estimates per-class feature means, variances, and priors.
func (g *GaussianNB) Fit(rows [][]float64, labels []string) error {
	if len(rows) == 0 {
		return errors.New("classify: cannot fit on an empty matrix")
	}
	if len(rows) != len(labels) {
		return fmt.Errorf("classify: %d rows but %d labels", len(rows), len(labels))
	}

	byClass := make(map[string][][]float64)
	for i, row := range rows {
		byClass[labels[i]] = append(byClass[labels[i]], row)
	}

	columns := len(rows[0])
	g.classes = g.classes[:0]
	g.priors = make(map[string]float64, len(byClass))
	g.means = make(map[string][]float64, len(byClass))
	g.variances = make(map[string][]float64, len(byClass))

	for class, classRows := range byClass {
		means := make([]float64, columns)
		variances := make([]float64, columns)
		for i := 0; i < columns; i++ {
			column := stats.Column(classRows, i)
			means[i] = stats.Mean(column)
			variances[i] = math.Max(stats.Variance(column), varianceFloor)
		}

		g.classes = append(g.classes, class)
		g.priors[class] = float64(len(classRows)) / float64(len(rows))
		g.means[class] = means
		g.variances[class] = variances
	}

	// Fixed class order keeps tie-breaking deterministic across runs.
	sort.Strings(g.classes)

	g.logger.Debug("fitted classifier", logging.Fields{
		"classes": len(g.classes),
		"rows":    len(rows),
		"columns": columns,
	})
	return nil
}

// Predict returns the most probable class for each row.
func (g *GaussianNB) Predict(rows [][]float64) ([]string, error) {
	if len(g.classes) == 0 {
		return nil, errors.New("classify: classifier is not fitted")
	}

	predictions := make([]string, len(rows))
	for i, row := range rows {
		best := ""
		bestScore := math.Inf(-1)
		for _, class := range g.classes {
			score := g.logPosterior(class, row)
			if best == "" || score > bestScore {
				best, bestScore = class, score
			}
		}
		predictions[i] = best
	}
	return predictions, nil
}

func (g *GaussianNB) logPosterior(class string, row []float64) float64 {
	score := math.Log(g.priors[class])
	means := g.means[class]
	variances := g.variances[class]
	for i, value := range row {
		normal := distuv.Normal{Mu: means[i], Sigma: math.Sqrt(variances[i])}
		score += normal.LogProb(value)
	}
	return score
}

// AccuracyScore returns the fraction of predictions matching the true
// labels.
func AccuracyScore(trueLabels, predicted []string) (float64, error) {
	if len(trueLabels) != len(predicted) {
		return 0, fmt.Errorf("classify: %d true labels but %d predictions", len(trueLabels), len(predicted))
	}
	if len(trueLabels) == 0 {
		return 0, errors.New("classify: no predictions to score")
	}

	correct := 0
	for i, label := range trueLabels {
		if predicted[i] == label {
			correct++
		}
	}
	return float64(correct) / float64(len(trueLabels)), nil
}
