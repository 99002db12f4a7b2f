package evaluate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Classifier is the capability set required of an externally supplied
// classifier. Any estimator exposing these three methods works; the
// evaluation never depends on a concrete implementation.
type Classifier interface {
	// Fit trains the classifier on samples (rows of x) and their labels.
	Fit(x mat.Matrix, labels []int) error

	// Predict returns one predicted label per row of x.
	Predict(x mat.Matrix) ([]int, error)

	// Score returns the classifier's own accuracy measure on (x, labels).
	Score(x mat.Matrix, labels []int) (float64, error)
}

// Metric scores a prediction against the true labels.
type Metric func(yTrue, yPred []int) float64

// ClassificationAccuracy fits the classifier on a factor matrix
// (samples × components) and scores how well the extracted components
// separate the given labels.
//
// With a nil metric, the classifier's built-in Score is returned;
// otherwise metric is applied to the true labels and the classifier's
// predictions.
func ClassificationAccuracy(factorMatrix mat.Matrix, labels []int, clf Classifier, metric Metric) (float64, error) {
	rows, _ := factorMatrix.Dims()
	if rows != len(labels) {
		return 0, fmt.Errorf("%w: factor matrix has %d rows but %d labels given",
			ErrShapeMismatch, rows, len(labels))
	}

	if err := clf.Fit(factorMatrix, labels); err != nil {
		return 0, fmt.Errorf("evaluate: fitting classifier: %w", err)
	}
	if metric == nil {
		return clf.Score(factorMatrix, labels)
	}
	pred, err := clf.Predict(factorMatrix)
	if err != nil {
		return 0, fmt.Errorf("evaluate: predicting labels: %w", err)
	}
	return metric(labels, pred), nil
}
