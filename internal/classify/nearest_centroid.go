// Package classify provides a minimal built-in classifier satisfying the
// evaluate.Classifier capability set, for scoring how well extracted
// factor matrices separate known sample groups.
package classify

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NearestCentroid classifies samples by Euclidean distance to per-class
// centroids. The zero value is ready to use; Fit must be called before
// Predict or Score.
type NearestCentroid struct {
	classes   []int
	centroids *mat.Dense // len(classes) × feature count
}

// Fit computes one centroid per distinct label from the rows of x.
func (c *NearestCentroid) Fit(x mat.Matrix, labels []int) error {
	rows, cols := x.Dims()
	if rows != len(labels) {
		return fmt.Errorf("classify: %d samples but %d labels", rows, len(labels))
	}
	if rows == 0 {
		return fmt.Errorf("classify: no samples to fit")
	}

	counts := make(map[int]int)
	for _, label := range labels {
		counts[label]++
	}
	classes := make([]int, 0, len(counts))
	for label := range counts {
		classes = append(classes, label)
	}
	sort.Ints(classes)

	index := make(map[int]int, len(classes))
	for i, label := range classes {
		index[label] = i
	}

	centroids := mat.NewDense(len(classes), cols, nil)
	for i := 0; i < rows; i++ {
		k := index[labels[i]]
		for j := 0; j < cols; j++ {
			centroids.Set(k, j, centroids.At(k, j)+x.At(i, j))
		}
	}
	for label, k := range index {
		row := centroids.RawRowView(k)
		floats.Scale(1/float64(counts[label]), row)
	}

	c.classes = classes
	c.centroids = centroids
	return nil
}

// Predict returns the label of the nearest centroid for each row of x.
func (c *NearestCentroid) Predict(x mat.Matrix) ([]int, error) {
	if c.centroids == nil {
		return nil, fmt.Errorf("classify: Predict called before Fit")
	}
	rows, cols := x.Dims()
	if _, want := c.centroids.Dims(); cols != want {
		return nil, fmt.Errorf("classify: %d features, classifier was fitted on %d", cols, want)
	}

	pred := make([]int, rows)
	sample := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sample[j] = x.At(i, j)
		}
		best := 0
		bestDist := floats.Distance(sample, c.centroids.RawRowView(0), 2)
		for k := 1; k < len(c.classes); k++ {
			if d := floats.Distance(sample, c.centroids.RawRowView(k), 2); d < bestDist {
				best, bestDist = k, d
			}
		}
		pred[i] = c.classes[best]
	}
	return pred, nil
}

// Score returns the classifier's accuracy on (x, labels).
func (c *NearestCentroid) Score(x mat.Matrix, labels []int) (float64, error) {
	pred, err := c.Predict(x)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(labels) {
		return 0, fmt.Errorf("classify: %d predictions but %d labels", len(pred), len(labels))
	}
	return Accuracy(labels, pred), nil
}

// Accuracy returns the fraction of positions where yTrue and yPred agree.
// It satisfies the evaluate.Metric signature.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue))
}
