package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNearestCentroidFitPredict(t *testing.T) {
	x := mat.NewDense(6, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		10, 10,
		11, 10,
		10, 11,
	})
	labels := []int{3, 3, 3, 7, 7, 7}

	var clf NearestCentroid
	require.NoError(t, clf.Fit(x, labels))

	pred, err := clf.Predict(mat.NewDense(2, 2, []float64{
		0.2, 0.4,
		10.5, 9.8,
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, pred)

	score, err := clf.Score(x, labels)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-12)
}

func TestNearestCentroidImperfectScore(t *testing.T) {
	// The third sample sits on the other cluster's centroid.
	x := mat.NewDense(4, 1, []float64{0, 0.2, 5, 5.2})
	labels := []int{0, 0, 0, 1}

	var clf NearestCentroid
	require.NoError(t, clf.Fit(x, labels))

	score, err := clf.Score(x, labels)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, score, 1e-12)
}

func TestNearestCentroidErrors(t *testing.T) {
	var clf NearestCentroid

	_, err := clf.Predict(mat.NewDense(1, 2, nil))
	assert.Error(t, err, "predict before fit")

	err = clf.Fit(mat.NewDense(2, 2, nil), []int{0})
	assert.Error(t, err, "label count mismatch")

	require.NoError(t, clf.Fit(mat.NewDense(2, 2, nil), []int{0, 1}))
	_, err = clf.Predict(mat.NewDense(1, 3, nil))
	assert.Error(t, err, "feature count mismatch")
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 1.0, Accuracy([]int{1, 2, 3}, []int{1, 2, 3}))
	assert.Equal(t, 0.0, Accuracy([]int{1, 2}, []int{2, 1}))
	assert.InDelta(t, 0.5, Accuracy([]int{1, 2}, []int{1, 3}), 1e-12)
	assert.Equal(t, 0.0, Accuracy(nil, nil))
}
