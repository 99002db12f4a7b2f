// Copyright 2026 The cpdiag Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package classify provides a built-in nearest-centroid classifier and an
// accuracy metric satisfying the evaluate.Classifier and evaluate.Metric
// contracts. Any external classifier with the same capability set can be
// used instead.
package classify

import (
	"github.com/cpdiag-ml/cpdiag/internal/classify"
)

// NearestCentroid classifies samples by Euclidean distance to per-class
// centroids. The zero value is ready to use; Fit before Predict or Score.
type NearestCentroid = classify.NearestCentroid

// Accuracy returns the fraction of positions where yTrue and yPred agree.
func Accuracy(yTrue, yPred []int) float64 {
	return classify.Accuracy(yTrue, yPred)
}
