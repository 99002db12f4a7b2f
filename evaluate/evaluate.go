// Copyright 2026 The cpdiag Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package evaluate

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpdiag-ml/cpdiag/internal/cp"
	"github.com/cpdiag-ml/cpdiag/internal/evaluate"
	"github.com/cpdiag-ml/cpdiag/internal/tensor"
)

// Sentinel errors wrapped by all argument-validation failures.
var (
	ErrShapeMismatch   = evaluate.ErrShapeMismatch
	ErrMissingArgument = evaluate.ErrMissingArgument
	ErrInvalidMethod   = evaluate.ErrInvalidMethod
)

// Method selects the normalizer for PercentageVariation.
type Method = evaluate.Method

// Supported PercentageVariation normalizers.
const (
	MethodData  Method = evaluate.MethodData
	MethodModel Method = evaluate.MethodModel
	MethodBoth  Method = evaluate.MethodBoth
)

// Option configures the reconstruction-error functions.
type Option = evaluate.Option

// WithSumSquared supplies a precomputed squared Frobenius norm of the data
// tensor, so RelativeSSE and Fit skip recomputing it.
func WithSumSquared(v float64) Option {
	return evaluate.WithSumSquared(v)
}

// Classifier is the capability set required of an externally supplied
// classifier: Fit, Predict and Score over a sample matrix and labels.
type Classifier = evaluate.Classifier

// Metric scores a prediction against the true labels.
type Metric = evaluate.Metric

// EstimateCoreTensor computes the Tucker core tensor minimizing the
// reconstruction residual for the given fixed factor matrices, using
// per-mode SVD pseudo-inverses instead of solving the full
// Kronecker-product least-squares system.
func EstimateCoreTensor(factors []*mat.Dense, x *tensor.Dense) (*tensor.Dense, error) {
	return evaluate.EstimateCoreTensor(factors, x)
}

// CoreConsistency computes the core consistency diagnostic: 100 when the
// estimated Tucker core is exactly superdiagonal, lower when component
// interactions violate the CP assumption. With normalised=false the
// deviation is normalized by the component count, with normalised=true by
// the squared norm of the estimated core.
func CoreConsistency(t *cp.Tensor, x *tensor.Dense, normalised bool) (float64, error) {
	return evaluate.CoreConsistency(t, x, normalised)
}

// SSE returns the sum of squared errors between the decomposition's dense
// reconstruction and the data tensor.
func SSE(t *cp.Tensor, x *tensor.Dense) (float64, error) {
	return evaluate.SSE(t, x)
}

// RelativeSSE returns SSE divided by the squared Frobenius norm of the
// data tensor.
func RelativeSSE(t *cp.Tensor, x *tensor.Dense, opts ...Option) (float64, error) {
	return evaluate.RelativeSSE(t, x, opts...)
}

// Fit returns 1 − RelativeSSE; a perfect reconstruction has fit 1.
func Fit(t *cp.Tensor, x *tensor.Dense, opts ...Option) (float64, error) {
	return evaluate.Fit(t, x, opts...)
}

// PercentageVariation computes each component's fraction of the total sum
// of squares, normalized against the data tensor (MethodData), the model
// total (MethodModel), or both (MethodBoth). Depending on the method,
// byData or byModel is nil.
func PercentageVariation(t *cp.Tensor, x *tensor.Dense, method Method) (byData, byModel []float64, err error) {
	return evaluate.PercentageVariation(t, x, method)
}

// ClassificationAccuracy fits clf on a factor matrix and its sample labels
// and returns either the classifier's own Score (nil metric) or
// metric(labels, predictions).
func ClassificationAccuracy(factorMatrix mat.Matrix, labels []int, clf Classifier, metric Metric) (float64, error) {
	return evaluate.ClassificationAccuracy(factorMatrix, labels, clf, metric)
}
