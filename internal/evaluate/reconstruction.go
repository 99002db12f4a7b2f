package evaluate

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cpdiag-ml/cpdiag/internal/cp"
	"github.com/cpdiag-ml/cpdiag/internal/tensor"
)

// Option configures the reconstruction-error functions.
type Option func(*options)

type options struct {
	sumSquared *float64
}

// WithSumSquared supplies a precomputed squared Frobenius norm of the data
// tensor, so RelativeSSE and Fit skip recomputing it.
func WithSumSquared(v float64) Option {
	return func(o *options) {
		o.sumSquared = &v
	}
}

// SSE returns the sum of squared errors between the dense reconstruction
// of the decomposition and the data tensor.
func SSE(t *cp.Tensor, x *tensor.Dense) (float64, error) {
	if err := t.CheckShape(x); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	dist := floats.Distance(x.Data(), t.Construct().Data(), 2)
	return dist * dist, nil
}

// RelativeSSE returns the sum of squared errors divided by the squared
// Frobenius norm of the data tensor.
func RelativeSSE(t *cp.Tensor, x *tensor.Dense, opts ...Option) (float64, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	sse, err := SSE(t, x)
	if err != nil {
		return 0, err
	}

	sumSq := 0.0
	if o.sumSquared != nil {
		sumSq = *o.sumSquared
	} else {
		sumSq = floats.Dot(x.Data(), x.Data())
	}
	return sse / sumSq, nil
}

// Fit returns 1 − RelativeSSE: the fraction of the data tensor's variation
// captured by the decomposition. A perfect reconstruction has fit 1.
func Fit(t *cp.Tensor, x *tensor.Dense, opts ...Option) (float64, error) {
	rel, err := RelativeSSE(t, x, opts...)
	if err != nil {
		return 0, err
	}
	return 1 - rel, nil
}
