// Package cp defines the canonical in-memory representation of a fitted
// CP/PARAFAC decomposition: optional component weights plus one factor
// matrix per tensor mode, all sharing the same column count (the rank).
package cp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cpdiag-ml/cpdiag/internal/tensor"
)

// Tensor is a fitted CP decomposition.
//
// Weights holds one scalar per component; nil means the decomposition is
// unweighted (every component weight is 1). Factors holds one matrix per
// mode, each shaped (mode dimension × rank).
//
// A Tensor never takes ownership of the caller's matrices: no method
// mutates Weights or Factors.
type Tensor struct {
	Weights []float64
	Factors []*mat.Dense
}

// New validates and wraps a CP decomposition.
//
// All factor matrices must share the same column count, and Weights, when
// non-nil, must have exactly that many entries.
func New(weights []float64, factors []*mat.Dense) (*Tensor, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("cp: at least one factor matrix required")
	}
	_, rank := factors[0].Dims()
	for n, f := range factors[1:] {
		if _, c := f.Dims(); c != rank {
			return nil, fmt.Errorf("cp: factor matrix for mode %d has %d columns, mode 0 has %d (rank must match)",
				n+1, c, rank)
		}
	}
	if weights != nil && len(weights) != rank {
		return nil, fmt.Errorf("cp: %d weights for rank-%d decomposition", len(weights), rank)
	}
	return &Tensor{Weights: weights, Factors: factors}, nil
}

// Rank returns the number of components.
func (t *Tensor) Rank() int {
	_, r := t.Factors[0].Dims()
	return r
}

// NumModes returns the number of tensor modes.
func (t *Tensor) NumModes() int {
	return len(t.Factors)
}

// Weighted reports whether explicit component weights are present.
func (t *Tensor) Weighted() bool {
	return t.Weights != nil
}

// Shape returns the shape of the dense tensor the decomposition describes.
func (t *Tensor) Shape() tensor.Shape {
	shape := make(tensor.Shape, len(t.Factors))
	for n, f := range t.Factors {
		shape[n], _ = f.Dims()
	}
	return shape
}

// CheckShape verifies that x has one axis per factor matrix and that each
// axis dimension equals the corresponding factor's row count.
func (t *Tensor) CheckShape(x *tensor.Dense) error {
	if x == nil {
		return fmt.Errorf("cp: data tensor is nil")
	}
	xs := x.Shape()
	if len(xs) != len(t.Factors) {
		return fmt.Errorf("cp: data tensor has %d modes, decomposition has %d", len(xs), len(t.Factors))
	}
	for n, f := range t.Factors {
		rows, _ := f.Dims()
		if xs[n] != rows {
			return fmt.Errorf("cp: mode %d has dimension %d in the data tensor but %d rows in its factor matrix",
				n, xs[n], rows)
		}
	}
	return nil
}

// Construct materializes the dense tensor described by the decomposition:
// the weighted sum over components of the outer product of the factor
// columns.
func (t *Tensor) Construct() *tensor.Dense {
	shape := t.Shape()
	out, err := tensor.New(shape)
	if err != nil {
		panic(err) // factor dims are positive by construction
	}
	dst := out.Data()

	for r := 0; r < t.Rank(); r++ {
		buf := []float64{1}
		if t.Weights != nil {
			buf[0] = t.Weights[r]
		}
		// Expand the component column by column; after mode n the buffer
		// covers axes 0..n in row-major order.
		for _, f := range t.Factors {
			rows, _ := f.Dims()
			next := make([]float64, len(buf)*rows)
			for j, v := range buf {
				for i := 0; i < rows; i++ {
					next[j*rows+i] = v * f.At(i, r)
				}
			}
			buf = next
		}
		for i, v := range buf {
			dst[i] += v
		}
	}
	return out
}

// WeightedFactors returns the factor matrices with the component weights
// folded into the first mode: column r of the first factor is scaled by
// Weights[r]. The first matrix is copied before scaling so the caller's
// factors stay untouched; the remaining matrices are shared.
func (t *Tensor) WeightedFactors() []*mat.Dense {
	factors := make([]*mat.Dense, len(t.Factors))
	copy(factors, t.Factors)
	if t.Weights == nil {
		return factors
	}

	first := mat.DenseCopyOf(t.Factors[0])
	rows, rank := first.Dims()
	for r := 0; r < rank; r++ {
		for i := 0; i < rows; i++ {
			first.Set(i, r, first.At(i, r)*t.Weights[r])
		}
	}
	factors[0] = first
	return factors
}
