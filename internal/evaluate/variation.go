package evaluate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cpdiag-ml/cpdiag/internal/cp"
	"github.com/cpdiag-ml/cpdiag/internal/tensor"
)

// Method selects the normalizer for PercentageVariation.
type Method string

// Supported normalizers.
const (
	// MethodData divides each component's sum of squares by the squared
	// norm of the data tensor. Requires the data tensor.
	MethodData Method = "data"

	// MethodModel divides by the total sum of squares of the model.
	MethodModel Method = "model"

	// MethodBoth returns both normalizations.
	MethodBoth Method = "both"
)

// PercentageVariation computes, per component, the fraction of the total
// sum of squares attributable to that component alone.
//
// CP factor matrices need not be orthogonal, so per-component variation is
// estimated through the cross-product matrix
//
//	T = (w·wᵀ) ⊙ ∏ₙ AₙᵀAₙ
//
// whose diagonal holds each component's squared norm (the weight outer
// product is omitted for unweighted decompositions). The absolute diagonal
// is normalized by the squared norm of the data tensor (MethodData), by
// the absolute total sum of T (MethodModel), or both (MethodBoth).
//
// Depending on the method, byData or byModel is nil. MethodData and
// MethodBoth require x; MethodModel ignores it and x may be nil. A
// model total of zero yields non-finite fractions per IEEE semantics.
func PercentageVariation(t *cp.Tensor, x *tensor.Dense, method Method) (byData, byModel []float64, err error) {
	if method != MethodData && method != MethodModel && method != MethodBoth {
		return nil, nil, fmt.Errorf("%w: %q (must be %q, %q or %q)",
			ErrInvalidMethod, method, MethodData, MethodModel, MethodBoth)
	}
	needData := method == MethodData || method == MethodBoth
	if needData {
		if x == nil {
			return nil, nil, fmt.Errorf("%w: the data tensor must be provided when method is %q",
				ErrMissingArgument, method)
		}
		if err := t.CheckShape(x); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
		}
	}

	rank := t.Rank()
	cross := mat.NewDense(rank, rank, nil)
	if t.Weighted() {
		w := mat.NewVecDense(rank, t.Weights)
		cross.Outer(1, w, w)
	} else {
		for i := 0; i < rank; i++ {
			for j := 0; j < rank; j++ {
				cross.Set(i, j, 1)
			}
		}
	}
	for _, f := range t.Factors {
		var gram mat.Dense
		gram.Mul(f.T(), f)
		cross.MulElem(cross, &gram)
	}

	ssc := make([]float64, rank)
	for r := range ssc {
		ssc[r] = math.Abs(cross.At(r, r))
	}

	if needData {
		sumSqX := floats.Dot(x.Data(), x.Data())
		byData = make([]float64, rank)
		for r, v := range ssc {
			byData[r] = v / sumSqX
		}
	}
	if method == MethodModel || method == MethodBoth {
		total := math.Abs(mat.Sum(cross))
		byModel = make([]float64, rank)
		for r, v := range ssc {
			byModel[r] = v / total
		}
	}
	return byData, byModel, nil
}
