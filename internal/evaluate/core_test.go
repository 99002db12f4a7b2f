package evaluate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cpdiag-ml/cpdiag/internal/cp"
	"github.com/cpdiag-ml/cpdiag/internal/tensor"
)

// referenceCore computes the Tucker core by direct multi-mode contraction
// with the factor transposes, which is the least-squares solution when the
// factor matrices have orthonormal columns.
func referenceCore(a, b, c *mat.Dense, x *tensor.Dense) *tensor.Dense {
	_, rank := a.Dims()
	g, err := tensor.New(tensor.Shape{rank, rank, rank})
	if err != nil {
		panic(err)
	}
	xs := x.Shape()
	for p := 0; p < rank; p++ {
		for q := 0; q < rank; q++ {
			for s := 0; s < rank; s++ {
				sum := 0.0
				for i := 0; i < xs[0]; i++ {
					for j := 0; j < xs[1]; j++ {
						for k := 0; k < xs[2]; k++ {
							sum += a.At(i, p) * b.At(j, q) * c.At(k, s) * x.At(i, j, k)
						}
					}
				}
				g.Set(sum, p, q, s)
			}
		}
	}
	return g
}

func TestEstimateCoreTensorOrthonormalFactors(t *testing.T) {
	// With orthonormal factor columns every singular value is 1 and the
	// fast estimate must reduce to a plain multi-mode contraction.
	h := 1 / math.Sqrt2
	a := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		0, 0,
	})
	b := mat.NewDense(3, 2, []float64{
		h, h,
		h, -h,
		0, 0,
	})
	c := mat.NewDense(3, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
	})

	data := make([]float64, 27)
	for i := range data {
		data[i] = math.Sin(float64(i)) + 0.1*float64(i)
	}
	x, err := tensor.FromSlice(data, tensor.Shape{3, 3, 3})
	require.NoError(t, err)

	got, err := EstimateCoreTensor([]*mat.Dense{a, b, c}, x)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2, 2, 2}, got.Shape())

	want := referenceCore(a, b, c, x)
	for p := 0; p < 2; p++ {
		for q := 0; q < 2; q++ {
			for s := 0; s < 2; s++ {
				assert.InDelta(t, want.At(p, q, s), got.At(p, q, s), 1e-10, "core entry (%d,%d,%d)", p, q, s)
			}
		}
	}
}

func TestEstimateCoreTensorIdentityFactors(t *testing.T) {
	// Identity factors leave the data tensor unchanged.
	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	x, err := tensor.FromSlice(data, tensor.Shape{2, 2, 2})
	require.NoError(t, err)

	g, err := EstimateCoreTensor([]*mat.Dense{eye, eye, eye}, x)
	require.NoError(t, err)
	for i, v := range data {
		assert.InDelta(t, v, g.Data()[i], 1e-12)
	}
}

func TestEstimateCoreTensorRankDeficientFactor(t *testing.T) {
	// A factor with a zero column has a zero singular value; the
	// pseudo-inverse must map it to zero instead of blowing up.
	a := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 0,
	})
	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 2, 2})
	require.NoError(t, err)

	g, err := EstimateCoreTensor([]*mat.Dense{a, eye, eye}, x)
	require.NoError(t, err)
	for _, v := range g.Data() {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "core entries must stay finite")
	}
}

func TestEstimateCoreTensorShapeErrors(t *testing.T) {
	a := mat.NewDense(2, 2, nil)
	b := mat.NewDense(3, 2, nil)
	x, err := tensor.New(tensor.Shape{2, 3})
	require.NoError(t, err)

	_, err = EstimateCoreTensor([]*mat.Dense{a}, x)
	assert.ErrorIs(t, err, ErrShapeMismatch, "mode count mismatch")

	_, err = EstimateCoreTensor([]*mat.Dense{a, mat.NewDense(3, 3, nil)}, x)
	assert.ErrorIs(t, err, ErrShapeMismatch, "rank mismatch")

	_, err = EstimateCoreTensor([]*mat.Dense{b, b}, x)
	assert.ErrorIs(t, err, ErrShapeMismatch, "row count mismatch")

	_, err = EstimateCoreTensor(nil, x)
	assert.ErrorIs(t, err, ErrMissingArgument)

	_, err = EstimateCoreTensor([]*mat.Dense{a, b}, nil)
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestCoreConsistencyExactModel(t *testing.T) {
	// Data built from the decomposition itself: the optimal core is the
	// superdiagonal identity and the diagnostic must be 100.
	a := mat.NewDense(4, 2, []float64{
		1, 0.5,
		-1, 2,
		0.5, 1,
		2, -1,
	})
	b := mat.NewDense(5, 2, []float64{
		1, 1,
		2, -1,
		0, 3,
		1, 0.5,
		-2, 1,
	})
	c := mat.NewDense(6, 2, []float64{
		0.5, 2,
		1, 1,
		-1, 0,
		2, -0.5,
		0, 1,
		1, 3,
	})

	for _, weights := range [][]float64{nil, {2.5, -1.5}} {
		decomp, err := cp.New(weights, []*mat.Dense{a, b, c})
		require.NoError(t, err)
		x := decomp.Construct()

		cc, err := CoreConsistency(decomp, x, false)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, cc, 1e-8, "weights=%v", weights)

		cc, err = CoreConsistency(decomp, x, true)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, cc, 1e-8, "normalised, weights=%v", weights)
	}
}

func TestCoreConsistencyHandComputed(t *testing.T) {
	// Identity factors make the estimated core equal to the data tensor:
	// X[0,0,0]=1, X[1,1,1]=1, X[0,1,1]=0.5 gives ‖G−I‖² = 0.25, so
	// CC = 100 − 100·0.25/2 = 87.5 unnormalised and
	// CC = 100 − 100·0.25/2.25 ≈ 88.889 normalised.
	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	decomp, err := cp.New(nil, []*mat.Dense{eye, eye, eye})
	require.NoError(t, err)

	x, err := tensor.New(tensor.Shape{2, 2, 2})
	require.NoError(t, err)
	x.Set(1, 0, 0, 0)
	x.Set(1, 1, 1, 1)
	x.Set(0.5, 0, 1, 1)

	cc, err := CoreConsistency(decomp, x, false)
	require.NoError(t, err)
	assert.InDelta(t, 87.5, cc, 1e-10)

	cc, err = CoreConsistency(decomp, x, true)
	require.NoError(t, err)
	assert.InDelta(t, 100-100*0.25/2.25, cc, 1e-10)
}

func TestCoreConsistencyZeroCoreNormalised(t *testing.T) {
	// An all-zero data tensor gives an all-zero estimated core; the
	// normalised denominator is zero and the result is non-finite.
	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	decomp, err := cp.New(nil, []*mat.Dense{eye, eye, eye})
	require.NoError(t, err)

	x, err := tensor.New(tensor.Shape{2, 2, 2})
	require.NoError(t, err)

	cc, err := CoreConsistency(decomp, x, true)
	require.NoError(t, err)
	assert.True(t, math.IsInf(cc, -1), "got %v", cc)
}

func TestCoreConsistencyShapeMismatch(t *testing.T) {
	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	decomp, err := cp.New(nil, []*mat.Dense{eye, eye})
	require.NoError(t, err)

	x, err := tensor.New(tensor.Shape{2, 3})
	require.NoError(t, err)

	_, err = CoreConsistency(decomp, x, false)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}
