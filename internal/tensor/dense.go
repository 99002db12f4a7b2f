package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dense is a contiguous row-major N-dimensional float64 array.
type Dense struct {
	data   []float64
	shape  Shape
	stride []int
}

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.Strides(),
	}, nil
}

// FromSlice creates a tensor backed by a copy of data, interpreted in
// row-major order with the given shape.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	copy(t.data, data)
	return t, nil
}

// SuperDiagonal creates an ndim-way tensor with n entries per axis, holding
// ones where all indices coincide and zeros elsewhere.
func SuperDiagonal(ndim, n int) *Dense {
	shape := make(Shape, ndim)
	for i := range shape {
		shape[i] = n
	}
	t, err := New(shape)
	if err != nil {
		panic(err) // ndim and n are validated by the caller
	}
	step := 0
	for _, s := range t.stride {
		step += s
	}
	for i := 0; i < n; i++ {
		t.data[i*step] = 1
	}
	return t
}

// Shape returns the tensor's shape. The returned slice must not be modified.
func (d *Dense) Shape() Shape {
	return d.shape
}

// NumDims returns the number of axes.
func (d *Dense) NumDims() int {
	return len(d.shape)
}

// Data returns the underlying row-major data slice.
func (d *Dense) Data() []float64 {
	return d.data
}

// At returns the element at the given multi-index.
// Panics on rank or bounds violations.
func (d *Dense) At(indices ...int) float64 {
	return d.data[d.offset(indices)]
}

// Set stores v at the given multi-index.
// Panics on rank or bounds violations.
func (d *Dense) Set(v float64, indices ...int) {
	d.data[d.offset(indices)] = v
}

func (d *Dense) offset(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(d.shape), len(indices)))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= d.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for axis %d (dimension %d)", idx, i, d.shape[i]))
		}
		off += idx * d.stride[i]
	}
	return off
}

// Clone returns a deep copy of the tensor.
func (d *Dense) Clone() *Dense {
	c := &Dense{
		data:   make([]float64, len(d.data)),
		shape:  d.shape.Clone(),
		stride: append([]int(nil), d.stride...),
	}
	copy(c.data, d.data)
	return c
}

// SumSquares returns the squared Frobenius norm of the tensor.
func (d *Dense) SumSquares() float64 {
	return floats.Dot(d.data, d.data)
}

// ContractLast contracts the tensor's last axis with the column axis of m
// and prepends m's row axis, producing a tensor of shape
// (rows(m), shape[0], ..., shape[N-2]):
//
//	out[j, i0, ..., iN-2] = Σ_k m[j, k] · d[i0, ..., iN-2, k]
//
// Applying ContractLast once per mode therefore cycles every axis through
// the last position exactly once. The column count of m must equal the
// last dimension; panics otherwise.
func (d *Dense) ContractLast(m mat.Matrix) *Dense {
	rows, cols := m.Dims()
	last := d.shape[len(d.shape)-1]
	if cols != last {
		panic(fmt.Sprintf("cannot contract %dx%d matrix with last axis of dimension %d", rows, cols, last))
	}

	lead := len(d.data) / last
	unfolded := mat.NewDense(lead, last, d.data)

	var product mat.Dense
	product.Mul(m, unfolded.T())

	shape := make(Shape, len(d.shape))
	shape[0] = rows
	copy(shape[1:], d.shape[:len(d.shape)-1])

	return &Dense{
		data:   product.RawMatrix().Data,
		shape:  shape,
		stride: shape.Strides(),
	}
}
