// Copyright 2026 The cpdiag Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/cpdiag-ml/cpdiag/internal/tensor"
)

// Shape represents the per-axis dimensions of a dense tensor.
// Example: Shape{2, 3, 4} is a 3-way tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Dense is a contiguous row-major N-dimensional float64 array.
type Dense = tensor.Dense

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) (*Dense, error) {
	return tensor.New(shape)
}

// FromSlice creates a tensor from a copy of data, interpreted in
// row-major order with the given shape.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// SuperDiagonal creates an ndim-way tensor with n entries per axis,
// holding ones where all indices coincide and zeros elsewhere.
func SuperDiagonal(ndim, n int) *Dense {
	return tensor.SuperDiagonal(ndim, n)
}
