// Copyright 2026 The cpdiag Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense N-dimensional float64 array used as
// the reference data structure throughout cpdiag.
//
// # Overview
//
// A Dense tensor is a contiguous row-major buffer with an explicit Shape.
// The package intentionally stays small: creation, element access, the
// squared Frobenius norm, and the single mode-contraction primitive
// (ContractLast) that the core-estimation algorithm is built on.
//
// # Basic Usage
//
//	x, err := tensor.FromSlice(data, tensor.Shape{4, 5, 6})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	total := x.SumSquares()
//
// Factor matrices are ordinary gonum mat.Dense values; only the data
// tensor and derived core tensors use this package.
package tensor
