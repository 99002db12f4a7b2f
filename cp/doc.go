// Copyright 2026 The cpdiag Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cp represents fitted CP/PARAFAC decompositions.
//
// A decomposition is a cp.Tensor: optional per-component weights plus one
// factor matrix per mode, every factor sharing the same column count (the
// rank). cpdiag standardizes on this single representation — there is no
// tuple form — and never mutates the caller's weights or factor matrices.
//
//	a := mat.NewDense(4, 2, aData) // mode 0: 4 × rank 2
//	b := mat.NewDense(5, 2, bData) // mode 1
//	c := mat.NewDense(6, 2, cData) // mode 2
//	decomp, err := cp.New(nil, []*mat.Dense{a, b, c}) // nil ⇒ unweighted
//
// Construct materializes the dense tensor the decomposition describes,
// which is what the reconstruction-error diagnostics compare against the
// reference data.
package cp
