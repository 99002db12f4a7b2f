// Copyright 2026 The cpdiag Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpdiag-ml/cpdiag/internal/cp"
)

// Tensor is a fitted CP decomposition: optional component weights plus one
// factor matrix (mode dimension × rank) per mode. A nil Weights slice
// means the decomposition is unweighted.
type Tensor = cp.Tensor

// New validates and wraps a CP decomposition. All factor matrices must
// share the same column count, and weights, when non-nil, must have
// exactly that many entries.
func New(weights []float64, factors []*mat.Dense) (*Tensor, error) {
	return cp.New(weights, factors)
}
