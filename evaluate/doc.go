// Copyright 2026 The cpdiag Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package evaluate scores a fitted CP/PARAFAC decomposition against the
// data tensor it was fitted to.
//
// # Diagnostics
//
//   - EstimateCoreTensor: optimal Tucker core for fixed factor matrices,
//     via per-mode SVD pseudo-inverses.
//   - CoreConsistency: how superdiagonal that core is — a check on the
//     chosen component count.
//   - SSE, RelativeSSE, Fit: reconstruction error against the data tensor.
//   - PercentageVariation: per-component share of the total sum of squares.
//   - ClassificationAccuracy: how well a factor matrix separates known
//     sample labels, using any classifier implementing the Classifier
//     capability set.
//
// # Numeric conventions
//
// Argument errors (shape mismatches, missing data tensors, unknown
// methods) are reported eagerly and wrap the exported sentinel errors.
// Degenerate floating-point cases are not errors: zero singular values
// pseudo-invert to zero, and zero denominators (an all-zero estimated core
// with normalised core consistency, or a zero model total in
// PercentageVariation) propagate ±Inf or NaN per IEEE semantics.
//
// # Basic Usage
//
//	decomp, _ := cp.New(weights, factors)
//	cc, err := evaluate.CoreConsistency(decomp, x, false)
//	fit, err := evaluate.Fit(decomp, x)
package evaluate
