package evaluate

import "errors"

// Sentinel errors for argument validation. All validation failures wrap
// one of these, so callers can match with errors.Is.
var (
	// ErrShapeMismatch indicates that a data tensor, factor matrix, or
	// label vector does not match the dimensions of the decomposition.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrMissingArgument indicates that a required argument was not
	// supplied, e.g. MethodData without a data tensor.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrInvalidMethod indicates an unrecognized Method value.
	ErrInvalidMethod = errors.New("invalid method")
)
