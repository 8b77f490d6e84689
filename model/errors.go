package model

import "errors"

var (
	// ErrBadShape is returned when a program has no variables or no constraints.
	ErrBadShape = errors.New("model: invalid shape")

	// ErrDimensionMismatch is returned when cost, matrix and rhs sizes disagree.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")

	// ErrNaNInf is returned when a coefficient is NaN or infinite.
	ErrNaNInf = errors.New("model: NaN or Inf coefficient")
)
