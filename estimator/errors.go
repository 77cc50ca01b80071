// SPDX-License-Identifier: MIT
// Package estimator: sentinel error set.

package estimator

import "errors"

var (
	// ErrNonSquare indicates a non-square input matrix.
	ErrNonSquare = errors.New("estimator: matrix must be square")

	// ErrInvalidDimension indicates a square matrix whose dimension is
	// not a power of two of at least 2.
	ErrInvalidDimension = errors.New("estimator: dimension must be a power of two ≥ 2")

	// ErrInvalidPrecision indicates a non-positive precision-bit count.
	ErrInvalidPrecision = errors.New("estimator: precision bits must be positive")

	// ErrInvalidShots indicates a non-positive shot count.
	ErrInvalidShots = errors.New("estimator: shot count must be positive")

	// ErrInvalidVector indicates an initial singular-vector guess whose
	// length does not match the matrix dimension.
	ErrInvalidVector = errors.New("estimator: singular vector length mismatch")

	// ErrBackend wraps a failure surfaced by the phase-estimation
	// backend. The cause is joined, never retried.
	ErrBackend = errors.New("estimator: backend failure")
)
