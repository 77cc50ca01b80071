// SPDX-License-Identifier: MIT
// Package phase: sentinel error set.

package phase

import "errors"

var (
	// ErrInvalidBitstring indicates an empty measurement string or one
	// containing characters other than '0' and '1'.
	ErrInvalidBitstring = errors.New("phase: invalid measurement bit string")

	// ErrInvalidPrecision indicates a non-positive precision-bit count.
	ErrInvalidPrecision = errors.New("phase: precision bits must be positive")
)
