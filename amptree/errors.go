// SPDX-License-Identifier: MIT
// Package amptree: sentinel error set. Callers match via errors.Is; no
// user-triggered condition panics.

package amptree

import "errors"

var (
	// ErrInvalidDimension is returned by New when the input vector length
	// is zero or not a power of two. Fatal to the instance; callers must
	// pad to the next power of two themselves.
	ErrInvalidDimension = errors.New("amptree: vector length must be a power of two")

	// ErrInsufficientCapacity is returned by RotationSequence when the
	// target register cannot address every leaf (2^len(reg) < leaves).
	ErrInsufficientCapacity = errors.New("amptree: register too small for leaf count")

	// ErrInvalidControlKey is returned by RotationSequence when a control
	// pattern has the wrong length, contains a character other than 0/1,
	// or is an integer outside [0, 2^len(control register)).
	ErrInvalidControlKey = errors.New("amptree: malformed control key")

	// ErrOutOfRange indicates a leaf index outside [0, NumLeaves).
	ErrOutOfRange = errors.New("amptree: leaf index out of range")
)
