// SPDX-License-Identifier: MIT
// Package simulator: sentinel error set.

package simulator

import "errors"

var (
	// ErrQubitOutOfRange indicates an instruction addressing a qubit
	// outside the state's register.
	ErrQubitOutOfRange = errors.New("simulator: qubit index out of range")

	// ErrControlOnTarget indicates an instruction whose control list
	// includes its own target qubit.
	ErrControlOnTarget = errors.New("simulator: control overlaps target")

	// ErrBadUnitary indicates a phase-estimation operator that is not
	// square or does not match the initial state's dimension.
	ErrBadUnitary = errors.New("simulator: operator/state dimension mismatch")

	// ErrBadRequest indicates a non-positive precision or shot count, or
	// a zero initial state.
	ErrBadRequest = errors.New("simulator: invalid estimation request")
)
