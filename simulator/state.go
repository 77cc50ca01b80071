// SPDX-License-Identifier: MIT

package simulator

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsve/circuit"
)

// State is a dense state vector over n qubits, initialized to |0..0⟩.
// Qubit q holds bit (n−1−q) of a basis-state index: qubit 0 is the most
// significant. Amplitudes are complex; real-only sequences (bit flips and
// Y-rotations) keep them real-valued.
type State struct {
	n    int
	amps []complex128
}

// NewState returns the |0..0⟩ state over numQubits qubits.
// numQubits must be positive; this is a programmer error, not user input.
func NewState(numQubits int) *State {
	if numQubits <= 0 {
		panic("simulator: NewState needs at least one qubit")
	}
	s := &State{n: numQubits, amps: make([]complex128, 1<<numQubits)}
	s.amps[0] = 1

	return s
}

// NumQubits returns the register width.
func (s *State) NumQubits() int { return s.n }

// Amplitudes returns a copy of the state vector.
func (s *State) Amplitudes() []complex128 {
	return append([]complex128(nil), s.amps...)
}

// RealAmplitudes returns the real parts of the state vector. Convenient
// for preparation sequences, which never leave the real subspace.
func (s *State) RealAmplitudes() []float64 {
	re := make([]float64, len(s.amps))
	for i, a := range s.amps {
		re[i] = real(a)
	}

	return re
}

// Probabilities returns |amp|² per basis state.
func (s *State) Probabilities() []float64 {
	p := make([]float64, len(s.amps))
	for i, a := range s.amps {
		p[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	return p
}

// Run applies every instruction in order, stopping at the first error.
func (s *State) Run(ops []circuit.Instruction) error {
	for _, in := range ops {
		if err := s.Apply(in); err != nil {
			return err
		}
	}

	return nil
}

// Apply executes a single instruction.
func (s *State) Apply(in circuit.Instruction) error {
	if in.Target < 0 || in.Target >= s.n {
		return ErrQubitOutOfRange
	}
	for _, c := range in.Controls {
		if c.Qubit < 0 || c.Qubit >= s.n {
			return ErrQubitOutOfRange
		}
		if c.Qubit == in.Target {
			return ErrControlOnTarget
		}
	}

	var m00, m01, m10, m11 complex128
	switch in.Kind {
	case circuit.KindBitFlip:
		m00, m01, m10, m11 = 0, 1, 1, 0
	case circuit.KindHadamard:
		h := complex(1/math.Sqrt2, 0)
		m00, m01, m10, m11 = h, h, h, -h
	case circuit.KindRotateY:
		c := complex(math.Cos(in.Angle/2), 0)
		d := complex(math.Sin(in.Angle/2), 0)
		m00, m01, m10, m11 = c, -d, d, c
	case circuit.KindPhase:
		m00, m01, m10, m11 = 1, 0, 0, cmplx.Exp(complex(0, in.Angle))
	default:
		return ErrBadRequest
	}

	mask := 1 << (s.n - 1 - in.Target)
	for i := range s.amps {
		if i&mask != 0 {
			continue // visit each pair once, from its target=0 member
		}
		if !s.controlsSatisfied(i, in.Controls) {
			continue
		}
		j := i | mask
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = m00*a0 + m01*a1
		s.amps[j] = m10*a0 + m11*a1
	}

	return nil
}

// controlsSatisfied reports whether basis state i meets every control
// condition. The target bit is not part of the controls by construction.
func (s *State) controlsSatisfied(i int, controls []circuit.Control) bool {
	for _, c := range controls {
		bit := i&(1<<(s.n-1-c.Qubit)) != 0
		if bit == c.Anti {
			return false
		}
	}

	return true
}
