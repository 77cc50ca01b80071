// SPDX-License-Identifier: MIT

// Package circuit: controlled reflection about the zero state.
package circuit

import "math"

// ControlledZeroReflection returns a sequence implementing, under a single
// control qubit, the reflection I − 2|0..0⟩⟨0..0| over reg: every basis
// state of reg keeps its sign except |0..0⟩, which is negated when the
// control qubit is 1.
//
// Construction: X on every reg qubit, a phase(π) on the last reg qubit
// controlled by ctrl and all other reg qubits, then the X conjugation
// undone. An empty reg yields an empty sequence.
func ControlledZeroReflection(ctrl int, reg Register) []Instruction {
	n := len(reg)
	if n == 0 {
		return nil
	}

	ops := make([]Instruction, 0, 2*n+1)
	for _, q := range reg {
		ops = append(ops, X(q))
	}

	controls := make([]Control, 0, n)
	controls = append(controls, On(ctrl))
	for _, q := range reg[:n-1] {
		controls = append(controls, On(q))
	}
	ops = append(ops, Phase(reg[n-1], math.Pi, controls...))

	for _, q := range reg {
		ops = append(ops, X(q))
	}

	return ops
}
