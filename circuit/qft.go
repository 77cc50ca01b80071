// SPDX-License-Identifier: MIT

// Package circuit: Fourier-transform cascades for phase decoding.
package circuit

import "math"

// QFT returns the quantum Fourier transform over reg as a fully connected
// controlled-phase cascade: for each wire j (MSB first) a Hadamard followed
// by phase rotations 2π/2^{k-j+1} controlled by every lower wire k, then a
// final bit reversal built from CX triples.
//
// With the MSB-first convention of this package, the sequence maps the
// basis state |x⟩ to (1/√2^n)·Σ_y e^{2πi·x·y/2^n} |y⟩.
func QFT(reg Register) []Instruction {
	n := len(reg)
	ops := make([]Instruction, 0, n*(n+1)/2+3*(n/2))
	for j := 0; j < n; j++ {
		ops = append(ops, H(reg[j]))
		for k := j + 1; k < n; k++ {
			angle := 2 * math.Pi / float64(int(1)<<(k-j+1))
			ops = append(ops, Phase(reg[j], angle, On(reg[k])))
		}
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		ops = append(ops, Swap(reg[i], reg[j])...)
	}

	return ops
}

// InverseQFT returns the decode cascade used after the controlled-unitary
// stage of phase estimation: the exact inverse of QFT(reg).
func InverseQFT(reg Register) []Instruction {
	return Inverse(QFT(reg))
}

// Swap exchanges qubits a and b using three controlled bit flips.
func Swap(a, b int) []Instruction {
	return []Instruction{
		MCX(b, On(a)),
		MCX(a, On(b)),
		MCX(b, On(a)),
	}
}
