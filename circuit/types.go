// SPDX-License-Identifier: MIT

// Package circuit: instruction variants and register helpers.
// This file intentionally contains ONLY the wire-format types and their
// constructors; sequence builders live in qft.go and reflection.go.
package circuit

// Kind tags an Instruction variant.
//
//   - KindBitFlip  — Pauli-X; with Controls it is a multi-controlled bit flip.
//   - KindHadamard — Hadamard; used by the phase-decode cascade.
//   - KindRotateY  — Y-rotation by Angle; the amplitude-encoding workhorse.
//   - KindPhase    — diag(1, e^{i·Angle}) on the target; with Controls it is
//     a multi-controlled phase rotation (Angle=π gives a multi-controlled Z).
type Kind uint8

const (
	// KindBitFlip is a (multi-controlled) Pauli-X on Target.
	KindBitFlip Kind = iota

	// KindHadamard is a (multi-controlled) Hadamard on Target.
	KindHadamard

	// KindRotateY is a (multi-controlled) Ry(Angle) on Target.
	KindRotateY

	// KindPhase is a (multi-controlled) phase rotation by Angle on Target.
	KindPhase
)

// Control is one (qubit, polarity) condition on an instruction.
// A plain control fires when the qubit is 1; an anti-control when it is 0.
type Control struct {
	Qubit int
	Anti  bool
}

// On returns a plain control on qubit q.
func On(q int) Control { return Control{Qubit: q} }

// Anti returns an anti-control on qubit q.
func Anti(q int) Control { return Control{Qubit: q, Anti: true} }

// Instruction is one element of an emitted gate sequence. Angle is
// meaningful only for KindRotateY and KindPhase.
type Instruction struct {
	Kind     Kind
	Target   int
	Controls []Control
	Angle    float64
}

// X returns an uncontrolled bit flip on target.
func X(target int) Instruction {
	return Instruction{Kind: KindBitFlip, Target: target}
}

// MCX returns a bit flip on target conditioned on controls.
func MCX(target int, controls ...Control) Instruction {
	return Instruction{Kind: KindBitFlip, Target: target, Controls: controls}
}

// H returns a Hadamard on target.
func H(target int) Instruction {
	return Instruction{Kind: KindHadamard, Target: target}
}

// RY returns a Y-rotation by theta on target, conditioned on controls.
func RY(target int, theta float64, controls ...Control) Instruction {
	return Instruction{Kind: KindRotateY, Target: target, Controls: controls, Angle: theta}
}

// Phase returns a phase rotation by phi on target, conditioned on controls.
func Phase(target int, phi float64, controls ...Control) Instruction {
	return Instruction{Kind: KindPhase, Target: target, Controls: controls, Angle: phi}
}

// Register is an ordered group of qubit indices. Order matters: reg[0]
// carries the most significant bit of the values the register encodes.
type Register []int

// NewRegister returns the register {first, first+1, ..., first+size-1}.
// A non-positive size yields an empty register.
func NewRegister(first, size int) Register {
	if size <= 0 {
		return nil
	}
	reg := make(Register, size)
	for i := range reg {
		reg[i] = first + i
	}

	return reg
}

// Inverse returns the sequence that undoes ops: the reversed list with
// RY and phase angles negated. Bit flips and Hadamards are self-inverse.
func Inverse(ops []Instruction) []Instruction {
	inv := make([]Instruction, 0, len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		in := ops[i]
		if in.Kind == KindRotateY || in.Kind == KindPhase {
			in.Angle = -in.Angle
		}
		inv = append(inv, in)
	}

	return inv
}
