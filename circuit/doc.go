// Package circuit defines the abstract gate-sequence boundary of the
// estimation core: a flat, tagged list of instructions addressed over
// plain qubit indices, plus the small set of combinatorial sequence
// builders the protocol needs (inverse-Fourier phase decode, controlled
// zero-state reflection, sequence inversion).
//
// 🚀 Why an instruction list?
//
//	The numeric core never talks to a simulator or device API directly.
//	It emits []Instruction values — single-qubit bit flips, Hadamards,
//	controlled Y-rotations and controlled phase rotations — and hands
//	them to whatever backend the caller wires in. The list is passed by
//	value; there are no callbacks and no hidden execution state.
//
// ✨ Conventions:
//   - Qubits are bare ints, grouped by callers into Register values.
//   - Qubit 0 is the most-significant bit of a basis-state index
//     (MSB-first). Preparation sequences therefore reproduce vectors at
//     their natural indices, with no trailing swap fix-ups.
//   - Anti-controls exist in the Control type, but emitted sequences
//     prefer X-conjugation around plain controls to keep the instruction
//     set minimal for downstream backends.
//
// See amptree for the rotation synthesis that produces most of these
// sequences, and simulator for a reference executor.
package circuit
