// SPDX-License-Identifier: MIT

package amptree

import (
	"math"

	"github.com/katalvlaran/qsve/circuit"
)

// zeroNode is the threshold under which a parent node is treated as
// empty probability mass: no rotation is emitted for its subtree.
const zeroNode = 1e-12

// RotationSequence derives the controlled-rotation instruction stream
// that prepares values/‖values‖₂ on reg from the zero state.
//
// For every non-terminal node the angle satisfies
// cos²(θ/2) = leftChild/parent. At the deepest level θ is adjusted by the
// sign pattern of the node's two signed leaves (L, R):
//
//	L ≥ 0, R ≥ 0:  θ = 2·arccos(√(left/parent))
//	L < 0, R ≥ 0:  θ = 2·arcsin(√(left/parent)) + π
//	L ≥ 0, R < 0:  θ = 2·arcsin(√(left/parent)) − π
//	L < 0, R < 0:  θ = 2·arccos(√(left/parent)) + π, plus a preceding
//	               multi-controlled bit flip on the target qubit
//
// The rotation at level ℓ targets reg[ℓ] and is controlled on the path
// qubits reg[0..ℓ-1]; path bits equal to 0 are anti-controls, realized by
// conjugating the rotation with bit flips on those qubits rather than by
// native anti-control primitives. The four-case table and the flip
// placement are exactly the behavior pinned down by the round-trip
// vectors in the tests; do not re-derive them.
//
// With WithControlPattern/WithControlValue, every gate is additionally
// conditioned on an external control register: the sequence is conjugated
// by bit flips on the control qubits whose key bit is 1 (making those
// anti-controls), and each rotation carries plain controls on the whole
// control register.
//
// Errors: ErrInsufficientCapacity when 2^len(reg) < NumLeaves;
// ErrInvalidControlKey on malformed control options.
func (t *Tree) RotationSequence(reg circuit.Register, opts ...Option) ([]circuit.Instruction, error) {
	if len(reg) == 0 || 1<<len(reg) < t.NumLeaves() {
		return nil, ErrInsufficientCapacity
	}

	o := gatherOptions(opts...)
	key, err := o.resolveControlKey()
	if err != nil {
		return nil, err
	}

	ext := make([]circuit.Control, len(o.control))
	for i, q := range o.control {
		ext[i] = circuit.On(q)
	}

	var ops []circuit.Instruction

	// Key bits set to 1 become anti-controls: flip those qubits first and
	// restore them at the end.
	for i := range key {
		if key[i] == '1' {
			ops = append(ops, circuit.X(o.control[i]))
		}
	}

	depth := t.NumLevels()
	for level := 0; level < depth-1; level++ {
		for index := range t.levels[level] {
			parent := t.levels[level][index]
			if parent < zeroNode {
				continue // empty subtree, identity rotation
			}
			left := t.levels[level+1][2*index]
			ratio := left / parent
			if ratio < 0 {
				ratio = 0
			} else if ratio > 1 {
				ratio = 1
			}

			theta := 2 * math.Acos(math.Sqrt(ratio))
			flip := false
			if level == depth-2 {
				lv := t.values[2*index]
				rv := t.values[2*index+1]
				switch {
				case lv < 0 && rv > 0:
					theta = 2*math.Asin(math.Sqrt(ratio)) + math.Pi
				case lv > 0 && rv < 0:
					theta = 2*math.Asin(math.Sqrt(ratio)) - math.Pi
				case lv < 0 && rv < 0:
					theta = 2*math.Acos(math.Sqrt(ratio)) + math.Pi
					flip = true
				}
			}

			// Anti-control conjugation along the path: bit ii of the node
			// index (MSB first) selects the branch on qubit reg[ii].
			var wrap []circuit.Instruction
			for ii := 0; ii < level; ii++ {
				if index&(1<<(level-1-ii)) == 0 {
					if len(ext) > 0 {
						wrap = append(wrap, circuit.MCX(reg[ii], ext...))
					} else {
						wrap = append(wrap, circuit.X(reg[ii]))
					}
				}
			}

			controls := make([]circuit.Control, 0, len(ext)+level)
			controls = append(controls, ext...)
			for ii := 0; ii < level; ii++ {
				controls = append(controls, circuit.On(reg[ii]))
			}

			ops = append(ops, wrap...)
			if flip {
				if len(controls) > 0 {
					ops = append(ops, circuit.MCX(reg[level], controls...))
				} else {
					ops = append(ops, circuit.X(reg[level]))
				}
			}
			ops = append(ops, circuit.RY(reg[level], theta, controls...))
			ops = append(ops, wrap...)
		}
	}

	for i := range key {
		if key[i] == '1' {
			ops = append(ops, circuit.X(o.control[i]))
		}
	}

	return ops, nil
}
