// Package amptree encodes a real vector into a binary sum-tree of squared
// magnitudes plus sign metadata, and synthesizes from it the controlled
// rotation sequence that prepares the vector's normalized amplitudes on a
// qubit register.
//
// 🚀 What is the tree?
//
//	For a vector v of power-of-two length, level ℓ of the tree holds 2^ℓ
//	nodes; the deepest level holds v_i², every inner node is the sum of
//	its two children, and the root is ‖v‖₂². The original signs of v are
//	kept aside and re-injected at the deepest level of the rotation
//	synthesis.
//
//	v = [0.4, 0.4, 0.8, 0.2] gives
//
//	            1.00
//	        0.32    0.68
//	      0.16 0.16 0.64 0.04
//
// ✨ Key operations:
//   - New — build from a vector (length must be a power of two)
//   - Root / Node / ParentValue / LeftChildValue / ... — O(1) accessors
//     with index arithmetic (parent of (ℓ,i) is (ℓ−1,i/2))
//   - UpdateEntry — replace one leaf, rebuild the whole tree
//   - RotationSequence — derive the angle θ per node from
//     cos²(θ/2) = left/parent, correct signs at the deepest level, and
//     emit the controlled-rotation instruction stream, optionally gated
//     on an external control register
//
// Replaying the sequence against a zeroed register reproduces v/‖v‖₂,
// including signs, under the MSB-first qubit convention of package
// circuit.
//
// The tree is a flat array-of-levels; there are no node pointers. A leaf
// update rebuilds everything — tree sizes are power-of-two bounded and
// small, so the simple policy wins over incremental bookkeeping.
package amptree
