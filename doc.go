// Package qsve derives the classical control data for quantum-style
// singular value estimation of dense real matrices — from amplitude
// encoding trees to eigen-phase post-processing.
//
// 🚀 What is qsve?
//
//	A small numeric/combinatorial core that brings together:
//		• Amplitude trees: binary sum-trees turning a signed vector into
//		  sign-correct controlled-rotation angles
//		• Instruction streams: a minimal tagged-variant gate vocabulary
//		  (bit flips, Hadamards, Y-rotations, phase rotations)
//		• Isometries & unitary: the two-reflection operator W whose
//		  eigen-phases encode singular values
//		• Phase decoding: binary fractions, phase folding, ranking, and
//		  a closed-form precision error bound
//		• A reference simulator: dense state-vector execution plus an
//		  exact phase-estimation backend
//
// ✨ Why choose qsve?
//
//   - Deterministic – exact linear-algebra estimation, reproducible counts
//   - Backend-agnostic – circuits leave as plain instruction lists, counts
//     come back as a map; swap the simulator for real hardware glue
//   - Pure numeric Go – gonum underneath, no cgo
//
// Everything is organized under five subpackages:
//
//	amptree/   — binary sum-trees, indexing, rotation-angle synthesis
//	circuit/   — instruction types, registers, QFT and reflection builders
//	estimator/ — engine: row trees, isometries, W, estimation pipeline
//	phase/     — measurement decoding and candidate grids
//	simulator/ — state-vector executor and phase-estimation backend
//
// Quick sketch:
//
//	engine, _ := estimator.New(matrix)
//	sigmas, _ := engine.TopSingularValues(simulator.NewBackend(),
//	    estimator.WithPrecisionBits(6))
//
//	go get github.com/katalvlaran/qsve
package qsve
