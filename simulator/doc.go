// Package simulator is a reference executor for the circuit instruction
// stream and a linear-algebra phase-estimation backend.
//
// It plays the role of the external gate-sequence collaborator at the
// boundary described in package circuit: instruction sequences in,
// measurement counts out. Two entry points:
//
//   - State — a dense complex state vector over n qubits (MSB-first:
//     qubit 0 is the most significant index bit). Apply/Run execute
//     instruction streams gate by gate; Probabilities reads out |amp|².
//     Used by the round-trip tests for amplitude preparation.
//
//   - Backend.EstimatePhases — exact phase estimation over a dense real
//     unitary: accumulate W^x per precision basis state, apply the
//     inverse-Fourier kernel, and read the precision-register
//     distribution. Counts are apportioned deterministically (largest
//     remainder), so a zero-quantization-error spectrum places 100% of
//     the shot mass on the exact outcomes and tests need no seeding
//     policy.
//
// The backend propagates nothing but the counts; there is no retry or
// timeout machinery here, matching the synchronous request/response
// contract of the core.
package simulator
