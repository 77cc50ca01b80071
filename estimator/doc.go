// Package estimator assembles the classical control data for singular
// value estimation of a dense real square matrix.
//
// # What it builds ⚙️
//
// An Engine owns a copy of the matrix, one amplitude tree per row, and a
// row-norm tree over the per-row 2-norms. From these it derives:
//
//   - RowIsometry / NormIsometry — dense (d², d) matrices U and V with
//     UᵀU = VᵀV = I and UᵀV = A/‖A‖_F.
//   - Unitary — W = (2UUᵀ − I)(2VVᵀ − I), the product of two reflections
//     whose eigen-phases encode the singular values: every eigenvalue
//     e^{±iθ} of W satisfies cos(θ/2) = σ/‖A‖_F.
//   - Controlled block forms of both reflections and of W, plus the
//     instruction-stream form of the controlled row-norm reflection.
//
// # Estimation flow 🔁
//
//	engine, _ := estimator.New(matrix)
//	sigmas, _ := engine.TopSingularValues(simulator.NewBackend(),
//	    estimator.WithPrecisionBits(6), estimator.WithShots(50000))
//
// TopSingularValues hands W and an initial state to a PhaseBackend,
// ranks the returned counts, folds each measured fraction into a signed
// phase, and maps it to σ = cos(π·θ)·‖A‖_F. MaxError bounds the
// quantization error of a p-bit estimate; SingularValues gives the
// classical reference spectrum for comparison.
//
// # Mutation policy
//
// ShiftDiagonal is the only mutating operation besides tree updates: it
// adds ‖A‖_F to every diagonal entry once (repeat calls are no-ops) so
// the shifted matrix has a non-negative spectrum. Engines are not safe
// for concurrent mutation; callers serialize access to a shared Engine.
package estimator
