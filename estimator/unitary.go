// SPDX-License-Identifier: MIT

package estimator

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qsve/circuit"
)

// reflectionAbout returns 2·MMᵀ − I for a (d², d) isometry M: the
// reflection about the column space of M.
func reflectionAbout(m *mat.Dense) *mat.Dense {
	rows, _ := m.Dims()
	r := mat.NewDense(rows, rows, nil)
	r.Mul(m, m.T())
	r.Scale(2, r)
	for i := 0; i < rows; i++ {
		r.Set(i, i, r.At(i, i)-1)
	}

	return r
}

// Unitary returns W = (2UUᵀ − I)(2VVᵀ − I) on the row⊗column space.
// W is orthogonal, and every eigenvalue e^{±iθ} with θ = arg(λ)
// satisfies cos(θ/2) = σ/‖A‖_F for a singular value σ.
func (e *Engine) Unitary() *mat.Dense {
	ru := reflectionAbout(e.RowIsometry())
	rv := reflectionAbout(e.NormIsometry())

	var w mat.Dense
	w.Mul(ru, rv)

	return &w
}

// controlledBlock returns the (2n, 2n) block matrix diag(I, b): identity
// when the control qubit is 0, b when it is 1. The control qubit carries
// the most significant index bit.
func controlledBlock(b *mat.Dense) *mat.Dense {
	n, _ := b.Dims()
	out := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
		for j := 0; j < n; j++ {
			out.Set(n+i, n+j, b.At(i, j))
		}
	}

	return out
}

// ControlledUnitary returns the single-control block form of W.
func (e *Engine) ControlledUnitary() *mat.Dense {
	return controlledBlock(e.Unitary())
}

// ControlledRowReflection returns the single-control block form of the
// reflection about the row-isometry column space.
func (e *Engine) ControlledRowReflection() *mat.Dense {
	return controlledBlock(reflectionAbout(e.RowIsometry()))
}

// ControlledNormReflection returns the single-control block form of the
// reflection about the norm-isometry column space.
func (e *Engine) ControlledNormReflection() *mat.Dense {
	return controlledBlock(reflectionAbout(e.NormIsometry()))
}

// RowNormReflectionSequence emits the instruction stream of the
// controlled reflection about the row-norm state on reg: un-prepare the
// row-norm state, reflect about zero under ctrl, prepare again. With the
// control qubit set the net effect on the prepared subspace is
// I − 2|χ⟩⟨χ| up to global phase; with it clear, identity.
func (e *Engine) RowNormReflectionSequence(ctrl int, reg circuit.Register) ([]circuit.Instruction, error) {
	prep, err := e.RowNormTree().RotationSequence(reg)
	if err != nil {
		return nil, err
	}

	ops := circuit.Inverse(prep)
	ops = append(ops, circuit.ControlledZeroReflection(ctrl, reg)...)
	ops = append(ops, prep...)

	return ops, nil
}

// UnitaryEigenvalues returns the eigenvalue spectrum of W. The operator
// is real, so the spectrum is closed under complex conjugation.
func (e *Engine) UnitaryEigenvalues() []complex128 {
	var eig mat.Eigen
	if !eig.Factorize(e.Unitary(), mat.EigenNone) {
		panic("estimator: eigendecomposition failed to converge")
	}

	vals := eig.Values(nil)
	sort.Slice(vals, func(a, b int) bool {
		pa, pb := cmplx.Phase(vals[a]), cmplx.Phase(vals[b])
		if pa != pb {
			return pa < pb
		}

		return real(vals[a]) < real(vals[b])
	})

	return vals
}

// UnitaryEvalToSingularValue maps an eigenvalue of W on the unit circle
// to a raw singular value: σ = cos(arg(λ)/2)·‖A‖_F. Conjugate
// eigenvalues map to the same σ.
func (e *Engine) UnitaryEvalToSingularValue(lambda complex128) float64 {
	return math.Cos(cmplx.Phase(lambda)/2) * e.MatrixNorm()
}

// MaxError bounds |σ_true − σ_estimated| for a p-bit phase estimate:
// the phase grid step 2π/2^p halves through the cos(θ/2) mapping and
// scales by ‖A‖_F, giving π·‖A‖_F/2^p.
// Returns ErrInvalidPrecision for p < 1.
func (e *Engine) MaxError(precisionBits int) (float64, error) {
	if precisionBits < 1 {
		return 0, ErrInvalidPrecision
	}

	return math.Pi * e.MatrixNorm() / float64(int(1)<<precisionBits), nil
}
