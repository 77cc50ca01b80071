// SPDX-License-Identifier: MIT

package estimator

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qsve/phase"
)

// sigmaDedupTol collapses decoded singular values that differ only by
// floating noise: conjugate phase pairs must land on one σ.
const sigmaDedupTol = 1e-9

// PhaseBackend runs phase estimation of a real unitary from an initial
// state and reports measurement counts over the precision register,
// keyed by big-endian bit string. simulator.Backend implements it.
type PhaseBackend interface {
	EstimatePhases(u *mat.Dense, initial []complex128, precisionBits, shots int) (map[string]int, error)
}

// TopSingularValues estimates the dominant singular values of the
// matrix: it hands W and an initial state to the backend, ranks the
// measurement counts by frequency, and decodes the top outcomes into
// distinct raw singular values, highest frequency first.
//
// By default the initial state is the norm-isometry embedding of the
// uniform column superposition, which overlaps every singular pair and
// avoids the spurious unit eigenvalue of W outside col(U)+col(V).
// WithSingularVector replaces the uniform part with a caller guess.
//
// A backend failure is surfaced joined with ErrBackend; the core never
// retries.
func (e *Engine) TopSingularValues(backend PhaseBackend, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if o.precisionBits < 1 {
		return nil, ErrInvalidPrecision
	}
	if o.shots < 1 {
		return nil, ErrInvalidShots
	}

	initial, err := e.initialState(o.vector)
	if err != nil {
		return nil, err
	}

	counts, err := backend.EstimatePhases(e.Unitary(), initial, o.precisionBits, o.shots)
	if err != nil {
		return nil, errors.Join(ErrBackend, err)
	}

	return e.TopSingularValuesFromCounts(counts, o.topCount)
}

// TopSingularValuesFromCounts decodes already-measured counts: outcomes
// are ranked by frequency, each bit string becomes a binary fraction,
// folds into a signed phase θ, and maps to σ = cos(π·|θ|)·‖A‖_F.
// Duplicate σ from conjugate phase pairs collapse to one entry. ntop
// caps the number of distinct values returned; ntop ≤ 0 decodes the top
// half of the ranked outcomes.
func (e *Engine) TopSingularValuesFromCounts(counts map[string]int, ntop int) ([]float64, error) {
	ranked := phase.RankByCount(counts)
	if ntop <= 0 {
		ntop = (len(ranked) + 1) / 2
	}

	norm := e.MatrixNorm()
	sigmas := make([]float64, 0, ntop)
	for _, bits := range ranked {
		if len(sigmas) == ntop {
			break
		}
		f, err := phase.BinaryFraction(bits, phase.BigEndian)
		if err != nil {
			return nil, err
		}
		theta := phase.ConvertMeasured(f)
		sigma := math.Cos(math.Pi*math.Abs(theta)) * norm

		dup := false
		for _, s := range sigmas {
			if math.Abs(s-sigma) < sigmaDedupTol {
				dup = true

				break
			}
		}
		if !dup {
			sigmas = append(sigmas, sigma)
		}
	}

	return sigmas, nil
}

// HasSingularValueCloseTo reports whether every classical singular value
// of the matrix has a candidate within tol.
func (e *Engine) HasSingularValueCloseTo(candidates []float64, tol float64) bool {
	return phase.HasValueCloseTo(candidates, e.SingularValues(), tol)
}

// initialState builds the estimation state on the row⊗column space:
// the norm-isometry image of the column-space guess (uniform when guess
// is nil), i.e. (rowNorms/‖A‖_F) ⊗ guess.
func (e *Engine) initialState(guess []float64) ([]complex128, error) {
	d := e.dim
	col := make([]float64, d)
	if guess == nil {
		for j := range col {
			col[j] = 1 / math.Sqrt(float64(d))
		}
	} else {
		if len(guess) != d {
			return nil, ErrInvalidVector
		}
		var norm2 float64
		for _, v := range guess {
			norm2 += v * v
		}
		if norm2 == 0 {
			return nil, ErrInvalidVector
		}
		inv := 1 / math.Sqrt(norm2)
		for j, v := range guess {
			col[j] = v * inv
		}
	}

	norm := e.MatrixNorm()
	state := make([]complex128, d*d)
	for i := 0; i < d; i++ {
		w := math.Sqrt(e.rows[i].Root()) / norm
		for j := 0; j < d; j++ {
			state[i*d+j] = complex(w*col[j], 0)
		}
	}

	return state, nil
}
