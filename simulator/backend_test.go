// SPDX-License-Identifier: MIT

package simulator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qsve/simulator"
)

// rotation90 has eigenvalues ±i: phases ±π/2, fractions 1/4 and 3/4.
func rotation90() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		0, -1,
		1, 0,
	})
}

// TestEstimatePhases_ExactEigenphases measures a spectrum that sits
// exactly on the phase grid: all mass lands on two outcomes, split
// evenly, with deterministic counts.
func TestEstimatePhases_ExactEigenphases(t *testing.T) {
	backend := simulator.NewBackend()

	counts, err := backend.EstimatePhases(rotation90(), []complex128{1, 0}, 2, 10000)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"01": 5000, "11": 5000}, counts,
		"fractions 1/4 and 3/4 at two precision bits")

	counts, err = backend.EstimatePhases(rotation90(), []complex128{1, 0}, 3, 8000)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"010": 4000, "110": 4000}, counts,
		"the same fractions gain a trailing zero at three bits")
}

// TestEstimatePhases_Identity puts every shot on the zero outcome.
func TestEstimatePhases_Identity(t *testing.T) {
	backend := simulator.NewBackend()
	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	counts, err := backend.EstimatePhases(eye, []complex128{0.6, 0.8}, 3, 1234)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"000": 1234}, counts, "identity has phase zero")
}

// TestEstimatePhases_NormalizesInitial accepts an unnormalized initial
// state and still returns a full shot budget.
func TestEstimatePhases_NormalizesInitial(t *testing.T) {
	backend := simulator.NewBackend()

	counts, err := backend.EstimatePhases(rotation90(), []complex128{5, 0}, 2, 1000)
	require.NoError(t, err)

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 1000, total, "counts always sum to shots")
}

// TestEstimatePhases_Errors walks the request validation.
func TestEstimatePhases_Errors(t *testing.T) {
	backend := simulator.NewBackend()
	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	_, err := backend.EstimatePhases(nil, []complex128{1, 0}, 2, 100)
	assert.ErrorIs(t, err, simulator.ErrBadUnitary, "nil operator")

	_, err = backend.EstimatePhases(mat.NewDense(2, 3, nil), []complex128{1, 0}, 2, 100)
	assert.ErrorIs(t, err, simulator.ErrBadUnitary, "non-square operator")

	_, err = backend.EstimatePhases(eye, []complex128{1, 0, 0}, 2, 100)
	assert.ErrorIs(t, err, simulator.ErrBadUnitary, "state dimension mismatch")

	_, err = backend.EstimatePhases(eye, []complex128{1, 0}, 0, 100)
	assert.ErrorIs(t, err, simulator.ErrBadRequest, "zero precision bits")

	_, err = backend.EstimatePhases(eye, []complex128{1, 0}, 2, 0)
	assert.ErrorIs(t, err, simulator.ErrBadRequest, "zero shots")

	_, err = backend.EstimatePhases(eye, []complex128{0, 0}, 2, 100)
	assert.ErrorIs(t, err, simulator.ErrBadRequest, "zero initial state")
}
