// SPDX-License-Identifier: MIT

package circuit_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsve/circuit"
	"github.com/katalvlaran/qsve/simulator"
)

// basisPrep returns the bit flips that move |0..0⟩ to basis state |x⟩
// under the MSB-first convention.
func basisPrep(x, n int) []circuit.Instruction {
	var ops []circuit.Instruction
	for q := 0; q < n; q++ {
		if x&(1<<(n-1-q)) != 0 {
			ops = append(ops, circuit.X(q))
		}
	}

	return ops
}

// TestQFT_MatchesFourierMatrix replays the cascade on every basis state
// and compares against the dense Fourier matrix column.
func TestQFT_MatchesFourierMatrix(t *testing.T) {
	for n := 1; n <= 3; n++ {
		reg := circuit.NewRegister(0, n)
		size := 1 << n
		for x := 0; x < size; x++ {
			state := simulator.NewState(n)
			require.NoError(t, state.Run(basisPrep(x, n)))
			require.NoError(t, state.Run(circuit.QFT(reg)))

			amps := state.Amplitudes()
			for y := 0; y < size; y++ {
				angle := 2 * math.Pi * float64(x) * float64(y) / float64(size)
				want := cmplx.Rect(1/math.Sqrt(float64(size)), angle)
				assert.InDelta(t, real(want), real(amps[y]), 1e-9, "n=%d x=%d y=%d real part", n, x, y)
				assert.InDelta(t, imag(want), imag(amps[y]), 1e-9, "n=%d x=%d y=%d imag part", n, x, y)
			}
		}
	}
}

// TestInverseQFT_UndoesQFT checks the round trip back to each basis state.
func TestInverseQFT_UndoesQFT(t *testing.T) {
	n := 3
	reg := circuit.NewRegister(0, n)
	for x := 0; x < 1<<n; x++ {
		state := simulator.NewState(n)
		require.NoError(t, state.Run(basisPrep(x, n)))
		require.NoError(t, state.Run(circuit.QFT(reg)))
		require.NoError(t, state.Run(circuit.InverseQFT(reg)))

		probs := state.Probabilities()
		for y, p := range probs {
			want := 0.0
			if y == x {
				want = 1.0
			}
			assert.InDelta(t, want, p, 1e-9, "x=%d y=%d", x, y)
		}
	}
}

// TestControlledZeroReflection verifies the sign flip fires only on the
// zero state of the register and only when the control qubit is set.
func TestControlledZeroReflection(t *testing.T) {
	ctrl := 0
	reg := circuit.NewRegister(1, 2)
	ops := circuit.ControlledZeroReflection(ctrl, reg)

	// Control clear: nothing changes.
	state := simulator.NewState(3)
	require.NoError(t, state.Run(ops))
	assert.InDelta(t, 1.0, real(state.Amplitudes()[0]), 1e-9, "control clear leaves |000⟩")

	// Control set, register zero: amplitude negated.
	state = simulator.NewState(3)
	require.NoError(t, state.Apply(circuit.X(ctrl)))
	require.NoError(t, state.Run(ops))
	assert.InDelta(t, -1.0, real(state.Amplitudes()[4]), 1e-9, "control set negates |1⟩|00⟩")

	// Control set, register nonzero: untouched.
	state = simulator.NewState(3)
	require.NoError(t, state.Apply(circuit.X(ctrl)))
	require.NoError(t, state.Apply(circuit.X(reg[1])))
	require.NoError(t, state.Run(ops))
	assert.InDelta(t, 1.0, real(state.Amplitudes()[5]), 1e-9, "nonzero register keeps its sign")
}

// TestInverse_ReversesAndNegatesAngles spot-checks the inverse builder.
func TestInverse_ReversesAndNegatesAngles(t *testing.T) {
	ops := []circuit.Instruction{
		circuit.H(0),
		circuit.RY(1, 0.7, circuit.On(0)),
		circuit.Phase(0, 1.3),
	}
	inv := circuit.Inverse(ops)

	require.Len(t, inv, 3)
	assert.Equal(t, circuit.KindPhase, inv[0].Kind, "order reversed")
	assert.Equal(t, -1.3, inv[0].Angle, "phase angle negated")
	assert.Equal(t, -0.7, inv[1].Angle, "rotation angle negated")
	assert.Equal(t, circuit.KindHadamard, inv[2].Kind, "self-inverse kinds untouched")
	assert.Equal(t, []circuit.Control{circuit.On(0)}, inv[1].Controls, "controls preserved")
}
