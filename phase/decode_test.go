// SPDX-License-Identifier: MIT

package phase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsve/phase"
)

// TestBinaryFraction covers both bit orders and the malformed inputs.
func TestBinaryFraction(t *testing.T) {
	for _, tc := range []struct {
		bits  string
		order phase.Endianness
		want  float64
	}{
		{"0", phase.BigEndian, 0},
		{"1", phase.BigEndian, 0.5},
		{"01", phase.BigEndian, 0.25},
		{"11", phase.BigEndian, 0.75},
		{"101", phase.BigEndian, 0.625},
		{"01", phase.LittleEndian, 0.5},
		{"100", phase.LittleEndian, 0.125},
		{"110", phase.LittleEndian, 0.375},
	} {
		got, err := phase.BinaryFraction(tc.bits, tc.order)
		require.NoError(t, err, "bits %q", tc.bits)
		assert.InDelta(t, tc.want, got, 1e-12, "bits %q order %v", tc.bits, tc.order)
	}

	_, err := phase.BinaryFraction("", phase.BigEndian)
	assert.ErrorIs(t, err, phase.ErrInvalidBitstring, "empty string")

	_, err = phase.BinaryFraction("01x", phase.BigEndian)
	assert.ErrorIs(t, err, phase.ErrInvalidBitstring, "non-binary rune")
}

// TestConvertMeasured folds the upper half-interval to negative phases.
func TestConvertMeasured(t *testing.T) {
	assert.Equal(t, 0.0, phase.ConvertMeasured(0), "zero stays")
	assert.Equal(t, 0.25, phase.ConvertMeasured(0.25), "lower half stays")
	assert.Equal(t, 0.5, phase.ConvertMeasured(0.5), "boundary belongs to the positive side")
	assert.Equal(t, -0.25, phase.ConvertMeasured(0.75), "upper half wraps negative")
	assert.InDelta(t, -0.125, phase.ConvertMeasured(0.875), 1e-12, "wraps by exactly one")
}

// TestPossibleEstimatedSingularValues checks the grid size for p = 1..9
// and the endpoints of the cosine grid.
func TestPossibleEstimatedSingularValues(t *testing.T) {
	for p := 1; p <= 9; p++ {
		vals, err := phase.PossibleEstimatedSingularValues(p)
		require.NoError(t, err, "p=%d", p)
		assert.Len(t, vals, 1<<(p-1)+1, "2^(p-1)+1 distinct outcomes at p=%d", p)
		assert.InDelta(t, 1.0, vals[0], 1e-12, "grid starts at cos(0)")
		assert.InDelta(t, 0.0, vals[len(vals)-1], 1e-12, "grid ends at cos(π/2)")
		for i := 1; i < len(vals); i++ {
			assert.Less(t, vals[i], vals[i-1], "grid strictly descends at p=%d", p)
		}
	}

	_, err := phase.PossibleEstimatedSingularValues(0)
	assert.ErrorIs(t, err, phase.ErrInvalidPrecision, "p must be positive")
}

// TestRankByCount orders by frequency with a lexicographic tiebreak.
func TestRankByCount(t *testing.T) {
	ranked := phase.RankByCount(map[string]int{
		"011": 120,
		"000": 700,
		"101": 120,
		"110": 60,
	})
	assert.Equal(t, []string{"000", "011", "101", "110"}, ranked,
		"descending counts, ties broken lexicographically")

	assert.Empty(t, phase.RankByCount(nil), "empty counts rank to nothing")
}

// TestHasValueCloseTo requires every reference to be matched.
func TestHasValueCloseTo(t *testing.T) {
	candidates := []float64{1.02, 0.48, 0.51}
	references := []float64{1.0, 0.5}

	assert.True(t, phase.HasValueCloseTo(candidates, references, 0.05),
		"each reference has a nearby candidate")
	assert.False(t, phase.HasValueCloseTo(candidates, references, 0.01),
		"tight tolerance leaves 1.0 unmatched")
	assert.False(t, phase.HasValueCloseTo(nil, references, math.Inf(1)),
		"no candidates can match nothing")
	assert.True(t, phase.HasValueCloseTo(candidates, nil, 0),
		"no references is vacuously satisfied")
}
