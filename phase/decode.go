// SPDX-License-Identifier: MIT

package phase

import (
	"math"
	"sort"
)

// Endianness selects how a measurement bit string maps to fraction bits.
type Endianness int

const (
	// BigEndian reads the first character as the most significant
	// fraction bit (weight 1/2).
	BigEndian Endianness = iota

	// LittleEndian reads the last character as the most significant
	// fraction bit.
	LittleEndian
)

// BinaryFraction interprets bits as a dyadic fraction in [0, 1) under the
// given endianness: "01" big-endian is 0·(1/2) + 1·(1/4) = 0.25.
// Returns ErrInvalidBitstring on an empty string or a non-binary rune.
func BinaryFraction(bits string, order Endianness) (float64, error) {
	if len(bits) == 0 {
		return 0, ErrInvalidBitstring
	}

	var f float64
	w := 0.5
	for i := 0; i < len(bits); i++ {
		c := bits[i]
		if order == LittleEndian {
			c = bits[len(bits)-1-i]
		}
		switch c {
		case '1':
			f += w
		case '0':
		default:
			return 0, ErrInvalidBitstring
		}
		w /= 2
	}

	return f, nil
}

// ConvertMeasured folds a measured fraction f ∈ [0, 1) into the signed
// phase interval (−1/2, 1/2]: fractions above 1/2 wrap to f − 1. Phase
// estimation on a real operator reports conjugate eigenvalue pairs as
// f and 1 − f; after folding both decode to the same |θ|.
func ConvertMeasured(f float64) float64 {
	if f <= 0.5 {
		return f
	}

	return f - 1
}

// PossibleEstimatedSingularValues enumerates every normalized singular
// value a p-bit precision register can resolve: cos(πk/2^p) for
// k = 0..2^(p−1), in descending order from 1 to 0. The caller multiplies
// by the encoded matrix's Frobenius norm to recover the raw scale.
// Returns ErrInvalidPrecision for p < 1.
func PossibleEstimatedSingularValues(precisionBits int) ([]float64, error) {
	if precisionBits < 1 {
		return nil, ErrInvalidPrecision
	}

	grid := 1 << precisionBits
	out := make([]float64, grid/2+1)
	for k := range out {
		out[k] = math.Cos(math.Pi * float64(k) / float64(grid))
	}

	return out, nil
}

// RankByCount orders measurement outcomes by frequency, most common
// first. Equal counts break lexicographically so the ranking is stable
// across runs.
func RankByCount(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if counts[keys[a]] != counts[keys[b]] {
			return counts[keys[a]] > counts[keys[b]]
		}

		return keys[a] < keys[b]
	})

	return keys
}

// HasValueCloseTo reports whether every reference value has at least one
// candidate within tol of it.
func HasValueCloseTo(candidates, references []float64, tol float64) bool {
	for _, r := range references {
		matched := false
		for _, c := range candidates {
			if math.Abs(c-r) <= tol {
				matched = true

				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}
