// SPDX-License-Identifier: MIT

package simulator

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// probFloor is the probability below which an outcome is treated as
// numeric dust and dropped from the counts.
const probFloor = 1e-9

// Backend runs phase estimation against dense real unitaries and returns
// measurement counts over the precision register. It implements the
// estimator package's PhaseBackend contract.
type Backend struct{}

// NewBackend returns a ready Backend. It is stateless and safe to share.
func NewBackend() *Backend { return &Backend{} }

// EstimatePhases performs textbook phase estimation of u on initial with
// precisionBits precision qubits and returns shot counts keyed by
// big-endian bit string (first character = weight 1/2).
//
// The computation is exact: for each precision basis state x the system
// register carries u^x·ψ, the inverse-Fourier kernel e^{−2πi·m·x/2^p} is
// applied across x, and Pr(m) is the squared norm of the resulting block.
// Shots are split over outcomes by largest remainder, so the returned
// counts always sum to shots and an exactly representable spectrum gets
// the full mass on its exact outcomes.
//
// Errors: ErrBadUnitary on dimension mismatch, ErrBadRequest on
// non-positive precision/shots or a zero initial vector.
func (b *Backend) EstimatePhases(u *mat.Dense, initial []complex128, precisionBits, shots int) (map[string]int, error) {
	if u == nil {
		return nil, ErrBadUnitary
	}
	rows, cols := u.Dims()
	if rows != cols || rows != len(initial) {
		return nil, ErrBadUnitary
	}
	if precisionBits < 1 || shots < 1 {
		return nil, ErrBadRequest
	}

	psi, err := normalized(initial)
	if err != nil {
		return nil, err
	}

	dim := rows
	grid := 1 << precisionBits

	// states[x] = u^x · ψ, accumulated by repeated real mat-vec products
	// on the real and imaginary parts separately.
	states := make([][]complex128, grid)
	cur := append([]complex128(nil), psi...)
	for x := 0; x < grid; x++ {
		states[x] = append([]complex128(nil), cur...)
		if x < grid-1 {
			cur = applyReal(u, cur, dim)
		}
	}

	probs := make([]float64, grid)
	scale := 1 / float64(grid)
	for m := 0; m < grid; m++ {
		var total float64
		for k := 0; k < dim; k++ {
			var acc complex128
			for x := 0; x < grid; x++ {
				angle := -2 * math.Pi * float64(m) * float64(x) / float64(grid)
				acc += complex(math.Cos(angle), math.Sin(angle)) * states[x][k]
			}
			acc *= complex(scale, 0)
			total += real(acc)*real(acc) + imag(acc)*imag(acc)
		}
		probs[m] = total
	}

	return apportion(probs, precisionBits, shots), nil
}

// applyReal multiplies the real matrix u into a complex vector by acting
// on the real and imaginary components with gonum mat-vec products.
func applyReal(u *mat.Dense, v []complex128, dim int) []complex128 {
	re := mat.NewVecDense(dim, nil)
	im := mat.NewVecDense(dim, nil)
	for i, a := range v {
		re.SetVec(i, real(a))
		im.SetVec(i, imag(a))
	}

	var ore, oim mat.VecDense
	ore.MulVec(u, re)
	oim.MulVec(u, im)

	out := make([]complex128, dim)
	for i := range out {
		out[i] = complex(ore.AtVec(i), oim.AtVec(i))
	}

	return out
}

// normalized returns v/‖v‖₂, rejecting the zero vector.
func normalized(v []complex128) ([]complex128, error) {
	var norm2 float64
	for _, a := range v {
		norm2 += real(a)*real(a) + imag(a)*imag(a)
	}
	if norm2 == 0 {
		return nil, ErrBadRequest
	}

	inv := complex(1/math.Sqrt(norm2), 0)
	out := make([]complex128, len(v))
	for i, a := range v {
		out[i] = a * inv
	}

	return out, nil
}

// apportion converts a probability vector into integer shot counts using
// the largest-remainder method over outcomes above probFloor.
func apportion(probs []float64, precisionBits, shots int) map[string]int {
	type slot struct {
		m     int
		whole int
		frac  float64
	}

	kept := make([]slot, 0, len(probs))
	var mass float64
	for m, p := range probs {
		if p > probFloor {
			kept = append(kept, slot{m: m})
			mass += p
		}
	}

	assigned := 0
	for i := range kept {
		exact := probs[kept[i].m] / mass * float64(shots)
		kept[i].whole = int(math.Floor(exact))
		kept[i].frac = exact - float64(kept[i].whole)
		assigned += kept[i].whole
	}

	// Hand out the remaining shots to the largest remainders; break
	// fraction ties by outcome index for determinism.
	order := make([]int, len(kept))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ka, kb := kept[order[a]], kept[order[b]]
		if ka.frac != kb.frac {
			return ka.frac > kb.frac
		}

		return ka.m < kb.m
	})
	for i := 0; i < shots-assigned; i++ {
		kept[order[i%len(order)]].whole++
	}

	counts := make(map[string]int, len(kept))
	for _, s := range kept {
		if s.whole > 0 {
			counts[bitString(s.m, precisionBits)] = s.whole
		}
	}

	return counts
}

// bitString renders m as a big-endian bit string of the given width.
func bitString(m, width int) string {
	bits := make([]byte, width)
	for i := 0; i < width; i++ {
		if m&(1<<(width-1-i)) != 0 {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}

	return string(bits)
}
