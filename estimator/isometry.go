// SPDX-License-Identifier: MIT

package estimator

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RowIsometry returns the (d², d) matrix U embedding the normalized rows:
// U[i·d+j, i] = A[i][j] / ‖A_i‖. Satisfies UᵀU = I and, together with
// NormIsometry, UᵀV = A/‖A‖_F for symmetric A.
func (e *Engine) RowIsometry() *mat.Dense {
	d := e.dim
	u := mat.NewDense(d*d, d, nil)
	for i := 0; i < d; i++ {
		norm := math.Sqrt(e.rows[i].Root())
		if norm == 0 {
			continue // zero row embeds as a zero column
		}
		for j := 0; j < d; j++ {
			u.Set(i*d+j, i, e.matrix.At(i, j)/norm)
		}
	}

	return u
}

// NormIsometry returns the (d², d) matrix V embedding the row-norm
// distribution: V[i·d+j, j] = ‖A_i‖ / ‖A‖_F. Satisfies VᵀV = I.
func (e *Engine) NormIsometry() *mat.Dense {
	d := e.dim
	norm := e.MatrixNorm()
	v := mat.NewDense(d*d, d, nil)
	for i := 0; i < d; i++ {
		w := math.Sqrt(e.rows[i].Root()) / norm
		for j := 0; j < d; j++ {
			v.Set(i*d+j, j, w)
		}
	}

	return v
}
