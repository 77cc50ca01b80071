// SPDX-License-Identifier: MIT

package estimator

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qsve/amptree"
)

// Engine holds the matrix, its per-row amplitude trees, and the derived
// sizing. Construct with New or NewFromRows; the zero value is not usable.
type Engine struct {
	matrix    *mat.Dense
	rows      []*amptree.Tree
	dim       int
	numQubits int
	shifted   bool
}

// New builds an Engine from a dense real matrix. The matrix is copied.
// Returns ErrNonSquare for rectangular input and ErrInvalidDimension
// unless the dimension is a power of two of at least 2.
func New(m mat.Matrix) (*Engine, error) {
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	if r < 2 || r&(r-1) != 0 {
		return nil, ErrInvalidDimension
	}

	e := &Engine{
		matrix:    mat.DenseCopyOf(m),
		rows:      make([]*amptree.Tree, r),
		dim:       r,
		numQubits: bitsFor(r),
	}
	for i := 0; i < r; i++ {
		t, err := amptree.New(e.matrix.RawRowView(i))
		if err != nil {
			return nil, err
		}
		e.rows[i] = t
	}

	return e, nil
}

// NewFromRows builds an Engine from a row-major slice of rows.
// Every row must have the same length as the row count.
func NewFromRows(rows [][]float64) (*Engine, error) {
	n := len(rows)
	flat := make([]float64, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
		flat = append(flat, row...)
	}
	if n == 0 {
		return nil, ErrInvalidDimension
	}

	return New(mat.NewDense(n, n, flat))
}

// Matrix returns a copy of the (possibly shifted) matrix.
func (e *Engine) Matrix() *mat.Dense { return mat.DenseCopyOf(e.matrix) }

// Dim returns the matrix dimension.
func (e *Engine) Dim() int { return e.dim }

// NumQubits returns log2(Dim), the width of the row and column registers.
func (e *Engine) NumQubits() int { return e.numQubits }

// RowTree returns the amplitude tree of row i.
func (e *Engine) RowTree(i int) (*amptree.Tree, bool) {
	if i < 0 || i >= e.dim {
		return nil, false
	}

	return e.rows[i], true
}

// MatrixNorm returns the Frobenius norm, computed as the square root of
// the summed row-tree roots rather than from the raw matrix.
func (e *Engine) MatrixNorm() float64 {
	var sum float64
	for _, t := range e.rows {
		sum += t.Root()
	}

	return math.Sqrt(sum)
}

// ShiftDiagonal adds ‖A‖_F to every diagonal entry, updating the matrix
// and the row trees together. The shift makes every eigenvalue of a
// symmetric matrix non-negative. One-shot: repeated calls do nothing.
func (e *Engine) ShiftDiagonal() {
	if e.shifted {
		return
	}

	norm := e.MatrixNorm()
	for i := 0; i < e.dim; i++ {
		v := e.matrix.At(i, i) + norm
		e.matrix.Set(i, i, v)
		// UpdateEntry cannot fail here: i is a valid leaf by construction.
		_ = e.rows[i].UpdateEntry(i, v)
	}
	e.shifted = true
}

// Shifted reports whether ShiftDiagonal has been applied.
func (e *Engine) Shifted() bool { return e.shifted }

// RowNorms returns the per-row 2-norms, read off the row-tree roots.
func (e *Engine) RowNorms() []float64 {
	norms := make([]float64, e.dim)
	for i, t := range e.rows {
		norms[i] = math.Sqrt(t.Root())
	}

	return norms
}

// RowNormTree builds the amplitude tree over the per-row 2-norms. Its
// root is the squared Frobenius norm; its rotation sequence prepares the
// row-norm state for the dedicated reflection operator.
func (e *Engine) RowNormTree() *amptree.Tree {
	t, err := amptree.New(e.RowNorms())
	if err != nil {
		// dim is a validated power of two, so this cannot happen
		panic("estimator: row-norm tree construction failed: " + err.Error())
	}

	return t
}

// SingularValues returns the classical singular values of the matrix in
// descending order, the reference spectrum for estimation checks.
func (e *Engine) SingularValues() []float64 {
	var svd mat.SVD
	if !svd.Factorize(e.matrix, mat.SVDNone) {
		panic("estimator: SVD failed to converge")
	}

	return svd.Values(nil)
}

// bitsFor returns log2(n) for a power-of-two n.
func bitsFor(n int) int {
	bits := 0
	for 1<<bits < n {
		bits++
	}

	return bits
}
