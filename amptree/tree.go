// SPDX-License-Identifier: MIT

package amptree

// Tree is the binary sum-tree for one real vector. levels is stored
// root-first: levels[0] has one node, each level doubles, and the last
// level holds the squared magnitudes of values.
type Tree struct {
	values []float64   // signed leaf amplitudes, length a power of two
	levels [][]float64 // root-first; invariant: node = sum of its children
}

// New builds a Tree from vector. Returns ErrInvalidDimension unless
// len(vector) is a positive power of two. The vector is copied; the
// caller's slice is never retained.
func New(vector []float64) (*Tree, error) {
	n := len(vector)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrInvalidDimension
	}

	t := &Tree{values: append([]float64(nil), vector...)}
	t.rebuild()

	return t, nil
}

// rebuild recomputes every level from the current leaf values.
func (t *Tree) rebuild() {
	leaves := make([]float64, len(t.values))
	for i, v := range t.values {
		leaves[i] = v * v
	}

	// Sum adjacent pairs upward, then reverse into root-first order.
	upward := [][]float64{leaves}
	for last := leaves; len(last) > 1; {
		next := make([]float64, len(last)/2)
		for i := range next {
			next[i] = last[2*i] + last[2*i+1]
		}
		upward = append(upward, next)
		last = next
	}

	t.levels = make([][]float64, len(upward))
	for i := range upward {
		t.levels[i] = upward[len(upward)-1-i]
	}
}

// Root returns the root node: the squared 2-norm of the leaf vector.
func (t *Tree) Root() float64 { return t.levels[0][0] }

// NumLeaves returns the number of leaves (the input vector length).
func (t *Tree) NumLeaves() int { return len(t.values) }

// NumLevels returns the tree depth, log2(NumLeaves)+1.
func (t *Tree) NumLevels() int { return len(t.levels) }

// Leaf returns the signed leaf amplitude at index i.
func (t *Tree) Leaf(i int) (float64, bool) {
	if i < 0 || i >= len(t.values) {
		return 0, false
	}

	return t.values[i], true
}

// Values returns a copy of the signed leaf amplitudes.
func (t *Tree) Values() []float64 {
	return append([]float64(nil), t.values...)
}

// Leaves returns a copy of the deepest level (squared magnitudes).
func (t *Tree) Leaves() []float64 {
	return append([]float64(nil), t.levels[len(t.levels)-1]...)
}

// Level returns a copy of one tree level, root-first indexing.
func (t *Tree) Level(level int) ([]float64, bool) {
	if level < 0 || level >= len(t.levels) {
		return nil, false
	}

	return append([]float64(nil), t.levels[level]...), true
}

// Node returns the value at (level, index).
func (t *Tree) Node(level, index int) (float64, bool) {
	if !t.inRange(level, index) {
		return 0, false
	}

	return t.levels[level][index], true
}

// ParentIndex returns the coordinates of the parent of (level, index).
// The root has no parent; ok is false there and for invalid coordinates.
func (t *Tree) ParentIndex(level, index int) (int, int, bool) {
	if level == 0 || !t.inRange(level, index) {
		return 0, 0, false
	}

	return level - 1, index / 2, true
}

// ParentValue returns the value of the parent of (level, index).
func (t *Tree) ParentValue(level, index int) (float64, bool) {
	pl, pi, ok := t.ParentIndex(level, index)
	if !ok {
		return 0, false
	}

	return t.levels[pl][pi], true
}

// LeftChildIndex returns the coordinates of the left child of (level, index).
// Deepest-level nodes have no children; ok is false there.
func (t *Tree) LeftChildIndex(level, index int) (int, int, bool) {
	if level >= len(t.levels)-1 || !t.inRange(level, index) {
		return 0, 0, false
	}

	return level + 1, 2 * index, true
}

// RightChildIndex returns the coordinates of the right child of (level, index).
func (t *Tree) RightChildIndex(level, index int) (int, int, bool) {
	if level >= len(t.levels)-1 || !t.inRange(level, index) {
		return 0, 0, false
	}

	return level + 1, 2*index + 1, true
}

// LeftChildValue returns the value of the left child of (level, index).
func (t *Tree) LeftChildValue(level, index int) (float64, bool) {
	cl, ci, ok := t.LeftChildIndex(level, index)
	if !ok {
		return 0, false
	}

	return t.levels[cl][ci], true
}

// RightChildValue returns the value of the right child of (level, index).
func (t *Tree) RightChildValue(level, index int) (float64, bool) {
	cl, ci, ok := t.RightChildIndex(level, index)
	if !ok {
		return 0, false
	}

	return t.levels[cl][ci], true
}

// UpdateEntry replaces the leaf at index with value and rebuilds the
// whole tree. O(n) in the leaf count; the non-incremental policy is
// deliberate, tree sizes are bounded.
func (t *Tree) UpdateEntry(index int, value float64) error {
	if index < 0 || index >= len(t.values) {
		return ErrOutOfRange
	}
	t.values[index] = value
	t.rebuild()

	return nil
}

func (t *Tree) inRange(level, index int) bool {
	return level >= 0 && level < len(t.levels) && index >= 0 && index < len(t.levels[level])
}
