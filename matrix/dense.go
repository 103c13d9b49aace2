// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Bridge rows to and from vector.Vector by copy (no shared storage).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Equal: O(r*c); Row/SetRow: O(c).

package matrix

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/katalvlaran/lvvec/vector"
	"gonum.org/v1/gonum/floats"
)

// MaxElements is the allocation ceiling for NewDense in elements (rows*cols).
// It matches the vector ceiling so every row fits in a vector.Vector.
const MaxElements = vector.DefaultMaxLen

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxSetRow = "SetRow"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// rowErrorf is the single-index variant used by Row/SetRow.
func rowErrorf(method string, row int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, row, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: reject rows*cols overflowing int or exceeding MaxElements
//     with ErrAllocationFailure (no allocation).
//   - Stage 3: allocate a zero-filled buffer of rows*cols under a recover guard.
//
// Behavior highlights:
//   - Empty shapes (0×N, N×0) are legal and hold no elements.
//   - len(data) == rows*cols always holds for a returned matrix.
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocationFailure.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("matrix.NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if cols != 0 && (rows > math.MaxInt/cols || rows*cols > MaxElements) {
		return nil, fmt.Errorf("matrix.NewDense(%d,%d): %w", rows, cols, ErrAllocationFailure)
	}
	buf, err := allocate(rows * cols)
	if err != nil {
		return nil, fmt.Errorf("matrix.NewDense(%d,%d): %w", rows, cols, err)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// allocate makes a zeroed buffer of n slots, converting a runtime allocation
// panic into ErrAllocationFailure. Non-runtime panics propagate.
func allocate(n int) (buf []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			buf, err = nil, fmt.Errorf("%w: %v", ErrAllocationFailure, r)
		}
	}()

	return make([]float64, n), nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row copies row i out as a bounded vector of length Cols().
// MAIN DESCRIPTION:
//   - Materialize one row with independent lifetime.
//
// Errors:
//   - ErrOutOfRange for a bad row index; vector construction errors otherwise.
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense) Row(i int) (*vector.Vector, error) {
	if i < 0 || i >= m.r {
		return nil, rowErrorf(ctxRow, i, ErrOutOfRange)
	}
	base := i * m.c

	v, err := vector.FromSlice(m.data[base : base+m.c])
	if err != nil {
		return nil, rowErrorf(ctxRow, i, err)
	}

	return v, nil
}

// SetRow copies v into row i. v.Len() must equal Cols().
// Errors: ErrOutOfRange for a bad row index, ErrDimensionMismatch for a
// nil or wrongly sized vector. The matrix is unchanged on error.
// Complexity: O(c).
func (m *Dense) SetRow(i int, v *vector.Vector) error {
	if i < 0 || i >= m.r {
		return rowErrorf(ctxSetRow, i, ErrOutOfRange)
	}
	if v == nil || v.Len() != m.c {
		return rowErrorf(ctxSetRow, i, ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], v.Values())

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports exact element-wise equality with other.
// Identical pointers are equal; a nil operand or a shape mismatch is not.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if m == other {
		return true
	}
	if ValidateNotNil(m) != nil || ValidateNotNil(other) != nil {
		return false
	}
	if ValidateSameShape(m, other) != nil {
		return false
	}

	return floats.Equal(m.data, other.data)
}

// String is a human-readable dump of rows for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
