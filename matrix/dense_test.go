// Package matrix_test contains unit tests for the Dense matrix.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvvec/matrix"
	"github.com/katalvlaran/lvvec/vector"
	"github.com/stretchr/testify/require"
)

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for k, v := range vals {
		require.NoError(t, m.Set(k/c, k%c, v))
	}
	return m
}

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseEmpty ensures empty shapes are legal.
func TestNewDenseEmpty(t *testing.T) {
	m, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)
	require.Equal(t, "", m.String())
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := mustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := mustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, "Dense.At(0,2): matrix: index out of range", err.Error())

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := mustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestCloneIndependence ensures Clone() returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := mustDense(t, 2, 2, 1, 0, 0, 2)
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3.0))
	require.False(t, m.Equal(clone))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
}

// TestEqual covers identity, nil and shape mismatch.
func TestEqual(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(nil))
	require.False(t, a.Equal(mustDense(t, 1, 4, 1, 2, 3, 4)), "same data, different shape")
	require.True(t, a.Equal(mustDense(t, 2, 2, 1, 2, 3, 4)))
}

// TestRowRoundTrip moves a row out to a vector and back in.
func TestRowRoundTrip(t *testing.T) {
	m := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row.Values())

	// the row is a copy
	*row.Ref(0) = 40
	v, _ := m.At(1, 0)
	require.Equal(t, 4.0, v)

	require.NoError(t, m.SetRow(0, row))
	require.Equal(t, "[40, 5, 6]\n[4, 5, 6]\n", m.String())
}

// TestRowErrors covers bad indices and mismatched vectors.
func TestRowErrors(t *testing.T) {
	m := mustDense(t, 2, 3)

	_, err := m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.SetRow(-1, vector.MustNew(3)), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetRow(0, vector.MustNew(2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetRow(0, nil), matrix.ErrDimensionMismatch)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustDense(t, 2, 2, 1, 2, 3, 4)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestNewDenseOversized ensures shapes whose element count overflows int or
// exceeds the ceiling fail with ErrAllocationFailure instead of panicking.
func TestNewDenseOversized(t *testing.T) {
	shapes := [][2]int{
		// rows*cols wraps to 0
		{1 << 32, 1 << 32},
		// no wrap, far above the allocator limit
		{1 << 40, 1 << 20},
		// just above the ceiling, both orientations
		{matrix.MaxElements + 1, 1},
		{1, matrix.MaxElements + 1},
		// overflow with a small factor
		{math.MaxInt, 2},
	}
	for _, s := range shapes {
		var (
			m   *matrix.Dense
			err error
		)
		require.NotPanics(t, func() { m, err = matrix.NewDense(s[0], s[1]) }, "shape %v", s)
		require.ErrorIs(t, err, matrix.ErrAllocationFailure, "shape %v", s)
		require.Nil(t, m)
	}
}

// TestNewDenseDegenerateLarge ensures a zero dimension never allocates,
// however large the other one is.
func TestNewDenseDegenerateLarge(t *testing.T) {
	m, err := matrix.NewDense(math.MaxInt, 0)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, m.Rows())

	_, err = m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
