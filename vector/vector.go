// SPDX-License-Identifier: MIT

// Package vector - bounded storage & accessors.
//
// Purpose:
//   - Own a contiguous float64 buffer whose length is fixed at construction.
//   - Validate construction (negative size, allocation ceiling, runtime refusal).
//   - Offer both an unchecked pointer accessor (Ref) and checked At/Set.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; Len/Ref/At/Set: O(1); Equal/Clone/Values: O(n).

package vector

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a fixed-length sequence of float64 values.
//   - n is the length recorded at construction (>= 0, immutable).
//   - data is the exclusively owned buffer, len(data) == cap(data) == n.
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Vector struct {
	n              int       // fixed length
	data           []float64 // owned buffer; never handed out except via Ref
	validateNaNInf bool      // numeric guard for Set
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// New constructs a Vector of length n with all elements zero.
// MAIN DESCRIPTION:
//   - Validated constructor: either a usable Vector or an error, never both.
//
// Implementation:
//   - Stage 1: reject n < 0 with ErrInvalidSize (no allocation).
//   - Stage 2: reject n above the ceiling with ErrAllocationFailure (no allocation).
//   - Stage 3: allocate under a recover guard; runtime refusal -> ErrAllocationFailure.
//
// Inputs:
//   - n: requested length (any int).
//   - opts: WithMaxLen, WithValidateNaNInf.
//
// Returns:
//   - *Vector with Len() == n, or nil and a wrapped sentinel.
//
// Errors:
//   - ErrInvalidSize, ErrAllocationFailure.
//
// Complexity:
//   - Time O(n), Space O(n).
//
// Notes:
//   - Fatal out-of-memory in the Go runtime is not recoverable and not reported.
func New(n int, opts ...Option) (*Vector, error) {
	o := gatherOptions(opts...)
	if n < 0 {
		return nil, ctorErrorf(ctxNew, n, ErrInvalidSize)
	}
	if n > o.maxLen {
		return nil, ctorErrorf(ctxNew, n, ErrAllocationFailure)
	}
	buf, err := allocate(n)
	if err != nil {
		return nil, ctorErrorf(ctxNew, n, err)
	}

	return &Vector{n: n, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// MustNew is New that panics on error. Intended for tests and examples.
func MustNew(n int, opts ...Option) *Vector {
	v, err := New(n, opts...)
	if err != nil {
		panic(err)
	}

	return v
}

// FromSlice constructs a Vector of len(values) holding a copy of values.
// The caller's slice is never aliased. Under the finite-value policy a NaN or
// ±Inf input fails the whole construction with ErrNaNInf.
// Complexity: O(n).
func FromSlice(values []float64, opts ...Option) (*Vector, error) {
	v, err := New(len(values), opts...)
	if err != nil {
		return nil, err
	}
	if v.validateNaNInf {
		if i := firstNonFinite(values); i >= 0 {
			return nil, fmt.Errorf("vector.%s: %w", ctxFromSlice, indexErrorf(ctxSet, i, ErrNaNInf))
		}
	}
	copy(v.data, values)

	return v, nil
}

// firstNonFinite returns the index of the first NaN or ±Inf in data, or -1.
func firstNonFinite(data []float64) int {
	for i, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i
		}
	}

	return -1
}

// allocate makes a zeroed buffer of exactly n slots, converting a runtime
// allocation panic into ErrAllocationFailure. Non-runtime panics propagate.
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

// Len returns the length fixed at construction. A nil *Vector has length 0.
// Complexity: O(1).
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return v.n
}

// Ref returns a pointer to element i for reading or overwriting in place.
// MAIN DESCRIPTION:
//   - Unchecked fast path: the caller guarantees 0 <= i < Len().
//
// Behavior highlights:
//   - No copy is made; writes through the pointer are visible to At/Equal.
//   - An out-of-range i, or a nil receiver, panics with the runtime error.
//     Use At/Set when the index is not known to be valid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector) Ref(i int) *float64 {
	return &v.data[i]
}

// At returns element i or ErrOutOfRange. A nil receiver yields ErrNilVector.
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if v == nil {
		return 0, indexErrorf(ctxAt, i, ErrNilVector)
	}
	if i < 0 || i >= v.n {
		return 0, indexErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at index i.
// Errors: ErrNilVector for a nil receiver; ErrOutOfRange for a bad index;
// ErrNaNInf when the finite-value policy is on and x is NaN or ±Inf.
// The element is unchanged on error.
// Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	if v == nil {
		return indexErrorf(ctxSet, i, ErrNilVector)
	}
	if i < 0 || i >= v.n {
		return indexErrorf(ctxSet, i, ErrOutOfRange)
	}
	if v.validateNaNInf && (math.IsNaN(x) || math.IsInf(x, 0)) {
		return indexErrorf(ctxSet, i, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// Equal reports whether v and other hold the same values.
// MAIN DESCRIPTION:
//   - Structural, exact comparison with short-circuiting.
//
// Implementation:
//   - Stage 1: identical pointers (including both nil) -> true.
//   - Stage 2: exactly one nil -> false.
//   - Stage 3: length mismatch -> false.
//   - Stage 4: pairwise == by increasing index, stop at first mismatch.
//
// Behavior highlights:
//   - No tolerance. NaN never equals NaN, except through Stage 1.
//   - Pure; never fails.
//
// Complexity:
//   - Time O(n) worst case, Space O(1).
func (v *Vector) Equal(other *Vector) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	if v.n != other.n {
		return false
	}

	return floats.Equal(v.data, other.data)
}

// Equal is the free-function form of (*Vector).Equal.
func Equal(a, b *Vector) bool { return a.Equal(b) }

// Clone returns an independent copy with the same length and policy.
// Cloning a nil *Vector returns nil.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	if v == nil {
		return nil
	}
	cp := make([]float64, v.n)
	copy(cp, v.data)

	return &Vector{n: v.n, data: cp, validateNaNInf: v.validateNaNInf}
}

// Values returns a copy of the elements in index order; nil for a nil *Vector.
func (v *Vector) Values() []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, v.n)
	copy(out, v.data)

	return out
}

// String renders the vector as "[a, b, c]" using %g. Not for hot paths.
func (v *Vector) String() string {
	if v == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
