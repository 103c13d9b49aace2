// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Element-wise kernels over bounded vectors.
//   - Sum returns a fresh value (the caller owns it; nothing to release).
//   - AddInto mutates its destination in place and never touches the source.
//
// Determinism:
//   - Fixed loop order 0..n-1; gonum/floats kernels operate on the flat buffers.

package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sum returns a new Vector holding a[i] + b[i].
// Errors: ErrNilVector if either operand is nil; ErrDimensionMismatch when
// a.Len() != b.Len(). The result inherits a's numeric policy: under the
// finite-value policy a sum that overflows to ±Inf (or yields NaN) fails
// with ErrNaNInf and no vector is returned.
// Complexity: O(n) time and space.
func Sum(a, b *Vector) (*Vector, error) {
	if a == nil || b == nil {
		return nil, opErrorf(ctxSum, a.Len(), b.Len(), ErrNilVector)
	}
	if a.n != b.n {
		return nil, opErrorf(ctxSum, a.n, b.n, ErrDimensionMismatch)
	}
	out := &Vector{n: a.n, data: make([]float64, a.n), validateNaNInf: a.validateNaNInf}
	floats.AddTo(out.data, a.data, b.data)
	if out.validateNaNInf && firstNonFinite(out.data) >= 0 {
		return nil, opErrorf(ctxSum, a.n, b.n, ErrNaNInf)
	}

	return out, nil
}

// AddInto accumulates src into dst in place: dst[i] += src[i] for every i in
// the common prefix [0, min(dst.Len(), src.Len())). Elements of dst past that
// prefix are left untouched, and src is never modified.
// Returns the number of elements updated.
// Errors: ErrNilVector if either operand is nil.
// Complexity: O(min(n, m)).
func AddInto(dst, src *Vector) (int, error) {
	if dst == nil || src == nil {
		return 0, opErrorf(ctxAddInto, dst.Len(), src.Len(), ErrNilVector)
	}
	k := min(dst.n, src.n)
	floats.Add(dst.data[:k], src.data[:k])

	return k, nil
}

// SqrtSum returns the sum of the square roots of v's elements.
// A negative element yields NaN (math.Sqrt semantics); an empty or nil
// vector yields 0.
func SqrtSum(v *Vector) float64 {
	var sum float64
	for i := 0; i < v.Len(); i++ {
		sum += math.Sqrt(v.data[i])
	}

	return sum
}
