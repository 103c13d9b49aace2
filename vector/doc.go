// SPDX-License-Identifier: MIT

// Package vector provides Vector, a bounded (fixed-length) sequence of float64
// values with validated construction, indexed access and exact equality.
//
// 🚀 What is a bounded vector?
//
//	A Vector is created once with a non-negative length and keeps that length
//	for its whole lifetime. It exclusively owns a contiguous buffer whose
//	capacity equals its length; the buffer is released together with the
//	Vector by the garbage collector, so there is no manual free step.
//
// ✨ Key features:
//   - validated construction: New(n) fails with ErrInvalidSize for n < 0 and
//     with ErrAllocationFailure when the buffer cannot be allocated
//   - two accessors: Ref(i) is the unchecked fast path (a pointer into the
//     buffer), At/Set are the checked path (ErrOutOfRange instead of a panic)
//   - exact value equality (no epsilon), short-circuiting on length mismatch
//     and on the first differing element
//   - small kernels: Sum (value-returning), AddInto (in-place), SqrtSum
//
// ⚙️ Usage:
//
//	v, err := vector.New(3)
//	if err != nil {
//		// errors.Is(err, vector.ErrInvalidSize) / vector.ErrAllocationFailure
//	}
//	*v.Ref(0) = 1.0
//	_ = v.Set(1, 2.0)
//	x, _ := v.At(1)
//
// Elements of a freshly constructed Vector are zero.
//
// A Vector is not safe for concurrent mutation; callers serialize access.
package vector
