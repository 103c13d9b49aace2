// SPDX-License-Identifier: MIT

// Package matrix provides Dense, a small row-major float64 matrix whose
// arithmetic returns fresh values.
//
// The package provides:
//
//   - NewDense with shape validation (negative dimensions are rejected,
//     empty 0×N / N×0 shapes are legal).
//   - Bounds-checked At/Set returning ErrOutOfRange instead of panicking.
//   - Add(a, b), which returns a newly allocated sum; callers own the result
//     and never release it manually.
//   - Row/SetRow bridges to the bounded vector.Vector type.
//
// See example_test.go for usage patterns.
package matrix
