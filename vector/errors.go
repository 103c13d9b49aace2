// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All constructors and checked accessors return these sentinels (possibly
// wrapped with call-site context); tests MUST check them via errors.Is.
// The unchecked accessor Ref is the only API that may panic.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned by New when the requested length is negative.
	// Retrying with the same input never succeeds.
	ErrInvalidSize = errors.New("vector: negative size")

	// ErrAllocationFailure is returned by New when the backing buffer cannot be
	// allocated (request above the configured ceiling or rejected by the runtime).
	ErrAllocationFailure = errors.New("vector: allocation failure")

	// ErrOutOfRange indicates an index outside [0, Len()) in At/Set.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-value policy.
	ErrNaNInf = errors.New("vector: NaN or Inf encountered")
)

// Method tags used in error wrappers.
const (
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxSum       = "Sum"
	ctxAddInto   = "AddInto"
)

// ctorErrorf wraps a construction failure with the requested length.
func ctorErrorf(method string, n int, err error) error {
	return fmt.Errorf("vector.%s(%d): %w", method, n, err)
}

// indexErrorf wraps an accessor failure with the offending index.
func indexErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// opErrorf wraps a kernel failure with the operand lengths.
func opErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("vector.%s(len=%d, len=%d): %w", method, a, b, err)
}
