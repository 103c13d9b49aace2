// SPDX-License-Identifier: MIT

// Package vector: functional configuration for construction.
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option / WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper that applies options over the defaults.
package vector

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxLen is the allocation ceiling in elements (1 GiB of float64).
	// Requests above it fail with ErrAllocationFailure before touching the heap.
	DefaultMaxLen = 1 << 27

	// DefaultValidateNaNInf toggles finite-only validation in Set, FromSlice and Sum.
	// Off by default: any float64 written must read back unchanged.
	DefaultValidateNaNInf = false
)

const panicMaxLenInvalid = "vector: WithMaxLen: ceiling must be non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

// options is the resolved configuration. Unexported; callers use Option.
type options struct {
	maxLen         int  // allocation ceiling in elements
	validateNaNInf bool // reject NaN/±Inf on writes
}

// defaultOptions returns the zero-config state.
func defaultOptions() options {
	return options{
		maxLen:         DefaultMaxLen,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// WithMaxLen sets the allocation ceiling in elements.
// Panics if n < 0 (programmer error).
func WithMaxLen(n int) Option {
	if n < 0 {
		panic(panicMaxLenInvalid)
	}
	return func(o *options) { o.maxLen = n }
}

// WithValidateNaNInf enables or disables the finite-value policy.
func WithValidateNaNInf(on bool) Option {
	return func(o *options) { o.validateNaNInf = on }
}

// gatherOptions applies opts in order over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
