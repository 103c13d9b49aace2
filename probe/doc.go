// SPDX-License-Identifier: MIT

// Package probe exercises vector construction for a list of requested sizes
// and reports how each attempt ended.
//
// Each probe constructs a vector.Vector, drops it, and classifies the outcome
// as ok, invalid_size or allocation_failure. Failures are described on a
// diagnostic slog.Logger and returned in the Report; a failed probe never
// aborts the remaining ones.
//
// Plans can be loaded from YAML:
//
//	max_len: 1000000
//	sizes: [-1, 10, 0]
package probe
