// SPDX-License-Identifier: MIT

package probe

import (
	"errors"

	"github.com/katalvlaran/lvvec/vector"
)

// Outcome classifies how a construction attempt ended.
type Outcome string

const (
	// OutcomeOK means a usable vector was produced.
	OutcomeOK Outcome = "ok"

	// OutcomeInvalidSize means the requested length was negative.
	OutcomeInvalidSize Outcome = "invalid_size"

	// OutcomeAllocationFailure means the buffer could not be allocated.
	OutcomeAllocationFailure Outcome = "allocation_failure"
)

// Classify maps a construction error onto an Outcome. A nil error is
// OutcomeOK; any error that is not ErrInvalidSize counts as an allocation
// failure, the only other way construction can fail.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, vector.ErrInvalidSize):
		return OutcomeInvalidSize
	default:
		return OutcomeAllocationFailure
	}
}
