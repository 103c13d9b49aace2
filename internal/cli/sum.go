// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvvec/vector"
)

// SumResult is the JSON payload of the sum command.
type SumResult struct {
	Values []float64 `json:"values"`
}

// NewSumCommand creates the sum command.
func NewSumCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sum <a> <b>",
		Short: "Add two vectors of equal length",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			a, err := parseVector(args[0])
			if err != nil {
				return f.fail(ExitCommandError, ErrCodeBadInput, "invalid first vector", err)
			}
			b, err := parseVector(args[1])
			if err != nil {
				return f.fail(ExitCommandError, ErrCodeBadInput, "invalid second vector", err)
			}
			s, err := vector.Sum(a, b)
			if err != nil {
				return f.fail(ExitCommandError, ErrCodeMismatch, "cannot add vectors", err)
			}
			return f.Success(SumResult{Values: s.Values()}, s.String()+"\n")
		},
	}
}
