// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvvec/vector"
)

// EqualResult is the JSON payload of the equal command.
type EqualResult struct {
	Equal bool `json:"equal"`
}

// NewEqualCommand creates the equal command.
func NewEqualCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "equal <a> <b>",
		Short: "Compare two vectors exactly",
		Long: `Compare two comma-separated vectors element by element with no tolerance.
Vectors of different lengths are never equal.`,
		Args: cobra.ExactArgs(2),
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
			eq := vector.Equal(a, b)
			rootOpts.Logger().Debug("compared vectors", "len_a", a.Len(), "len_b", b.Len(), "equal", eq)
			return f.Success(EqualResult{Equal: eq}, fmt.Sprintln(eq))
		},
	}
}
