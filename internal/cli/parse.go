// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvvec/vector"
)

// parseSizes converts positional arguments into probe sizes.
func parseSizes(args []string) ([]int, error) {
	sizes := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", a, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// parseVector reads a comma-separated list of floats ("1,2.5,-3") into a
// Vector. An empty or blank string is the empty vector.
func parseVector(s string) (*vector.Vector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return vector.New(0)
	}
	fields := strings.Split(s, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		values[i] = x
	}
	return vector.FromSlice(values)
}
