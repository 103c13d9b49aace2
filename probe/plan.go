// SPDX-License-Identifier: MIT

package probe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is a YAML-described probe run.
type Plan struct {
	// MaxLen overrides the allocation ceiling; 0 keeps the default.
	MaxLen int `yaml:"max_len"`
	// Sizes are probed in order; empty means DefaultSizes.
	Sizes []int `yaml:"sizes"`
}

// ParsePlan decodes and validates a plan. Unknown keys are rejected; an
// empty document is the default plan.
func ParsePlan(data []byte) (Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Plan{}, fmt.Errorf("%w: %v", ErrBadPlan, err)
	}
	if p.MaxLen < 0 {
		return Plan{}, fmt.Errorf("%w: max_len must be >= 0, got %d", ErrBadPlan, p.MaxLen)
	}
	if len(p.Sizes) == 0 {
		p.Sizes = append([]int(nil), DefaultSizes...)
	}
	return p, nil
}

// LoadPlan reads and parses a plan file.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read plan %s: %w", path, err)
	}
	p, err := ParsePlan(data)
	if err != nil {
		return Plan{}, fmt.Errorf("parse plan %s: %w", path, err)
	}
	return p, nil
}

// Options returns the Prober options implied by the plan.
func (p Plan) Options() []Option {
	return []Option{WithMaxLen(p.MaxLen)}
}
