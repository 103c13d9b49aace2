// SPDX-License-Identifier: MIT

package probe

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvvec/vector"
)

// DefaultSizes are the sizes probed when a plan names none: a negative size,
// a size far above the default allocation ceiling, and a small valid size.
var DefaultSizes = []int{-1, 1_000_000_000, 10}

// Result describes one construction attempt.
type Result struct {
	Requested int     `json:"requested"`
	Outcome   Outcome `json:"outcome"`
	Length    int     `json:"length"`
	Message   string  `json:"message,omitempty"`
}

// Report collects the results of one Run in probe order.
type Report struct {
	ID      string   `json:"id"`
	Results []Result `json:"results"`
}

// Failures returns how many probes did not end with OutcomeOK.
func (r Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome != OutcomeOK {
			n++
		}
	}
	return n
}

// Option configures a Prober.
type Option func(*Prober)

// WithLogger sets the diagnostic logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Prober) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMaxLen sets the allocation ceiling passed to vector.New.
// Zero keeps vector.DefaultMaxLen.
func WithMaxLen(n int) Option {
	return func(p *Prober) {
		if n > 0 {
			p.maxLen = n
		}
	}
}

// WithIDFunc replaces the report id generator (uuid.NewString by default).
func WithIDFunc(f func() string) Option {
	return func(p *Prober) {
		if f != nil {
			p.newID = f
		}
	}
}

// Prober runs construction probes. The zero value is not usable; use New.
type Prober struct {
	log    *slog.Logger
	maxLen int
	newID  func() string
}

// New returns a Prober logging to slog.Default().
func New(opts ...Option) *Prober {
	p := &Prober{
		log:    slog.Default(),
		maxLen: vector.DefaultMaxLen,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe constructs a vector of length n and reports the outcome. The vector
// is discarded immediately. Failures are logged at Warn with the error text.
func (p *Prober) Probe(n int) Result {
	v, err := vector.New(n, vector.WithMaxLen(p.maxLen))
	res := Result{Requested: n, Outcome: Classify(err)}
	if err != nil {
		res.Message = err.Error()
		p.log.Warn("vector construction failed",
			"size", n,
			"outcome", string(res.Outcome),
			"error", err)
		return res
	}

	res.Length = v.Len()
	p.log.Debug("vector constructed", "size", n, "len", res.Length)
	return res
}

// Run probes every size in order and returns the collected report.
func (p *Prober) Run(sizes []int) Report {
	rep := Report{ID: p.newID(), Results: make([]Result, 0, len(sizes))}
	p.log.Info("probe run started", "id", rep.ID, "sizes", len(sizes), "max_len", p.maxLen)
	for _, n := range sizes {
		rep.Results = append(rep.Results, p.Probe(n))
	}
	p.log.Info("probe run finished", "id", rep.ID, "failures", rep.Failures())
	return rep
}
