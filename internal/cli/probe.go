// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvvec/probe"
)

// ProbeOptions holds flags for the probe command.
type ProbeOptions struct {
	PlanPath string
	MaxLen   int
}

// NewProbeCommand creates the probe command.
func NewProbeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProbeOptions{}

	cmd := &cobra.Command{
		Use:   "probe [sizes...]",
		Short: "Try constructing vectors of the given sizes",
		Long: `Construct a vector for each requested size and report the outcome
(ok, invalid_size or allocation_failure). Failures are described on stderr.

Without sizes or a plan, probes -1, 1000000000 and 10. Negative sizes must
follow "--", e.g. lvvec probe -- -1 10.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.PlanPath, "plan", "p", "", "YAML probe plan (max_len, sizes)")
	cmd.Flags().IntVar(&opts.MaxLen, "max-len", 0, "allocation ceiling in elements (0 = default)")

	return cmd
}

func runProbe(rootOpts *RootOptions, opts *ProbeOptions, args []string, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)

	plan := probe.Plan{Sizes: probe.DefaultSizes}
	if opts.PlanPath != "" {
		p, err := probe.LoadPlan(opts.PlanPath)
		if err != nil {
			return f.fail(ExitCommandError, ErrCodeBadPlan, "cannot load plan", err)
		}
		plan = p
	}
	if len(args) > 0 {
		sizes, err := parseSizes(args)
		if err != nil {
			return f.fail(ExitCommandError, ErrCodeBadInput, "invalid size", err)
		}
		plan.Sizes = sizes
	}
	if opts.MaxLen < 0 {
		return f.fail(ExitCommandError, ErrCodeBadInput, fmt.Sprintf("invalid --max-len %d", opts.MaxLen), nil)
	}
	if opts.MaxLen > 0 {
		plan.MaxLen = opts.MaxLen
	}

	p := probe.New(append(plan.Options(), probe.WithLogger(rootOpts.Logger()))...)
	rep := p.Run(plan.Sizes)

	if err := f.Success(rep, formatReport(rep)); err != nil {
		return err
	}
	if n := rep.Failures(); n > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d probe(s) failed", n, len(rep.Results)))
	}
	return nil
}

// formatReport renders one line per probe plus a summary line.
func formatReport(rep probe.Report) string {
	var sb strings.Builder
	for _, r := range rep.Results {
		fmt.Fprintf(&sb, "size=%d outcome=%s len=%d", r.Requested, r.Outcome, r.Length)
		if r.Message != "" {
			fmt.Fprintf(&sb, " error=%q", r.Message)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%d probe(s), %d failed\n", len(rep.Results), rep.Failures())
	return sb.String()
}
