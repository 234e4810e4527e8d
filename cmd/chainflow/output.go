package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"chainflow/internal/chain"
	"chainflow/internal/diagnostic"
	"chainflow/internal/engine"
)

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

func printSummary(w io.Writer, report *engine.Report) {
	counts := report.Counts()

	total := 0
	for _, n := range counts {
		total += n
	}

	fmt.Fprintf(w, "%d members, %d chains: %d ok, %d reorderable, %d need NotNull, %d incompatible, %d internal errors\n",
		len(report.Members), total,
		counts[chain.OutcomeSuccess],
		counts[chain.OutcomeReorderable],
		counts[chain.OutcomeNeedsNullFix],
		counts[chain.OutcomeIncompatible],
		counts[chain.OutcomeInternalError],
	)
}

// printPlans writes one block per plan: the member and its input type, then
// each step with the type flowing out of it.
func printPlans(w io.Writer, plans []engine.Plan) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, p := range plans {
		name := p.Member
		if p.GroupKey != "" {
			name += " (" + p.GroupKey + ")"
		}

		fmt.Fprintf(tw, "%s\t%s\n", name, p.Input.Short())

		for _, s := range p.Steps {
			fmt.Fprintf(tw, "  %s\t%s\n", s.Step.ID, s.Output.Short())
		}
	}

	return tw.Flush()
}
