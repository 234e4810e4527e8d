package engine

import (
	"fmt"
	"strings"

	"chainflow/internal/chain"
	"chainflow/internal/diagnostic"
	"chainflow/internal/typeflow"
)

// Report is the result of an analysis run.
type Report struct {
	Members     []MemberReport
	Diagnostics diagnostic.Diagnostics
}

// MemberReport holds the resolutions of one member, default group first.
type MemberReport struct {
	Name   string
	Type   typeflow.TypeDescriptor
	Chains []chain.ChainResolution
}

// Plan is a successfully threaded chain ready for code generation.
type Plan struct {
	Member   string
	GroupKey string
	// Input is the member type flowing into the first step.
	Input typeflow.TypeDescriptor
	Steps []typeflow.ResolvedStep
}

func newReport(members []MemberReport) *Report {
	r := &Report{Members: members}

	for _, m := range members {
		for _, c := range m.Chains {
			addDiagnostic(&r.Diagnostics, m.Name, c)
		}
	}

	return r
}

// Plans returns every successful chain in report order.
func (r *Report) Plans() []Plan {
	var plans []Plan

	for _, m := range r.Members {
		for _, c := range m.Chains {
			if !c.Resolution.OK() {
				continue
			}

			plans = append(plans, Plan{
				Member:   m.Name,
				GroupKey: c.GroupKey,
				Input:    m.Type,
				Steps:    c.Resolution.Steps,
			})
		}
	}

	return plans
}

// Counts tallies resolutions by outcome.
func (r *Report) Counts() map[chain.Outcome]int {
	counts := map[chain.Outcome]int{}

	for _, m := range r.Members {
		for _, c := range m.Chains {
			counts[c.Resolution.Kind]++
		}
	}

	return counts
}

func addDiagnostic(diags *diagnostic.Diagnostics, member string, c chain.ChainResolution) {
	res := c.Resolution

	var code string

	switch res.Kind {
	case chain.OutcomeSuccess:
		return
	case chain.OutcomeReorderable:
		code = diagnostic.CodeChainNeedsReordering
	case chain.OutcomeNeedsNullFix:
		code = diagnostic.CodeChainNeedsNotNull
	case chain.OutcomeIncompatible:
		code = diagnostic.CodeChainIncompatible
	default:
		code = diagnostic.CodeInternalToolError
	}

	diags.AddError(code, Message(member, c), member, c.GroupKey)
}

// Message renders the human-readable text for a failed resolution. Named
// groups prefix the text with "(group) ".
func Message(member string, c chain.ChainResolution) string {
	res := c.Resolution

	prefix := ""
	if c.GroupKey != "" {
		prefix = "(" + c.GroupKey + ") "
	}

	switch res.Kind {
	case chain.OutcomeSuccess:
		return ""
	case chain.OutcomeReorderable:
		return fmt.Sprintf("%sValidation for member '%s' is incompatible but can be reordered. Suggested order: %s.",
			prefix, member, typeflow.JoinStepIDs(res.SuggestedOrder, " -> "))
	case chain.OutcomeNeedsNullFix:
		return fmt.Sprintf("%sValidation for member '%s' is incompatible due to null types. Add NotNull step at position %d.",
			prefix, member, res.Position)
	case chain.OutcomeIncompatible:
		return fmt.Sprintf("%sValidation for member '%s' has incompatible step types that cannot be resolved: %s expects one of [%s] but got %s.",
			prefix, member, res.Step.ID, joinTypes(res.Expected), res.Got)
	default:
		return fmt.Sprintf("%sValidation for member '%s' could not be analyzed: %v", prefix, member, res.Err)
	}
}

func joinTypes(types []typeflow.TypeDescriptor) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, t.String())
	}

	return strings.Join(parts, ", ")
}
