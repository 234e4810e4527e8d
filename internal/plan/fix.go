package plan

import (
	"slices"

	"chainflow/internal/chain"
	"chainflow/internal/engine"
	"chainflow/internal/typeflow"
)

// Change is the rewrite of one chain.
type Change struct {
	Member   string
	GroupKey string
	Kind     chain.Outcome
	Before   []typeflow.StepID
	After    []typeflow.StepID
}

// Fix rewrites steps according to res. It reports false when res has no
// automatic fix. The input slice is not modified.
func Fix(steps []typeflow.StepSpec, res chain.Resolution, notNull typeflow.StepSpec) ([]typeflow.StepSpec, bool) {
	switch res.Kind {
	case chain.OutcomeReorderable:
		return slices.Clone(res.SuggestedOrder), true
	case chain.OutcomeNeedsNullFix:
		if res.Position < 0 || res.Position > len(steps) {
			return nil, false
		}

		return slices.Insert(slices.Clone(steps), res.Position, notNull), true
	default:
		return nil, false
	}
}

// Changes lists the fixes for every fixable chain in report. members must be
// the slice the report was produced from.
func Changes(members []typeflow.Member, report *engine.Report, notNull typeflow.StepSpec) []Change {
	var changes []Change

	for i, rep := range report.Members {
		if i >= len(members) {
			break
		}

		for _, c := range rep.Chains {
			steps, ok := chainSteps(members[i], c.GroupKey)
			if !ok {
				continue
			}

			fixed, ok := Fix(steps, c.Resolution, notNull)
			if !ok {
				continue
			}

			changes = append(changes, Change{
				Member:   rep.Name,
				GroupKey: c.GroupKey,
				Kind:     c.Resolution.Kind,
				Before:   typeflow.StepIDs(steps),
				After:    typeflow.StepIDs(fixed),
			})
		}
	}

	return changes
}

func chainSteps(m typeflow.Member, key string) ([]typeflow.StepSpec, bool) {
	for _, c := range m.Chains {
		if c.GroupKey == key {
			return c.Steps, true
		}
	}

	return nil, false
}
