package chain

import (
	"chainflow/internal/common"
	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

// Resolver classifies chains. It holds no mutable state.
type Resolver struct {
	rule match.Rule
}

// NewResolver creates a Resolver that asks oracle about implicit conversions.
func NewResolver(oracle match.Oracle) *Resolver {
	return &Resolver{rule: match.NewRule(oracle)}
}

// Rule returns the compatibility rule used by the resolver.
func (r *Resolver) Rule() match.Rule {
	return r.rule
}

// Resolve classifies one chain whose first step receives start.
//
// On failure a reordering is preferred over a not-null fix; the reordering
// search restarts from start over the full declared step set. Single-step
// chains skip the reordering search.
func (r *Resolver) Resolve(start typeflow.TypeDescriptor, steps []typeflow.StepSpec) Resolution {
	if common.IsEmpty(steps) {
		return Success(nil)
	}

	resolved, failure := Walk(r.rule, start, steps)
	if failure == nil {
		return Success(resolved)
	}

	if common.IsMultiple(steps) {
		if order, ok := FindOrdering(r.rule, start, steps); ok {
			return Reorderable(order)
		}
	}

	if CanFixWithNotNull(r.rule, failure.Got, failure.Step) {
		return NeedsNullFix(failure.Index, failure.Step)
	}

	return Incompatible(failure.Index, failure.Got, failure.Step)
}

// ResolveMember resolves every chain of m, default group first and named
// groups in lexicographic order.
func (r *Resolver) ResolveMember(m typeflow.Member) []ChainResolution {
	chains := m.Ordered()

	out := make([]ChainResolution, 0, len(chains))
	for _, c := range chains {
		out = append(out, ChainResolution{
			GroupKey:   c.GroupKey,
			Resolution: r.Resolve(m.Type, c.Steps),
		})
	}

	return out
}
