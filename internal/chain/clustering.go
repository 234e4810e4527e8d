package chain

import (
	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

// FindOrdering looks for a permutation of steps that threads from start.
//
// The search is greedy: at every position it commits to the first remaining
// step, in declaration order, that accepts the flowing type, and it never
// revisits that choice. A returned order always walks successfully, but an
// existing valid permutation can be missed when an early choice blocks it.
func FindOrdering(rule match.Rule, start typeflow.TypeDescriptor, steps []typeflow.StepSpec) ([]typeflow.StepSpec, bool) {
	pool := make([]typeflow.StepSpec, len(steps))
	copy(pool, steps)

	order := make([]typeflow.StepSpec, 0, len(steps))
	current := start

	for len(pool) > 0 {
		idx, out, ok := firstAcceptable(rule, pool, current)
		if !ok {
			return nil, false
		}

		order = append(order, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
		current = out
	}

	return order, true
}

func firstAcceptable(rule match.Rule, pool []typeflow.StepSpec, current typeflow.TypeDescriptor) (int, typeflow.TypeDescriptor, bool) {
	for i, step := range pool {
		if _, out, ok := accept(rule, step, current); ok {
			return i, out, true
		}
	}

	return 0, current, false
}
