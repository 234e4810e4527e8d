package analyze

import (
	"go/types"

	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

// Oracle answers implicit-conversion questions with Go assignability over
// the types of a TypeGraph. Unknown ids are never convertible.
type Oracle struct {
	graph *TypeGraph
}

var _ match.Oracle = Oracle{}

// NewOracle creates an Oracle over graph.
func NewOracle(graph *TypeGraph) Oracle {
	return Oracle{graph: graph}
}

// ImplicitlyConvertible implements match.Oracle.
func (o Oracle) ImplicitlyConvertible(from, to typeflow.TypeID) bool {
	if o.graph == nil {
		return false
	}

	fromT, ok := o.graph.Lookup(from)
	if !ok {
		return false
	}

	toT, ok := o.graph.Lookup(to)
	if !ok {
		return false
	}

	return types.AssignableTo(fromT, toT)
}
