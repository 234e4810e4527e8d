package chain

import (
	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

// CanFixWithNotNull reports whether stripping nullability from current would
// let failing accept it, i.e. whether a strip marker inserted right before
// failing repairs the chain at that position.
func CanFixWithNotNull(rule match.Rule, current typeflow.TypeDescriptor, failing typeflow.StepSpec) bool {
	if current.Optional {
		underlying := current.Underlying()
		for _, sig := range failing.Signatures {
			if sig.Input.Identical(underlying) {
				return true
			}
		}

		return false
	}

	if !current.Nullable {
		return false
	}

	nonNull := current.NonNull()
	for _, sig := range failing.Signatures {
		if !sig.Input.Nullable && rule.Accepts(nonNull, sig.Input) {
			return true
		}
	}

	return false
}
