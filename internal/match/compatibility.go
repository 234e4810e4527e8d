package match

import (
	"chainflow/internal/common"
	"chainflow/internal/typeflow"
)

// Verdict is the outcome of checking a flowing type against a declared input.
type Verdict int

const (
	// VerdictIncompatible means no implicit conversion exists.
	VerdictIncompatible Verdict = iota
	// VerdictNullabilityMismatch means the identities convert but the
	// nullability annotations disagree; an explicit marker step is required.
	VerdictNullabilityMismatch
	// VerdictConvertible means an implicit conversion exists.
	VerdictConvertible
	// VerdictIdentical means identity and nullability are the same.
	VerdictIdentical
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictIdentical:
		return "identical"
	case VerdictConvertible:
		return "convertible"
	case VerdictNullabilityMismatch:
		return "nullability_mismatch"
	case VerdictIncompatible:
		return "incompatible"
	default:
		return common.UnknownStr
	}
}

// Accepted reports whether the verdict lets the value flow into the step.
func (v Verdict) Accepted() bool {
	return v >= VerdictConvertible
}

// Rule is the compatibility rule used by every resolver component.
// It is safe for concurrent use when its oracle is.
type Rule struct {
	oracle Oracle
}

// NewRule creates a Rule backed by the given conversion oracle.
// A nil oracle knows no conversions besides identity.
func NewRule(oracle Oracle) Rule {
	if oracle == nil {
		oracle = None
	}

	return Rule{oracle: oracle}
}

// Accepts reports whether a value of type flowing satisfies declared.
func (r Rule) Accepts(flowing, declared typeflow.TypeDescriptor) bool {
	return r.verdict(flowing, declared).Accepted()
}

func (r Rule) verdict(flowing, declared typeflow.TypeDescriptor) Verdict {
	if flowing.Identical(declared) {
		return VerdictIdentical
	}

	if !r.convertible(flowing.ID, declared.ID) {
		return VerdictIncompatible
	}

	if !nullabilityCompatible(flowing, declared) {
		return VerdictNullabilityMismatch
	}

	return VerdictConvertible
}

// convertible treats the identity conversion as implicit without asking the oracle.
func (r Rule) convertible(from, to typeflow.TypeID) bool {
	if from == to {
		return true
	}

	return r.oracle.ImplicitlyConvertible(from, to)
}

// nullabilityCompatible never lets nullability disappear implicitly.
// Between two references the annotations must match exactly.
func nullabilityCompatible(flowing, declared typeflow.TypeDescriptor) bool {
	if flowing.IsReference() && declared.IsReference() {
		return flowing.Nullable == declared.Nullable
	}

	return !flowing.Nullable || declared.Nullable
}
