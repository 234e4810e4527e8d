package chain

import (
	"chainflow/internal/typeflow"
)

//go:generate go tool stringer -type=Outcome -linecomment -output=outcome_string.go

// Outcome classifies the resolution of one chain.
type Outcome int

const (
	OutcomeSuccess       Outcome = iota // success
	OutcomeReorderable                  // reorderable
	OutcomeNeedsNullFix                 // needs_null_fix
	OutcomeIncompatible                 // incompatible
	OutcomeInternalError                // internal_error
)

// Resolution is the result of resolving one chain. Only the fields relevant
// to Kind are set.
type Resolution struct {
	Kind Outcome

	// Steps is the threaded chain (OutcomeSuccess).
	Steps []typeflow.ResolvedStep
	// SuggestedOrder is a feasible permutation of the declared steps
	// (OutcomeReorderable). It is a suggestion only.
	SuggestedOrder []typeflow.StepSpec

	// Position is the index of the failing step
	// (OutcomeNeedsNullFix, OutcomeIncompatible).
	Position int
	// Step is the failing step (OutcomeNeedsNullFix, OutcomeIncompatible).
	Step typeflow.StepSpec
	// Got is the type flowing into the failing step (OutcomeIncompatible).
	Got typeflow.TypeDescriptor
	// Expected lists the failing step's declared inputs (OutcomeIncompatible).
	Expected []typeflow.TypeDescriptor

	// Err describes an unexpected fault (OutcomeInternalError).
	Err error
}

// Success builds an OutcomeSuccess resolution.
func Success(steps []typeflow.ResolvedStep) Resolution {
	if steps == nil {
		steps = []typeflow.ResolvedStep{}
	}

	return Resolution{Kind: OutcomeSuccess, Steps: steps}
}

// Reorderable builds an OutcomeReorderable resolution.
func Reorderable(order []typeflow.StepSpec) Resolution {
	return Resolution{Kind: OutcomeReorderable, SuggestedOrder: order}
}

// NeedsNullFix builds an OutcomeNeedsNullFix resolution.
func NeedsNullFix(position int, step typeflow.StepSpec) Resolution {
	return Resolution{Kind: OutcomeNeedsNullFix, Position: position, Step: step}
}

// Incompatible builds an OutcomeIncompatible resolution.
func Incompatible(position int, got typeflow.TypeDescriptor, step typeflow.StepSpec) Resolution {
	return Resolution{
		Kind:     OutcomeIncompatible,
		Position: position,
		Step:     step,
		Got:      got,
		Expected: step.Inputs(),
	}
}

// InternalError builds an OutcomeInternalError resolution.
func InternalError(err error) Resolution {
	return Resolution{Kind: OutcomeInternalError, Err: err}
}

// OK reports whether the chain threads as declared.
func (r Resolution) OK() bool {
	return r.Kind == OutcomeSuccess
}

// SuggestedIDs lists the identifiers of the suggested order.
func (r Resolution) SuggestedIDs() []typeflow.StepID {
	return typeflow.StepIDs(r.SuggestedOrder)
}

// ChainResolution pairs a chain's group key with its resolution.
type ChainResolution struct {
	GroupKey   string
	Resolution Resolution
}
