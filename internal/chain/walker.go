package chain

import (
	"fmt"

	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

// Failure locates the first step of a walk that rejected the flowing type.
type Failure struct {
	Index int
	Got   typeflow.TypeDescriptor
	Step  typeflow.StepSpec
}

// Error implements error.
func (f *Failure) Error() string {
	return fmt.Sprintf("step %d (%s) does not accept %s", f.Index, f.Step.ID, f.Got)
}

// accept returns the signature of step matching current and the type it
// produces. Markers match anything and report a nil signature.
func accept(rule match.Rule, step typeflow.StepSpec, current typeflow.TypeDescriptor) (*typeflow.Signature, typeflow.TypeDescriptor, bool) {
	if step.IsMarker() {
		return nil, step.Apply(current), true
	}

	for i := range step.Signatures {
		sig := &step.Signatures[i]
		if rule.Accepts(current, sig.Input) {
			return sig, sig.Resolve(current), true
		}
	}

	return nil, current, false
}

// Walk threads start through steps in the given order. It stops at the first
// step that accepts none of its signatures and never backtracks.
func Walk(rule match.Rule, start typeflow.TypeDescriptor, steps []typeflow.StepSpec) ([]typeflow.ResolvedStep, *Failure) {
	resolved := make([]typeflow.ResolvedStep, 0, len(steps))
	current := start

	for i, step := range steps {
		sig, out, ok := accept(rule, step, current)
		if !ok {
			return nil, &Failure{Index: i, Got: current, Step: step}
		}

		var matched *typeflow.Signature
		if sig != nil {
			copied := *sig
			matched = &copied
		}

		resolved = append(resolved, typeflow.ResolvedStep{Step: step, Signature: matched, Output: out})
		current = out
	}

	return resolved, nil
}
