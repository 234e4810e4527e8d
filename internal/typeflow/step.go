package typeflow

import (
	"sort"
	"strings"

	"chainflow/internal/common"
)

// StepID identifies a step for diagnostics.
type StepID string

// Signature is one accepted (input, output) pair of a step.
type Signature struct {
	Input  TypeDescriptor
	Output TypeDescriptor
	// Transforms is false for pure check steps: the value flows through
	// unchanged regardless of Output.
	Transforms bool
}

// Resolve returns the type flowing out of the step given the flowing input.
func (s Signature) Resolve(current TypeDescriptor) TypeDescriptor {
	if s.Transforms {
		return s.Output
	}

	return current
}

// MarkerKind distinguishes nullability markers from regular steps.
type MarkerKind int

const (
	// MarkerNone - a regular step matched through its signatures.
	MarkerNone MarkerKind = iota
	// MarkerStrip - accepts anything and removes nullability.
	MarkerStrip
	// MarkerPassthrough - accepts anything and forwards it unchanged.
	MarkerPassthrough
)

// String returns a human-readable marker name.
func (m MarkerKind) String() string {
	switch m {
	case MarkerNone:
		return "none"
	case MarkerStrip:
		return "strip"
	case MarkerPassthrough:
		return "passthrough"
	default:
		return common.UnknownStr
	}
}

// ParseMarkerKind parses the textual form produced by MarkerKind.String.
// The empty string maps to MarkerNone.
func ParseMarkerKind(s string) (MarkerKind, bool) {
	switch s {
	case "", "none":
		return MarkerNone, true
	case "strip":
		return MarkerStrip, true
	case "passthrough":
		return MarkerPassthrough, true
	default:
		return MarkerNone, false
	}
}

// StepSpec is one declared step.
type StepSpec struct {
	ID StepID
	// Signatures are tried in order; the first accepting one wins.
	Signatures []Signature
	Marker     MarkerKind
}

// IsMarker reports whether the step is a nullability marker.
func (s StepSpec) IsMarker() bool {
	return s.Marker != MarkerNone
}

// Apply computes the marker output for the flowing type.
func (s StepSpec) Apply(current TypeDescriptor) TypeDescriptor {
	if s.Marker == MarkerStrip {
		return current.NonNull()
	}

	return current
}

// Inputs lists the declared input types in signature order.
func (s StepSpec) Inputs() []TypeDescriptor {
	inputs := make([]TypeDescriptor, 0, len(s.Signatures))
	for _, sig := range s.Signatures {
		inputs = append(inputs, sig.Input)
	}

	return inputs
}

// Chain is an ordered list of steps sharing a group key.
type Chain struct {
	GroupKey string
	Steps    []StepSpec
}

// Member is a data-model member with its declared type and chains.
type Member struct {
	Name   string
	Type   TypeDescriptor
	Chains []Chain
}

// Ordered returns the chains with the default (empty) group first and named
// groups in lexicographic order. The receiver is not modified.
func (m Member) Ordered() []Chain {
	chains := make([]Chain, len(m.Chains))
	copy(chains, m.Chains)

	sort.SliceStable(chains, func(i, j int) bool {
		return chains[i].GroupKey < chains[j].GroupKey
	})

	return chains
}

// ResolvedStep is one step of a successfully threaded chain.
type ResolvedStep struct {
	Step StepSpec
	// Signature is nil for marker steps.
	Signature *Signature
	Output    TypeDescriptor
}

// StepIDs lists the identifiers of the given steps.
func StepIDs(steps []StepSpec) []StepID {
	ids := make([]StepID, 0, len(steps))
	for _, s := range steps {
		ids = append(ids, s.ID)
	}

	return ids
}

// JoinStepIDs renders step identifiers joined by sep.
func JoinStepIDs(steps []StepSpec, sep string) string {
	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		parts = append(parts, string(s.ID))
	}

	return strings.Join(parts, sep)
}
