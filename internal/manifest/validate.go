package manifest

import (
	"fmt"

	"chainflow/internal/diagnostic"
	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

// Manifest diagnostic codes.
const (
	CodeUnknownType       = "unknown_type"
	CodeUnknownStep       = "unknown_step"
	CodeDuplicateStep     = "duplicate_step"
	CodeDuplicateType     = "duplicate_type"
	CodeMissingSignatures = "missing_signatures"
	CodeInvalidMarker     = "invalid_marker"
	CodeInvalidKind       = "invalid_kind"
	CodeInvalidTypeRef    = "invalid_type_ref"
)

// Validate performs structural checks on a manifest. Type names, step ids and
// Go bindings must be unique, every reference must resolve, and regular steps
// need at least one signature. Unresolved names carry "did you mean"
// suggestions.
func Validate(mf *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	typeNames := validateTypes(res, mf)

	for _, c := range mf.Conversions {
		owner := fmt.Sprintf("%s->%s", c.From, c.To)
		validateTypeName(res, typeNames, c.From, owner, "")
		validateTypeName(res, typeNames, c.To, owner, "")
	}

	stepNames := validateSteps(res, mf, typeNames)

	for _, m := range mf.Members {
		validateTypeRef(res, typeNames, m.Type, m.Name, "")

		for _, key := range keys(m.Chains) {
			for _, id := range m.Chains[key] {
				if _, ok := stepNames[id]; ok {
					continue
				}

				res.AddError(CodeUnknownStep, fmt.Sprintf("unknown step %q", id), m.Name, key,
					suggestions(id, keys(stepNames))...)
			}
		}
	}

	return res
}

func validateTypes(res *diagnostic.Diagnostics, mf *File) map[string]struct{} {
	names := map[string]struct{}{}
	ids := map[typeflow.TypeID]string{}

	for _, t := range mf.Types {
		ref, err := ParseTypeRef(t.Name)
		if err != nil || ref.Nullable || ref.Name != t.Name {
			res.AddError(CodeInvalidTypeRef, fmt.Sprintf("invalid type name %q", t.Name), t.Name, "")
			continue
		}

		if _, ok := names[t.Name]; ok {
			res.AddError(CodeDuplicateType, fmt.Sprintf("duplicate type %q", t.Name), t.Name, "")
			continue
		}

		names[t.Name] = struct{}{}

		if _, ok := typeflow.ParseKind(t.Kind); !ok {
			res.AddError(CodeInvalidKind, fmt.Sprintf("invalid kind %q (want reference or value)", t.Kind), t.Name, "")
		}

		id, err := typeID(t)
		if err != nil {
			res.AddError(CodeInvalidTypeRef, err.Error(), t.Name, "")
			continue
		}

		if other, ok := ids[id]; ok {
			res.AddError(CodeDuplicateType,
				fmt.Sprintf("types %q and %q both bind to %s", other, t.Name, id), t.Name, "")

			continue
		}

		ids[id] = t.Name
	}

	return names
}

func validateSteps(res *diagnostic.Diagnostics, mf *File, typeNames map[string]struct{}) map[string]struct{} {
	names := map[string]struct{}{}

	for _, s := range mf.Steps {
		if s.ID == "" {
			res.AddError(CodeUnknownStep, "step without id", "", "")
			continue
		}

		if _, ok := names[s.ID]; ok {
			res.AddError(CodeDuplicateStep, fmt.Sprintf("duplicate step %q", s.ID), s.ID, "")
			continue
		}

		names[s.ID] = struct{}{}

		kind, ok := typeflow.ParseMarkerKind(s.Marker)
		if !ok {
			res.AddError(CodeInvalidMarker,
				fmt.Sprintf("invalid marker %q (want strip or passthrough)", s.Marker), s.ID, "")

			continue
		}

		if kind == typeflow.MarkerNone && len(s.Signatures) == 0 {
			res.AddError(CodeMissingSignatures, fmt.Sprintf("step %q declares no signatures", s.ID), s.ID, "")
			continue
		}

		if kind != typeflow.MarkerNone && len(s.Signatures) > 0 {
			res.AddWarning(CodeInvalidMarker,
				fmt.Sprintf("marker step %q ignores its signatures", s.ID), s.ID, "")
		}

		for _, sig := range s.Signatures {
			validateTypeRef(res, typeNames, sig.Input, s.ID, "")
			validateTypeRef(res, typeNames, sig.OutputOrInput(), s.ID, "")
		}
	}

	return names
}

func validateTypeRef(res *diagnostic.Diagnostics, typeNames map[string]struct{}, raw, owner, chain string) {
	ref, err := ParseTypeRef(raw)
	if err != nil {
		res.AddError(CodeInvalidTypeRef, err.Error(), owner, chain)
		return
	}

	validateTypeName(res, typeNames, ref.Name, owner, chain)
}

func validateTypeName(res *diagnostic.Diagnostics, typeNames map[string]struct{}, name, owner, chain string) {
	if _, ok := typeNames[name]; ok {
		return
	}

	res.AddError(CodeUnknownType, fmt.Sprintf("unknown type %q", name), owner, chain,
		suggestions(name, keys(typeNames))...)
}

func suggestions(name string, candidates []string) []string {
	if s, ok := match.Suggest(name, candidates); ok {
		return []string{s}
	}

	return nil
}
