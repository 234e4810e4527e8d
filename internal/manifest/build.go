package manifest

import (
	"fmt"
	"sort"

	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

// Catalog is the built form of a manifest: resolved types, the step catalog,
// members and the conversion table.
type Catalog struct {
	types     map[string]typeDecl
	steps     map[typeflow.StepID]typeflow.StepSpec
	stepOrder []typeflow.StepID
	members   []typeflow.Member
	table     *match.Table
}

type typeDecl struct {
	id   typeflow.TypeID
	kind typeflow.Kind
}

// Build validates the manifest and converts it to a Catalog. Validation
// errors are returned as a single error; warnings are ignored.
func Build(mf *File) (*Catalog, error) {
	if diags := Validate(mf); diags.HasErrors() {
		return nil, fmt.Errorf("invalid manifest: %w", diags.Error())
	}

	cat := &Catalog{
		types: make(map[string]typeDecl, len(mf.Types)),
		steps: make(map[typeflow.StepID]typeflow.StepSpec, len(mf.Steps)),
	}

	for _, t := range mf.Types {
		kind, _ := typeflow.ParseKind(t.Kind)

		id, err := typeID(t)
		if err != nil {
			return nil, err
		}

		cat.types[t.Name] = typeDecl{id: id, kind: kind}
	}

	convs := make([]match.Conversion, 0, len(mf.Conversions))
	for _, c := range mf.Conversions {
		convs = append(convs, match.Conversion{
			From: cat.types[c.From].id,
			To:   cat.types[c.To].id,
		})
	}

	cat.table = match.NewTable(convs...)

	for _, s := range mf.Steps {
		spec, err := cat.buildStep(s)
		if err != nil {
			return nil, err
		}

		cat.steps[spec.ID] = spec
		cat.stepOrder = append(cat.stepOrder, spec.ID)
	}

	for _, m := range mf.Members {
		member, err := cat.buildMember(m)
		if err != nil {
			return nil, err
		}

		cat.members = append(cat.members, member)
	}

	return cat, nil
}

func (c *Catalog) buildStep(s StepDef) (typeflow.StepSpec, error) {
	marker, _ := typeflow.ParseMarkerKind(s.Marker)

	spec := typeflow.StepSpec{ID: typeflow.StepID(s.ID), Marker: marker}
	if marker != typeflow.MarkerNone {
		return spec, nil
	}

	for _, sig := range s.Signatures {
		in, err := c.Describe(sig.Input)
		if err != nil {
			return spec, fmt.Errorf("step %s: %w", s.ID, err)
		}

		out, err := c.Describe(sig.OutputOrInput())
		if err != nil {
			return spec, fmt.Errorf("step %s: %w", s.ID, err)
		}

		spec.Signatures = append(spec.Signatures, typeflow.Signature{
			Input:      in,
			Output:     out,
			Transforms: sig.Transform,
		})
	}

	return spec, nil
}

func (c *Catalog) buildMember(m MemberDef) (typeflow.Member, error) {
	t, err := c.Describe(m.Type)
	if err != nil {
		return typeflow.Member{}, fmt.Errorf("member %s: %w", m.Name, err)
	}

	member := typeflow.Member{Name: m.Name, Type: t}

	for _, key := range keys(m.Chains) {
		steps, err := c.Steps(m.Chains[key])
		if err != nil {
			return typeflow.Member{}, fmt.Errorf("member %s: %w", m.Name, err)
		}

		member.Chains = append(member.Chains, typeflow.Chain{GroupKey: key, Steps: steps})
	}

	return member, nil
}

// Describe resolves a manifest type reference to a descriptor.
func (c *Catalog) Describe(raw string) (typeflow.TypeDescriptor, error) {
	ref, err := ParseTypeRef(raw)
	if err != nil {
		return typeflow.TypeDescriptor{}, err
	}

	decl, ok := c.types[ref.Name]
	if !ok {
		return typeflow.TypeDescriptor{}, fmt.Errorf("unknown type %q", ref.Name)
	}

	switch {
	case !ref.Nullable && decl.kind == typeflow.KindValue:
		return typeflow.Val(decl.id), nil
	case !ref.Nullable:
		return typeflow.Ref(decl.id), nil
	case decl.kind == typeflow.KindValue:
		return typeflow.OptionalOf(decl.id), nil
	default:
		return typeflow.NullableRef(decl.id), nil
	}
}

// Step looks up a step by id.
func (c *Catalog) Step(id string) (typeflow.StepSpec, bool) {
	s, ok := c.steps[typeflow.StepID(id)]
	return s, ok
}

// Steps resolves a list of step ids in order.
func (c *Catalog) Steps(ids []string) ([]typeflow.StepSpec, error) {
	out := make([]typeflow.StepSpec, 0, len(ids))

	for _, id := range ids {
		s, ok := c.Step(id)
		if !ok {
			return nil, fmt.Errorf("unknown step %q", id)
		}

		out = append(out, s)
	}

	return out, nil
}

// StepNames lists step ids in declaration order.
func (c *Catalog) StepNames() []string {
	names := make([]string, 0, len(c.stepOrder))
	for _, id := range c.stepOrder {
		names = append(names, string(id))
	}

	return names
}

// StripMarker returns the first declared strip marker, the step used to fix
// nullability mismatches.
func (c *Catalog) StripMarker() (typeflow.StepSpec, bool) {
	for _, id := range c.stepOrder {
		if s := c.steps[id]; s.Marker == typeflow.MarkerStrip {
			return s, true
		}
	}

	return typeflow.StepSpec{}, false
}

// Members returns the declared members in manifest order.
func (c *Catalog) Members() []typeflow.Member {
	return c.members
}

// Conversions returns the declared conversion table.
func (c *Catalog) Conversions() *match.Table {
	return c.table
}

func typeID(t TypeDef) (typeflow.TypeID, error) {
	if t.Go == "" {
		return typeflow.Named(t.Name), nil
	}

	id, err := ParseGoName(t.Go)
	if err != nil {
		return typeflow.TypeID{}, fmt.Errorf("type %s: %w", t.Name, err)
	}

	return id, nil
}

// keys returns the map keys sorted. For chain groups this puts the default
// group "" first, since it sorts before every named group.
func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}
