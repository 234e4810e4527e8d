package analyze

import (
	"fmt"
	"sort"
	"strings"

	"chainflow/internal/diagnostic"
	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

// CodeInvalidStepsTag reports a malformed steps tag.
const CodeInvalidStepsTag = "invalid_steps_tag"

// StepCatalog resolves step ids found in tags.
type StepCatalog interface {
	Step(id string) (typeflow.StepSpec, bool)
	StepNames() []string
}

// Members collects every exported struct field carrying a steps tag, in
// package load order, then type name, then field order. Chains naming unknown
// steps are dropped and reported; the member keeps its remaining chains.
func (g *TypeGraph) Members(catalog StepCatalog) ([]typeflow.Member, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	var members []typeflow.Member

	for _, path := range g.order {
		for _, id := range g.Packages[path].Types {
			info := g.Types[id]

			for i := range info.Fields {
				field := &info.Fields[i]
				if !field.HasTag(StepsTag) {
					continue
				}

				m, ok := g.member(info, field, catalog, diags)
				if ok {
					members = append(members, m)
				}
			}
		}
	}

	return members, diags
}

func (g *TypeGraph) member(info *TypeInfo, field *FieldInfo, catalog StepCatalog, diags *diagnostic.Diagnostics) (typeflow.Member, bool) {
	name := info.ID.Name + "." + field.Name

	groups, err := ParseStepsTag(field.GetTag(StepsTag))
	if err != nil {
		diags.AddError(CodeInvalidStepsTag, err.Error(), name, "")
		return typeflow.Member{}, false
	}

	m := typeflow.Member{Name: name, Type: Describe(field.Type)}

	for _, key := range sortedGroups(groups) {
		steps, ok := resolveSteps(groups[key], catalog, name, key, diags)
		if ok {
			m.Chains = append(m.Chains, typeflow.Chain{GroupKey: key, Steps: steps})
		}
	}

	return m, len(m.Chains) > 0
}

func resolveSteps(ids []string, catalog StepCatalog, member, group string, diags *diagnostic.Diagnostics) ([]typeflow.StepSpec, bool) {
	steps := make([]typeflow.StepSpec, 0, len(ids))
	ok := true

	for _, id := range ids {
		step, found := catalog.Step(id)
		if !found {
			var suggestions []string
			if s, hit := match.Suggest(id, catalog.StepNames()); hit {
				suggestions = append(suggestions, s)
			}

			diags.AddError("unknown_step", fmt.Sprintf("unknown step %q", id), member, group, suggestions...)
			ok = false

			continue
		}

		steps = append(steps, step)
	}

	return steps, ok
}

// ParseStepsTag parses "A,B;group=C,D" into step ids keyed by group. The
// segment without "=" is the default group "".
func ParseStepsTag(tag string) (map[string][]string, error) {
	groups := map[string][]string{}

	for _, segment := range strings.Split(tag, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		key, list := "", segment
		if k, v, found := strings.Cut(segment, "="); found {
			key, list = strings.TrimSpace(k), v

			if key == "" {
				return nil, fmt.Errorf("empty group name in %q", segment)
			}
		}

		if _, dup := groups[key]; dup {
			return nil, fmt.Errorf("group %q declared twice", key)
		}

		var ids []string

		for _, id := range strings.Split(list, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}

		if len(ids) == 0 {
			return nil, fmt.Errorf("group %q has no steps", key)
		}

		groups[key] = ids
	}

	if len(groups) == 0 {
		return nil, fmt.Errorf("empty steps tag")
	}

	return groups, nil
}

func sortedGroups(groups map[string][]string) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
