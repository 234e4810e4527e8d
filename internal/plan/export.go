package plan

import (
	"fmt"
	"maps"
	"strings"

	"chainflow/internal/manifest"
	"chainflow/internal/typeflow"
)

// Export returns a copy of mf with every change applied to the matching
// manifest member. Changes for members not declared in mf are returned as
// leftovers, e.g. members discovered from struct tags.
func Export(mf *manifest.File, changes []Change) (*manifest.File, []Change) {
	out := *mf
	out.Members = make([]manifest.MemberDef, len(mf.Members))

	index := make(map[string]int, len(mf.Members))
	for i, m := range mf.Members {
		m.Chains = maps.Clone(m.Chains)
		out.Members[i] = m
		index[m.Name] = i
	}

	var leftovers []Change

	for _, c := range changes {
		i, ok := index[c.Member]
		if !ok {
			leftovers = append(leftovers, c)
			continue
		}

		if _, ok := out.Members[i].Chains[c.GroupKey]; !ok {
			leftovers = append(leftovers, c)
			continue
		}

		out.Members[i].Chains[c.GroupKey] = stepList(c.After)
	}

	return &out, leftovers
}

// ExportYAML applies changes and serializes the result.
func ExportYAML(mf *manifest.File, changes []Change) ([]byte, []Change, error) {
	out, leftovers := Export(mf, changes)

	data, err := manifest.Marshal(out)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal fixed manifest: %w", err)
	}

	return data, leftovers, nil
}

// StepsTag renders the steps struct tag value for a single chain.
func StepsTag(groupKey string, ids []typeflow.StepID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, string(id))
	}

	list := strings.Join(parts, ",")
	if groupKey == "" {
		return list
	}

	return groupKey + "=" + list
}

// String renders a change as "Member (group): A, B => B, A".
func (c Change) String() string {
	name := c.Member
	if c.GroupKey != "" {
		name += " (" + c.GroupKey + ")"
	}

	return fmt.Sprintf("%s: %s => %s", name, joinIDs(c.Before), joinIDs(c.After))
}

func stepList(ids []typeflow.StepID) manifest.StepList {
	out := make(manifest.StepList, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}

	return out
}

func joinIDs(ids []typeflow.StepID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, string(id))
	}

	return strings.Join(parts, ", ")
}
