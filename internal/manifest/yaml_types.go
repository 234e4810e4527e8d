package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for StepList.
// Accepts either a comma-separated string or an array of strings.
func (s *StepList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*s = splitStepList(str)

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected step list or string, got %v", node.Kind)
	}
}

// MarshalYAML always emits a sequence.
func (s StepList) MarshalYAML() (any, error) {
	return []string(s), nil
}

func splitStepList(s string) StepList {
	out := StepList{}

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
