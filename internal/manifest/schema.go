package manifest

// File represents the root of a YAML chain manifest.
type File struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Settings tune the analysis run. CLI flags take precedence.
	Settings Settings `yaml:"settings,omitempty"`

	// Types is the type table referenced by steps and members.
	Types []TypeDef `yaml:"types"`

	// Conversions lists direct implicit conversions between declared types.
	Conversions []ConversionDef `yaml:"conversions,omitempty"`

	// Steps is the step catalog.
	Steps []StepDef `yaml:"steps"`

	// Members are checked in declaration order.
	Members []MemberDef `yaml:"members,omitempty"`
}

// Settings holds run configuration stored alongside the manifest.
type Settings struct {
	// Workers bounds concurrent member resolution (0 = engine default).
	Workers int `yaml:"workers,omitempty"`
	// Memoize caches conversion oracle answers.
	Memoize *bool `yaml:"memoize,omitempty"`
}

// TypeDef declares one type of the table.
type TypeDef struct {
	Name string `yaml:"name"`
	// Kind is "reference" (default) or "value".
	Kind string `yaml:"kind,omitempty"`
	// Go optionally binds the type to a Go type name.
	Go string `yaml:"go,omitempty"`
}

// ConversionDef declares that From implicitly converts to To.
type ConversionDef struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// StepDef declares a step of the catalog.
type StepDef struct {
	ID string `yaml:"id"`
	// Marker is empty for regular steps, "strip" or "passthrough" for markers.
	Marker     string         `yaml:"marker,omitempty"`
	Signatures []SignatureDef `yaml:"signatures,omitempty"`
}

// SignatureDef is one accepted (input, output) pair.
type SignatureDef struct {
	Input string `yaml:"input"`
	// Output defaults to Input.
	Output    string `yaml:"output,omitempty"`
	Transform bool   `yaml:"transform,omitempty"`
}

// OutputOrInput returns Output, or Input when Output is unset.
func (s SignatureDef) OutputOrInput() string {
	if s.Output == "" {
		return s.Input
	}

	return s.Output
}

// MemberDef declares a member and its chains keyed by group.
type MemberDef struct {
	Name   string              `yaml:"name"`
	Type   string              `yaml:"type"`
	Chains map[string]StepList `yaml:"chains"`
}

// StepList is an ordered list of step ids. In YAML it is either a sequence
// or a single comma-separated string.
type StepList []string
