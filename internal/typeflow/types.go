package typeflow

import (
	"chainflow/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "chainflow/store"
	Name    string // e.g., "Email"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short renders the TypeID with the package alias instead of the full path.
func (t TypeID) Short() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// Kind tells whether values of a type are references or plain values.
type Kind int

const (
	KindReference Kind = iota // nullability is an annotation on the same type
	KindValue                 // nullability requires an optional wrapper
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindReference:
		return "reference"
	case KindValue:
		return "value"
	default:
		return common.UnknownStr
	}
}

// ParseKind parses the textual form produced by Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "reference", "ref":
		return KindReference, true
	case "value", "val":
		return KindValue, true
	default:
		return KindReference, false
	}
}

// TypeDescriptor describes a type flowing through a chain.
//
// A wrapped optional (Optional) always carries Nullable as well, so two
// descriptors of the same value type differ in identity when one of them is
// wrapped.
type TypeDescriptor struct {
	ID       TypeID
	Kind     Kind
	Nullable bool
	Optional bool
}

// Ref returns a non-nullable reference type.
func Ref(id TypeID) TypeDescriptor {
	return TypeDescriptor{ID: id, Kind: KindReference}
}

// NullableRef returns a nullable-annotated reference type.
func NullableRef(id TypeID) TypeDescriptor {
	return TypeDescriptor{ID: id, Kind: KindReference, Nullable: true}
}

// Val returns a plain value type.
func Val(id TypeID) TypeDescriptor {
	return TypeDescriptor{ID: id, Kind: KindValue}
}

// OptionalOf returns the wrapped optional form of a value type.
func OptionalOf(id TypeID) TypeDescriptor {
	return TypeDescriptor{ID: id, Kind: KindValue, Nullable: true, Optional: true}
}

// Named is a shorthand for a TypeID without package path.
func Named(name string) TypeID {
	return TypeID{Name: name}
}

// Identical reports whether both descriptors share identity and nullability.
func (t TypeDescriptor) Identical(other TypeDescriptor) bool {
	return t.ID == other.ID && t.Nullable == other.Nullable
}

// IsReference reports whether the type is reference-like.
func (t TypeDescriptor) IsReference() bool {
	return t.Kind == KindReference
}

// NonNull strips nullability: optional value types are unwrapped and
// reference types lose their nullable annotation.
func (t TypeDescriptor) NonNull() TypeDescriptor {
	t.Nullable = false
	t.Optional = false

	return t
}

// Underlying returns the wrapped type of an optional. For any other type it
// returns t unchanged.
func (t TypeDescriptor) Underlying() TypeDescriptor {
	if !t.Optional {
		return t
	}

	return t.NonNull()
}

// String renders the descriptor as "Name" or "Name?".
func (t TypeDescriptor) String() string {
	return t.render(t.ID.String())
}

// Short is String with the package alias instead of the full path.
func (t TypeDescriptor) Short() string {
	return t.render(t.ID.Short())
}

func (t TypeDescriptor) render(name string) string {
	if t.Nullable {
		return name + "?"
	}

	return name
}
