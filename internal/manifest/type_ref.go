package manifest

import (
	"fmt"
	"strings"
	"unicode"

	"chainflow/internal/typeflow"
)

// TypeRef is a parsed reference to a manifest type.
type TypeRef struct {
	Name     string
	Nullable bool
}

// String renders the reference in manifest syntax.
func (r TypeRef) String() string {
	if r.Nullable {
		return r.Name + "?"
	}

	return r.Name
}

// ParseTypeRef parses "Name" or "Name?".
func ParseTypeRef(s string) (TypeRef, error) {
	s = strings.TrimSpace(s)

	ref := TypeRef{Name: s}
	if strings.HasSuffix(s, "?") {
		ref.Name = strings.TrimSuffix(s, "?")
		ref.Nullable = true
	}

	if ref.Name == "" {
		return TypeRef{}, fmt.Errorf("empty type reference %q", s)
	}

	if strings.ContainsFunc(ref.Name, func(r rune) bool { return unicode.IsSpace(r) || r == '?' }) {
		return TypeRef{}, fmt.Errorf("malformed type reference %q", s)
	}

	return ref, nil
}

// ParseGoName parses a Go type binding such as "string", "time.Time" or
// "chainflow/store.Email" into a TypeID. Unnamed types such as
// "[]chainflow/store.OrderItem" are kept whole, as go/types prints them.
func ParseGoName(s string) (typeflow.TypeID, error) {
	if s == "" {
		return typeflow.TypeID{}, fmt.Errorf("empty go type name")
	}

	if strings.ContainsAny(s, "[]*(){} ") {
		return typeflow.TypeID{Name: s}, nil
	}

	lastSlash := strings.LastIndex(s, "/")

	lastDot := strings.LastIndex(s, ".")
	if lastDot < 0 || lastDot < lastSlash {
		if lastSlash >= 0 {
			return typeflow.TypeID{}, fmt.Errorf("go type %q has a package path but no type name", s)
		}

		return typeflow.TypeID{Name: s}, nil
	}

	pkg, name := s[:lastDot], s[lastDot+1:]
	if pkg == "" || name == "" {
		return typeflow.TypeID{}, fmt.Errorf("malformed go type %q", s)
	}

	return typeflow.TypeID{PkgPath: pkg, Name: name}, nil
}
