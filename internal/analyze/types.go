package analyze

import (
	"go/types"
	"reflect"

	"chainflow/internal/typeflow"
)

// StepsTag is the struct tag key that declares chains on a field.
const StepsTag = "steps"

// TypeInfo describes a named type of a loaded package.
type TypeInfo struct {
	ID     typeflow.TypeID
	GoType types.Type  // the named go/types.Type
	Fields []FieldInfo // exported fields, structs only
}

// IsStruct returns true if the type has a struct underlying type.
func (t *TypeInfo) IsStruct() bool {
	_, ok := t.GoType.Underlying().(*types.Struct)
	return ok
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Type     types.Type        // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported named types.
	Types map[typeflow.TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo

	// order lists package paths in load order.
	order []string
	// known holds every type seen in a field, keyed by its descriptor id.
	known map[typeflow.TypeID]types.Type
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[typeflow.TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
		known:    make(map[typeflow.TypeID]types.Type),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id typeflow.TypeID) *TypeInfo {
	return g.Types[id]
}

// Lookup returns the go/types type behind a descriptor id. Predeclared types
// are always known.
func (g *TypeGraph) Lookup(id typeflow.TypeID) (types.Type, bool) {
	if info, ok := g.Types[id]; ok {
		return info.GoType, true
	}

	if t, ok := g.known[id]; ok {
		return t, true
	}

	if id.PkgPath == "" {
		if obj, ok := types.Universe.Lookup(id.Name).(*types.TypeName); ok {
			return types.Unalias(obj.Type()), true
		}
	}

	return nil, false
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string            // Import path
	Name  string            // Package name
	Types []typeflow.TypeID // Exported named types, sorted by name
}
