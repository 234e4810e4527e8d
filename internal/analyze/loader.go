package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Loader loads Go packages and builds a type graph.
type Loader struct {
	// Dir is the working directory for package resolution (empty = current).
	Dir   string
	graph *TypeGraph
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{graph: NewTypeGraph()}
}

// Load loads the specified packages and adds them to the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "chainflow/store").
func (l *Loader) Load(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		l.processPackage(pkg)
	}

	return l.graph, nil
}

// Graph returns the current type graph.
func (l *Loader) Graph() *TypeGraph {
	return l.graph
}

// processPackage extracts exported named types from a loaded package.
func (l *Loader) processPackage(pkg *packages.Package) {
	if _, ok := l.graph.Packages[pkg.PkgPath]; ok {
		return
	}

	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		info := &TypeInfo{
			ID:     idOf(typeName.Type()),
			GoType: typeName.Type(),
		}

		if st, ok := typeName.Type().Underlying().(*types.Struct); ok {
			info.Fields = l.structFields(st)
		}

		l.graph.Types[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	l.graph.Packages[pkg.PkgPath] = pkgInfo
	l.graph.order = append(l.graph.order, pkg.PkgPath)
}

// structFields extracts exported fields and records their types.
func (l *Loader) structFields(st *types.Struct) []FieldInfo {
	var fields []FieldInfo

	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		l.remember(field.Type())

		fields = append(fields, FieldInfo{
			Name:     field.Name(),
			Type:     field.Type(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		})
	}

	return fields
}

// remember records t and, for pointers, its element under their descriptor ids.
func (l *Loader) remember(t types.Type) {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		l.remember(ptr.Elem())
		return
	}

	l.graph.known[idOf(t)] = t
}
