package analyze

import (
	"go/types"

	"chainflow/internal/typeflow"
)

// Describe converts a Go type to the descriptor that flows through a chain.
//
//   - *T with T a struct: nullable reference
//   - *T with T a value type: wrapped optional
//   - *T with T a reference type: nullable reference
//   - structs, basics and arrays: value
//   - slices, maps, interfaces, channels and funcs: reference
func Describe(t types.Type) typeflow.TypeDescriptor {
	t = types.Unalias(t)

	ptr, ok := t.(*types.Pointer)
	if !ok {
		if isValue(t) {
			return typeflow.Val(idOf(t))
		}

		return typeflow.Ref(idOf(t))
	}

	elem := types.Unalias(ptr.Elem())

	switch {
	case isStruct(elem):
		return typeflow.NullableRef(idOf(elem))
	case isValue(elem):
		return typeflow.OptionalOf(idOf(elem))
	default:
		return typeflow.NullableRef(idOf(elem))
	}
}

func isStruct(t types.Type) bool {
	_, ok := t.Underlying().(*types.Struct)
	return ok
}

func isValue(t types.Type) bool {
	switch t.Underlying().(type) {
	case *types.Basic, *types.Struct, *types.Array:
		return true
	default:
		return false
	}
}

// idOf returns the identity of a type. Named types keep their package path
// and name; everything else is identified by its type string.
func idOf(t types.Type) typeflow.TypeID {
	t = types.Unalias(t)

	switch tt := t.(type) {
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			return typeflow.TypeID{Name: obj.Name()}
		}

		return typeflow.TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
	case *types.Basic:
		return typeflow.TypeID{Name: tt.Name()}
	default:
		return typeflow.TypeID{Name: types.TypeString(t, nil)}
	}
}
