// Package typeinfo classifies the types met while taking a message
// declaration apart: message structs, base records, message kinds, and their
// members.
package typeinfo

import (
	"go/types"
)

// Type is a [types.Type] with its interesting parts resolved. A named type
// has both Named and the parts of its underlying type.
type Type struct {
	T types.Type

	Named     *types.Named
	Struct    *types.Struct
	Map       *types.Map
	Interface *types.Interface
}

// TypeOf resolves the parts of t. Aliases are resolved first. Types other
// than named types, structs, maps, and interfaces only have T.
func TypeOf(t types.Type) Type {
	info := Type{T: t}

	u := types.Unalias(t)
	if named, ok := u.(*types.Named); ok {
		info.Named = named
		u = named.Underlying()
	}

	switch u := u.(type) {
	case *types.Struct:
		info.Struct = u
	case *types.Map:
		info.Map = u
	case *types.Interface:
		info.Interface = u
	}
	return info
}

func (t Type) String() string { return t.T.String() }

func (t Type) IsNamed() bool     { return t.Named != nil }
func (t Type) IsStruct() bool    { return t.Struct != nil }
func (t Type) IsMap() bool       { return t.Map != nil }
func (t Type) IsInterface() bool { return t.Interface != nil }

// Obj returns the type name of a named type, or nil.
func (t Type) Obj() *types.TypeName {
	if t.Named == nil {
		return nil
	}
	return t.Named.Obj()
}

// Pkg returns the package declaring a named type, or nil.
func (t Type) Pkg() *types.Package {
	if obj := t.Obj(); obj != nil {
		return obj.Pkg()
	}
	return nil
}

// Method returns the method declared on a named type, with either a value or
// a pointer receiver.
func (t Type) Method(name string) (*types.Func, bool) {
	if t.Named == nil {
		return nil, false
	}
	for m := range t.Named.Methods() {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// StructField returns the field of a struct type. Fields of embedded structs
// are not promoted.
func (t Type) StructField(name string) (*types.Var, bool) {
	if t.Struct == nil {
		return nil, false
	}
	for f := range t.Struct.Fields() {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// IsGeneric reports whether the type depends on a type parameter. An
// instance with concrete type arguments, such as Box[int], is not generic.
func (t Type) IsGeneric() bool { return dependsOnTypeParam(t.T) }

func dependsOnTypeParam(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.TypeParam:
		return true
	case *types.Named:
		if t.TypeParams().Len() == 0 {
			return false
		}
		if t.TypeArgs().Len() == 0 {
			// The origin of a generic type, such as Box[T].
			return true
		}
		for arg := range t.TypeArgs().Types() {
			if dependsOnTypeParam(arg) {
				return true
			}
		}
	case *types.Struct:
		for f := range t.Fields() {
			if dependsOnTypeParam(f.Type()) {
				return true
			}
		}
	case *types.Pointer:
		return dependsOnTypeParam(t.Elem())
	case *types.Map:
		return dependsOnTypeParam(t.Key()) || dependsOnTypeParam(t.Elem())
	case *types.Slice:
		return dependsOnTypeParam(t.Elem())
	case *types.Signature:
		return t.TypeParams().Len() != 0
	}
	return false
}
