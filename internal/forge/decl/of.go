package decl

import (
	"go/token"
	"go/types"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"golang.org/x/tools/go/packages"

	"github.com/kinghuynh/messageforge/internal/codefmt"
	"github.com/kinghuynh/messageforge/internal/typeinfo"
)

// Of lists the fields of the declared type. The type must be a non-generic
// struct with at least one field, and every field must be named. Otherwise,
// it returns a [ShapeError].
func Of(pkg *packages.Package, obj *types.TypeName) (*TypeDecl, error) {
	p := codefmt.Pkg(pkg)
	name := obj.Name()

	t := typeinfo.TypeOf(obj.Type())
	if t.IsGeneric() {
		return nil, Shapef(p, obj, name, "generic type is not supported")
	}
	if !t.IsStruct() {
		return nil, Shapef(p, obj, name, "%o is not a struct", obj)
	}
	if t.Struct.NumFields() == 0 {
		return nil, Shapef(p, obj, name, "struct has no fields")
	}

	d := New(name, obj.Pos())
	d.Obj = obj

	for field := range t.Struct.Fields() {
		if field.Embedded() {
			return nil, Shapef(p, field, name, "embedded field %s is not supported", field.Name())
		}
		if field.Name() == "_" {
			return nil, Shapef(p, field, name, "blank field is not supported")
		}
		d.Add(NewField(field.Name(), field.Type(), field.Pos()))
	}

	return d, nil
}

// Param is a constructor parameter made from a field.
type Param struct {
	Name  string
	Type  types.Type
	Field Field
}

func (p Param) Pos() token.Pos { return p.Field.Pos() }

// Init is a member of the composite literal in a constructor. It assigns a
// parameter to a field.
type Init struct {
	Field string
	Value string
}

// Args makes constructor parameters and initializers from the fields of d,
// skipping the excluded field names. Both keep the declaration order.
// Parameter names are claimed in ns, so they never conflict with the names
// already reserved in it.
func Args(d *TypeDecl, ns codefmt.NS, excluded ...string) ([]Param, []Init) {
	skip := linkedhashset.New()
	for _, name := range excluded {
		skip.Add(name)
	}

	var params []Param
	var inits []Init
	for _, f := range d.Fields() {
		if skip.Contains(f.Name) {
			continue
		}

		name := ns.Name(f.Name)
		params = append(params, Param{Name: name, Type: f.Type, Field: f})
		inits = append(inits, Init{Field: f.Name, Value: name})
	}
	return params, inits
}
