// Package decl holds the intermediate representation of message type
// declarations. A [TypeDecl] is what the derivation works on, regardless of
// whether the type is declared in source or synthesized by a definition.
package decl

import (
	"go/token"
	"go/types"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Field is a named field of a message declaration. Its type is opaque. It is
// printed verbatim into the generated code.
type Field struct {
	Name string
	Type types.Type
	pos  token.Pos
}

// NewField creates a new [Field].
func NewField(name string, typ types.Type, pos token.Pos) Field {
	return Field{Name: name, Type: typ, pos: pos}
}

// Pos returns where the field is declared. It may be invalid for synthesized
// fields.
func (f Field) Pos() token.Pos { return f.pos }

// TypeDecl is a message type declaration: a name and an ordered set of named
// fields.
type TypeDecl struct {
	Name string

	// Obj is the declared type name. It is nil if the declaration is
	// synthesized.
	Obj *types.TypeName

	pos    token.Pos
	fields *linkedhashmap.Map // string -> Field in declaration order
}

// New creates an empty [TypeDecl].
func New(name string, pos token.Pos) *TypeDecl {
	return &TypeDecl{Name: name, pos: pos, fields: linkedhashmap.New()}
}

// Pos returns where the type is declared or synthesized.
func (d *TypeDecl) Pos() token.Pos { return d.pos }

// Add appends a field. It returns false if a field with the same name already
// exists.
func (d *TypeDecl) Add(f Field) bool {
	if _, ok := d.fields.Get(f.Name); ok {
		return false
	}
	d.fields.Put(f.Name, f)
	return true
}

// Field returns the field with the given name.
func (d *TypeDecl) Field(name string) (Field, bool) {
	f, ok := d.fields.Get(name)
	if !ok {
		return Field{}, false
	}
	return f.(Field), true
}

// Fields returns all fields in declaration order.
func (d *TypeDecl) Fields() []Field {
	fields := make([]Field, 0, d.fields.Size())
	it := d.fields.Iterator()
	for it.Next() {
		fields = append(fields, it.Value().(Field))
	}
	return fields
}

// Len returns the number of fields.
func (d *TypeDecl) Len() int { return d.fields.Size() }
