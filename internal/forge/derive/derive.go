// Package derive generates the code of message types: constructors,
// accessors, mutators, and the message interface implementation.
package derive

import (
	"bytes"
	"errors"
	"go/types"
	"io"
	"slices"

	"github.com/kinghuynh/messageforge/internal/codefmt"
	"github.com/kinghuynh/messageforge/internal/forge/decl"
	"github.com/kinghuynh/messageforge/internal/typeinfo"
)

// Derive writes the code of the message declaration d in this order:
// constructors, mutators, and the message interface implementation. If it
// fails, nothing is written.
func Derive(w *codefmt.Writer, d *decl.TypeDecl, base Base) error {
	role := roleShapeOf(d)

	category := Category(d.Name)
	if category == "" {
		return decl.Shapef(w, d, d.Name, "empty category; name the type after its category, such as Human%s", messageSuffix)
	}

	kind, ok := base.KindOf(category)
	if !ok {
		return decl.Shapef(w, d, d.Name, "no message kind %s%s of type %o", base.Kind.Name(), category, base.Kind)
	}

	if _, ok := role.(withoutRole); ok {
		if _, ok := base.Member(memberRole); !ok {
			return decl.Shapef(w, d, d.Name, "base record %t has no Role member for a type without role field", base.Type)
		}
	}

	if err := checkConflicts(w, d, base); err != nil {
		return err
	}

	var buf bytes.Buffer
	bw := w.WithBuf(&buf)
	writeConstructors(bw, d, base, kind, role)
	writeMutators(bw, d, base)
	writeImpl(bw, d, base, role)

	_, _ = io.Copy(w, &buf)
	return nil
}

// checkConflicts checks the names the generated code would redeclare. It
// collects all conflicts instead of stopping at the first one.
func checkConflicts(w *codefmt.Writer, d *decl.TypeDecl, base Base) error {
	f, ok := d.Field(BaseField)
	if !ok {
		return decl.Shapef(w, d, d.Name, "no %s field", BaseField)
	}
	if !types.Identical(f.Type, base.Type) {
		return decl.Shapef(w, f, d.Name, "%s field must be %t; got %t", BaseField, base.Type, f.Type)
	}

	methods := generatedMethods()

	var errs error
	for _, f := range d.Fields() {
		if slices.Contains(methods, f.Name) {
			errs = errors.Join(errs, decl.Shapef(w, f, d.Name, "field %s conflicts with the generated method", f.Name))
		}
	}

	if d.Obj != nil {
		t := typeinfo.TypeOf(d.Obj.Type())
		for _, name := range methods {
			if method, ok := t.Method(name); ok {
				errs = errors.Join(errs, decl.Shapef(w, method, d.Name, "method %s is already declared", name))
			}
		}
	}

	newName, fullName := constructorNames(d.Name)
	for _, name := range []string{newName, fullName} {
		if obj := w.Pkg().Types.Scope().Lookup(name); obj != nil {
			errs = errors.Join(errs, decl.Shapef(w, obj, d.Name, "%s is already declared", name))
		}
	}

	return errs
}
