package derive

import (
	"github.com/kinghuynh/messageforge/internal/codefmt"
	"github.com/kinghuynh/messageforge/internal/forge/decl"
)

// writeImpl writes the message interface implementation of d: the accessors,
// the role accessor, and an assertion that d implements the message interface
// if the package of the base record declares one.
func writeImpl(w *codefmt.Writer, d *decl.TypeDecl, base Base, role roleShape) {
	writeAccessors(w, d, base)

	switch role := role.(type) {
	case withRole:
		w.Printf("func (%s *%s) %s() %t {\n", receiver, d.Name, roleMethod, role.field.Type)
		w.Printf("return %s.%s\n", receiver, role.field.Name)
		w.Printf("}\n\n")
	case withoutRole:
		w.Printf("func (%s *%s) %s() string {\n", receiver, d.Name, roleMethod)
		w.Printf("return %s.%s.%s.String()\n", receiver, BaseField, memberMessageType)
		w.Printf("}\n\n")
	}

	if base.Iface != nil {
		w.Printf("var _ %o = (*%s)(nil)\n\n", base.Iface, d.Name)
	}
}
