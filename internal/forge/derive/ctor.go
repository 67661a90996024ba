package derive

import (
	"go/types"
	"strings"

	"github.com/kinghuynh/messageforge/internal/codefmt"
	"github.com/kinghuynh/messageforge/internal/forge/decl"
	"github.com/kinghuynh/messageforge/internal/typeinfo"
)

// Parameters the constructors always take.
const (
	paramContent = "content"
	paramExample = "example"
)

func constructorNames(name string) (string, string) {
	return "New" + name, "New" + name + "WithExample"
}

// writeConstructors writes the convenience constructor and the full
// constructor of d:
//
//	func NewHumanMessage(content string, role string) *HumanMessage {
//		return NewHumanMessageWithExample(content, false, role)
//	}
//
//	func NewHumanMessageWithExample(content string, example bool, role string) *HumanMessage {
//		return &HumanMessage{
//			base: BaseMessageFields{...},
//			role: role,
//		}
//	}
func writeConstructors(w *codefmt.Writer, d *decl.TypeDecl, base Base, kind *types.Const, role roleShape) {
	// Format everything the bodies refer to first. It collects imports, so
	// parameters can avoid shadowing their names.
	baseType := w.Sprintf("%t", base.Type)
	kindRef := w.Sprintf("%o", kind)
	kwargs := emptyValue(w, base.memberType(memberAdditionalKwargs))
	metadata := emptyValue(w, base.memberType(memberResponseMetadata))

	ns := localNS(w, paramContent, paramExample)
	params, inits := decl.Args(d, ns, BaseField)

	var paramDecls, paramNames strings.Builder
	for _, p := range params {
		paramDecls.WriteString(w.Sprintf(", %s %t", p.Name, p.Type))
		paramNames.WriteString(", " + p.Name)
	}

	newName, fullName := constructorNames(d.Name)
	contentType := base.memberType(memberContent)
	exampleType := base.memberType(memberExample)

	w.Printf("func %s(%s %t%s) *%s {\n", newName, paramContent, contentType, paramDecls.String(), d.Name)
	w.Printf("return %s(%s, false%s)\n", fullName, paramContent, paramNames.String())
	w.Printf("}\n\n")

	w.Printf("func %s(%s %t, %s %t%s) *%s {\n", fullName, paramContent, contentType, paramExample, exampleType, paramDecls.String(), d.Name)
	w.Printf("return &%s{\n", d.Name)
	w.Printf("%s: %s{\n", BaseField, baseType)
	w.Printf("%s: %s,\n", memberContent, paramContent)
	w.Printf("%s: %s,\n", memberExample, paramExample)
	w.Printf("%s: %s,\n", memberMessageType, kindRef)
	if kwargs != "" {
		w.Printf("%s: %s,\n", memberAdditionalKwargs, kwargs)
	}
	if metadata != "" {
		w.Printf("%s: %s,\n", memberResponseMetadata, metadata)
	}
	if _, ok := role.(withoutRole); ok {
		w.Printf("%s: %s.String(),\n", memberRole, kindRef)
	}
	w.Printf("},\n")
	for _, init := range inits {
		w.Printf("%s: %s,\n", init.Field, init.Value)
	}
	w.Printf("}\n")
	w.Printf("}\n\n")
}

// emptyValue returns an expression of an empty map of the given type. It
// returns an empty string if the type is not a map, then the member is left
// as the zero value.
func emptyValue(w *codefmt.Writer, typ types.Type) string {
	if !typeinfo.TypeOf(typ).IsMap() {
		return ""
	}
	return w.Sprintf("%t{}", typ)
}

// localNS returns a namespace for the parameters of a generated function. It
// reserves the names of w, the predeclared identifiers, the imports collected
// so far, and the given names.
func localNS(w *codefmt.Writer, reserved ...string) codefmt.NS {
	ns := w.NS().Clone()
	for _, name := range types.Universe.Names() {
		ns.Reserve(name)
	}
	for _, imp := range w.Imports() {
		ns.Reserve(imp.Name)
	}
	for _, name := range reserved {
		ns.Reserve(name)
	}
	return ns
}
