package derive

import (
	"github.com/kinghuynh/messageforge/internal/codefmt"
	"github.com/kinghuynh/messageforge/internal/forge/decl"
)

// receiver is the receiver name of the generated methods.
const receiver = "m"

// accessor is a getter of a base record member.
type accessor struct{ method, member string }

// mutator is a setter of a base record member.
type mutator struct{ method, member, param string }

var accessors = []accessor{
	{"Content", memberContent},
	{"MessageType", memberMessageType},
	{"IsExample", memberExample},
	{"AdditionalKwargs", memberAdditionalKwargs},
	{"ResponseMetadata", memberResponseMetadata},
	{"ID", memberID},
	{"Name", memberName},
}

var mutators = []mutator{
	{"SetContent", memberContent, "content"},
	{"SetExample", memberExample, "example"},
	{"SetID", memberID, "id"},
	{"SetName", memberName, "name"},
}

// roleMethod is the name of the role accessor. It is not a plain accessor
// because it depends on the role shape.
const roleMethod = "Role"

// generatedMethods returns the names of all methods a derivation generates.
func generatedMethods() []string {
	var names []string
	for _, a := range accessors {
		names = append(names, a.method)
	}
	names = append(names, roleMethod)
	for _, m := range mutators {
		names = append(names, m.method)
	}
	return names
}

// writeAccessors writes the getters of the base record members:
//
//	func (m *HumanMessage) Content() string {
//		return m.base.Content
//	}
func writeAccessors(w *codefmt.Writer, d *decl.TypeDecl, base Base) {
	for _, a := range accessors {
		w.Printf("func (%s *%s) %s() %t {\n", receiver, d.Name, a.method, base.memberType(a.member))
		w.Printf("return %s.%s.%s\n", receiver, BaseField, a.member)
		w.Printf("}\n\n")
	}
}

// writeMutators writes the setters of the base record members:
//
//	func (m *HumanMessage) SetContent(content string) {
//		m.base.Content = content
//	}
func writeMutators(w *codefmt.Writer, d *decl.TypeDecl, base Base) {
	for _, m := range mutators {
		w.Printf("func (%s *%s) %s(%s %t) {\n", receiver, d.Name, m.method, m.param, base.memberType(m.member))
		w.Printf("%s.%s.%s = %s\n", receiver, BaseField, m.member, m.param)
		w.Printf("}\n\n")
	}
}
