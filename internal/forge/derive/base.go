package derive

import (
	"go/types"
	"strings"

	"github.com/kinghuynh/messageforge/internal/codefmt"
	"github.com/kinghuynh/messageforge/internal/forge/decl"
	"github.com/kinghuynh/messageforge/internal/typeinfo"
)

// Members of the base record used by the generated code.
const (
	memberContent          = "Content"
	memberExample          = "Example"
	memberMessageType      = "MessageType"
	memberAdditionalKwargs = "AdditionalKwargs"
	memberResponseMetadata = "ResponseMetadata"
	memberID               = "ID"
	memberName             = "Name"
	memberRole             = "Role"
)

var requiredMembers = []string{
	memberContent,
	memberExample,
	memberMessageType,
	memberAdditionalKwargs,
	memberResponseMetadata,
	memberID,
	memberName,
}

// ifaceName is the name of the message interface. It is looked up in the
// package of the base record.
const ifaceName = "BaseMessage"

// Base is the model of a base record type.
type Base struct {
	// Type is the base record type.
	Type types.Type

	// Kind is the type of the MessageType member, the message kind.
	Kind *types.TypeName

	// Iface is the message interface. It is nil if the package of the base
	// record does not declare it.
	Iface *types.TypeName

	members map[string]*types.Var
}

// NewBase resolves the model of a base record type for the message type
// named owner. If needRole is true, the base record must have a Role member
// too, because the message type has no role field.
func NewBase(pkger codefmt.Pkger, poser codefmt.Poser, owner string, typ types.Type, needRole bool) (Base, error) {
	t := typeinfo.TypeOf(typ)
	if !t.IsNamed() || !t.IsStruct() || t.IsGeneric() {
		return Base{}, decl.Shapef(pkger, poser, owner, "base record must be a named struct; got %t", typ)
	}

	required := requiredMembers
	if needRole {
		required = append(required[:len(required):len(required)], memberRole)
	}

	b := Base{Type: typ, members: make(map[string]*types.Var)}
	var missing []string
	for _, name := range required {
		member, ok := t.StructField(name)
		if !ok || member.Embedded() {
			missing = append(missing, name)
			continue
		}
		b.members[name] = member
	}
	if len(missing) != 0 {
		return Base{}, decl.Shapef(pkger, poser, owner, "base record %t is missing members: %s", typ, strings.Join(missing, ", "))
	}

	kind := typeinfo.TypeOf(b.members[memberMessageType].Type())
	if !kind.IsNamed() {
		return Base{}, decl.Shapef(pkger, poser, owner, "MessageType of base record %t must be a named type; got %t", typ, kind.T)
	}
	b.Kind = kind.Obj()
	if !hasStringMethod(b.Kind) {
		return Base{}, decl.Shapef(pkger, poser, owner, "message kind %t must have a String() string method", kind.T)
	}

	if obj, ok := t.Pkg().Scope().Lookup(ifaceName).(*types.TypeName); ok {
		if typeinfo.TypeOf(obj.Type()).IsInterface() {
			b.Iface = obj
		}
	}

	return b, nil
}

// hasStringMethod reports whether values of the kind type, constants
// included, have a String() string method.
func hasStringMethod(kind *types.TypeName) bool {
	obj, _, _ := types.LookupFieldOrMethod(kind.Type(), false, kind.Pkg(), "String")
	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}
	sig := fn.Signature()
	return sig.Params().Len() == 0 && sig.Results().Len() == 1 &&
		types.Identical(sig.Results().At(0).Type(), types.Typ[types.String])
}

// Member returns a member of the base record resolved by [NewBase].
func (b Base) Member(name string) (*types.Var, bool) {
	member, ok := b.members[name]
	return member, ok
}

func (b Base) memberType(name string) types.Type {
	member, ok := b.members[name]
	if !ok {
		panic("base record member not resolved: " + name)
	}
	return member.Type()
}

// KindOf returns the message kind constant of the category, such as
// MessageTypeHuman for the category Human. It is declared next to the kind
// type.
func (b Base) KindOf(category string) (*types.Const, bool) {
	if b.Kind.Pkg() == nil {
		return nil, false
	}
	obj, ok := b.Kind.Pkg().Scope().Lookup(b.Kind.Name() + category).(*types.Const)
	if !ok || !types.Identical(obj.Type(), b.Kind.Type()) {
		return nil, false
	}
	return obj, true
}
