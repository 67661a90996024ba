package derive

import (
	"go/types"

	"github.com/kinghuynh/messageforge/internal/forge/decl"
	"github.com/kinghuynh/messageforge/internal/typeinfo"
)

const (
	// BaseField is the name of the field holding the base record.
	BaseField = "base"

	// RoleField is the name of the optional field holding the role.
	RoleField = "role"
)

// HasRoleField reports whether the declared type has a field named exactly
// "role". It returns false for anything other than a struct type.
func HasRoleField(obj types.Object) bool {
	if obj == nil {
		return false
	}
	_, ok := typeinfo.TypeOf(obj.Type()).StructField(RoleField)
	return ok
}

// roleShape tells how a message type provides its role. It is either
// [withRole] or [withoutRole].
type roleShape interface{ isRoleShape() }

// withRole is the shape of a message type storing its role in the role field.
type withRole struct{ field decl.Field }

// withoutRole is the shape of a message type deriving its role from the
// stored message kind.
type withoutRole struct{}

func (withRole) isRoleShape()    {}
func (withoutRole) isRoleShape() {}

func roleShapeOf(d *decl.TypeDecl) roleShape {
	if f, ok := d.Field(RoleField); ok {
		return withRole{f}
	}
	return withoutRole{}
}
