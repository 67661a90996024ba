package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/kinghuynh/messageforge/internal/forge/decl"
	"github.com/kinghuynh/messageforge/internal/forge/derive"
)

// Directive is a parsed directive. It is either [*Derivation] or
// [*Definition].
type Directive interface {
	Pos() token.Pos
	Call() *ast.CallExpr
	isDirective()
}

// Derivation is parsed from messageforge.Derive[T]().
type Derivation struct {
	Decl *decl.TypeDecl
	Base derive.Base
	call *ast.CallExpr
}

// Definition is parsed from messageforge.Define[B](kind).
type Definition struct {
	// Name is the name of the type to declare.
	Name string

	Kind *types.Const
	Base derive.Base
	call *ast.CallExpr
}

func (d *Derivation) Pos() token.Pos      { return d.call.Pos() }
func (d *Derivation) Call() *ast.CallExpr { return d.call }
func (*Derivation) isDirective()          {}

func (d *Definition) Pos() token.Pos      { return d.call.Pos() }
func (d *Definition) Call() *ast.CallExpr { return d.call }
func (*Definition) isDirective()          {}

// ParseDirectives parses all directives assigned to the blank identifier at
// package level in messageforge-tagged files, in source order. It collects all
// errors instead of stopping at the first error.
func (p *Parser) ParseDirectives() ([]Directive, error) {
	var dirs []Directive
	var errs error

	// type name -> position of the directive declaring or deriving it
	seen := make(map[string]token.Pos)
	claim := func(name string, call *ast.CallExpr) error {
		if prev, ok := seen[name]; ok {
			return decl.Malformedf(p, call, "%s is already derived at %b", name, prev)
		}
		seen[name] = call.Pos()
		return nil
	}

	for call := range p.directiveCalls() {
		name, _ := p.GetDirective(call)

		var dir Directive
		var err error
		switch name {
		case "Derive":
			var der *Derivation
			der, err = p.parseDerive(call)
			if err == nil {
				err = claim(der.Decl.Name, call)
				dir = der
			}
		case "Define":
			var def *Definition
			def, err = p.parseDefine(call)
			if err == nil {
				err = claim(def.Name, call)
				dir = def
			}
		default:
			err = decl.Malformedf(p, call, "unknown directive messageforge.%s", name)
		}

		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		dirs = append(dirs, dir)
	}

	return dirs, errs
}

// parseDerive parses messageforge.Derive[T]().
func (p *Parser) parseDerive(call *ast.CallExpr) (*Derivation, error) {
	arg, ok := typeArgExpr(call)
	if !ok {
		return nil, decl.Malformedf(p, call, "messageforge.Derive needs a type argument") // unreachable
	}

	typ := p.Pkg().TypesInfo.TypeOf(arg)
	named, ok := types.Unalias(typ).(*types.Named)
	if !ok {
		return nil, decl.Malformedf(p, arg, "cannot derive %c; need a type declared in this package", arg)
	}

	obj := named.Obj()
	if obj.Pkg() != p.Pkg().Types {
		return nil, decl.Malformedf(p, arg, "cannot derive %c; need a type declared in this package", arg)
	}

	d, err := decl.Of(p.Pkg(), obj)
	if err != nil {
		return nil, err
	}

	f, ok := d.Field(derive.BaseField)
	if !ok {
		return nil, decl.Shapef(p, obj, d.Name, "no %s field", derive.BaseField)
	}

	base, err := derive.NewBase(p, f, d.Name, f.Type, !derive.HasRoleField(obj))
	if err != nil {
		return nil, err
	}

	return &Derivation{Decl: d, Base: base, call: call}, nil
}

// parseDefine parses messageforge.Define[B](kind).
func (p *Parser) parseDefine(call *ast.CallExpr) (*Definition, error) {
	arg, ok := typeArgExpr(call)
	if !ok || len(call.Args) != 1 {
		return nil, decl.Malformedf(p, call, "messageforge.Define needs a base record type and a message kind") // unreachable
	}

	kind, err := p.parseKind(call.Args[0])
	if err != nil {
		return nil, err
	}

	kindType, ok := types.Unalias(kind.Type()).(*types.Named)
	if !ok {
		return nil, decl.Malformedf(p, call.Args[0], "message kind %c must have a named type", call.Args[0])
	}

	name, ok := derive.DefinedName(kindType.Obj().Name(), kind.Name())
	if !ok {
		return nil, decl.Malformedf(p, call.Args[0], "message kind %s must be named %s followed by a category", kind.Name(), kindType.Obj().Name())
	}
	if obj := p.Pkg().Types.Scope().Lookup(name); obj != nil {
		return nil, decl.Malformedf(p, call, "cannot define %s; already declared at %b", name, obj)
	}

	base, err := derive.NewBase(p, arg, name, p.Pkg().TypesInfo.TypeOf(arg), true)
	if err != nil {
		return nil, err
	}
	if !types.Identical(base.Kind.Type(), kindType) {
		return nil, decl.Malformedf(p, call.Args[0], "message kind %c must be %o; got %o", call.Args[0], base.Kind, kindType.Obj())
	}

	return &Definition{Name: name, Kind: kind, Base: base, call: call}, nil
}

// parseKind parses a message kind constant, optionally qualified by its
// package name.
func (p *Parser) parseKind(expr ast.Expr) (*types.Const, error) {
	id, ok := tailIdent(expr)
	if !ok {
		return nil, decl.Malformedf(p, expr, "message kind must be a constant; got %c", expr)
	}

	kind, ok := p.Pkg().TypesInfo.ObjectOf(id).(*types.Const)
	if !ok {
		return nil, decl.Malformedf(p, expr, "message kind must be a constant; got %c", expr)
	}
	return kind, nil
}
