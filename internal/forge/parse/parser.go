// Package parse finds messageforge directives in a package and resolves them
// into message declarations.
package parse

import (
	"errors"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// ImportPath is the import path of the directive package.
const ImportPath = "github.com/kinghuynh/messageforge"

// BuildTag is the build tag of files containing directives.
const BuildTag = "messageforge"

// IsMessageforgeImport reports whether path imports the directive package,
// possibly through a vendor directory.
func IsMessageforgeImport(path string) bool {
	if _, after, ok := strings.Cut(path, "/vendor/"); ok {
		return IsMessageforgeImport(after)
	}
	return strings.TrimPrefix(path, "vendor/") == ImportPath
}

// Parser reads directives out of a loaded package.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a [Parser] for pkg. The package must be loaded with its syntax
// and type information.
func New(pkg *packages.Package) (*Parser, error) {
	for _, need := range []struct {
		missing bool
		what    string
	}{
		{pkg.Name == "", "name"},
		{pkg.PkgPath == "", "path"},
		{pkg.Types == nil, "types"},
		{pkg.Fset == nil, "fset"},
		{pkg.Syntax == nil, "syntax"},
		{pkg.TypesInfo == nil, "types info"},
	} {
		if need.missing {
			return nil, errors.New("need pkg " + need.what)
		}
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective reports the name of the directive function called by call,
// such as "Derive". It returns false for calls to anything else.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	fn := typeutil.Callee(p.pkg.TypesInfo, call)
	if fn == nil || fn.Pkg() == nil || !IsMessageforgeImport(fn.Pkg().Path()) {
		return "", false
	}
	return fn.Name(), true
}

// IsDirective reports whether call calls the directive function name, or any
// directive function if name is empty.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	got, ok := p.GetDirective(call)
	return ok && (name == "" || got == name)
}

// MessageforgeGoFiles returns the files built only with the messageforge tag.
func (p *Parser) MessageforgeGoFiles() []*ast.File {
	var tagged []*ast.File
	for _, file := range p.pkg.Syntax {
		if hasGoBuildMessageforge(file) {
			tagged = append(tagged, file)
		}
	}
	return tagged
}

// hasGoBuildMessageforge reports whether a "//go:build" line of the file
// mentions the messageforge tag.
func hasGoBuildMessageforge(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}
		for _, c := range group.List {
			expr, err := constraint.Parse(c.Text)
			if err != nil || !constraint.IsGoBuild(c.Text) {
				continue
			}

			mentioned := false
			expr.Eval(func(tag string) bool {
				mentioned = mentioned || tag == BuildTag
				return false
			})
			if mentioned {
				return true
			}
		}
	}
	return false
}

// tailIdent returns the identifier naming a possibly qualified object.
//
//	MessageTypeHuman
//	^^^^^^^^^^^^^^^^
//	chat.MessageTypeHuman
//	     ^^^^^^^^^^^^^^^^
func tailIdent(expr ast.Expr) (*ast.Ident, bool) {
	switch expr := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return expr, true
	case *ast.SelectorExpr:
		return expr.Sel, true
	}
	return nil, false
}

// typeArgExpr returns the first explicit type argument of a generic function
// call.
//
//	messageforge.Derive[HumanMessage]()
//	                    ^^^^^^^^^^^^
func typeArgExpr(call *ast.CallExpr) (ast.Expr, bool) {
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.IndexExpr:
		return fun.Index, true
	case *ast.IndexListExpr:
		return fun.Indices[0], true
	}
	return nil, false
}
