// Package codefmt renders types, objects, expressions, and positions as Go
// source text relative to the package receiving the generated file. Objects of
// other packages are qualified by their package names, and the [Writer]
// collects those packages to import them.
package codefmt

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger interface{ Pkg() *packages.Package }
	Poser interface{ Pos() token.Pos }
	Ender interface{ End() token.Pos }
)

// Formatter renders code fragments for a package.
type Formatter struct {
	pkgPath string
	fset    *token.FileSet
	info    *types.Info

	// names maps import paths to the names of their imports. Packages not in
	// names are referred to by their own names.
	names map[string]string
}

// NewFormatter returns a [Formatter] for pkg. A nil pkg qualifies every object
// and cannot resolve positions.
func NewFormatter(pkg *packages.Package) Formatter {
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{pkgPath: pkg.PkgPath, fset: pkg.Fset, info: pkg.TypesInfo}
}

func formatterOf(pkger Pkger) Formatter {
	if pkger == nil {
		return Formatter{}
	}
	return NewFormatter(pkger.Pkg())
}

func (f Formatter) qualifier(pkg *types.Package) string {
	if pkg.Path() == f.pkgPath {
		return ""
	}
	if name, ok := f.names[pkg.Path()]; ok {
		return name
	}
	return pkg.Name()
}

// Type renders a type, such as "map[string]chat.Value".
func (f Formatter) Type(typ types.Type) string {
	return types.TypeString(typ, f.qualifier)
}

// Obj renders a reference to a package-level object, such as
// "chat.MessageTypeHuman".
func (f Formatter) Obj(obj types.Object) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}
	if q := f.qualifier(obj.Pkg()); q != "" {
		return q + "." + obj.Name()
	}
	return obj.Name()
}

// Expr renders an expression as it is written in the source.
func (f Formatter) Expr(expr ast.Expr) string {
	var b strings.Builder
	if err := format.Node(&b, f.fset, expr); err != nil {
		panic(err) // go/printer supports every ast.Expr
	}
	return b.String()
}

// Pos renders a position as "file:line:column".
func (f Formatter) Pos(pos token.Pos) string {
	if f.fset == nil {
		return FormatPosition(token.Position{})
	}
	return FormatPosition(f.fset.Position(pos))
}

var wd, _ = os.Getwd()

// FormatPosition renders a position as "file:line:column" with the file
// relative to the working directory. An invalid position is "-:-".
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}
	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}

// Sprintf is a shorthand for [Formatter.Sprintf].
func Sprintf(pkger Pkger, format string, args ...any) string {
	return formatterOf(pkger).Sprintf(format, args...)
}

// FormatPos is a shorthand for [Formatter.Pos].
func FormatPos(pkger Pkger, pos token.Pos) string {
	return formatterOf(pkger).Pos(pos)
}

// Wrap is a shorthand for [Formatter.Wrap].
func Wrap(pkger Pkger, poser Poser, err error) error {
	return formatterOf(pkger).Wrap(poser, err)
}

type pkger struct{ pkg *packages.Package }

func (p pkger) Pkg() *packages.Package { return p.pkg }

// Pkg adapts a package to [Pkger].
func Pkg(pkg *packages.Package) Pkger { return pkger{pkg} }

type poser struct{ pos token.Pos }

func (p poser) Pos() token.Pos { return p.pos }

// Pos adapts a position to [Poser].
func Pos(pos token.Pos) Poser { return poser{pos} }
