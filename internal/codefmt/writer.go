package codefmt

import (
	"cmp"
	"go/ast"
	"go/token"
	"go/types"
	"io"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer writes generated code for a package. Packages of the objects and
// types it formats are collected as imports of the generated file.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports *importSet
	ns      NS
}

// NewWriter creates a [Writer] without a namespace. Use [Writer.WithNS] to
// attach one.
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	imports := &importSet{
		scope:  pkg.Types.Scope(),
		byName: make(map[string]Import),
		byPath: make(map[string]string),
	}
	f := NewFormatter(pkg)
	f.names = imports.byPath
	return &Writer{w: w, pkg: pkg, fmt: f, imports: imports}
}

func (w *Writer) Write(p []byte) (int, error) { return w.w.Write(p) }

// Printf writes formatted code. See [arg.Format] for the code verbs.
func (w *Writer) Printf(format string, args ...any) {
	w.importArgs(args)
	w.fmt.Fprintf(w.w, format, args...)
}

// Sprintf formats code like [Writer.Printf] without writing it. Imports are
// still collected.
func (w *Writer) Sprintf(format string, args ...any) string {
	w.importArgs(args)
	return w.fmt.Sprintf(format, args...)
}

// NS returns the namespace of the writer. It may be nil.
func (w *Writer) NS() NS { return w.ns }

// Pkg returns the package the code is generated for.
func (w *Writer) Pkg() *packages.Package { return w.pkg }

// WithBuf returns a writer to buf sharing the imports and the namespace.
func (w *Writer) WithBuf(buf io.Writer) *Writer {
	c := *w
	c.w = buf
	return &c
}

// WithNS returns a writer with ns sharing the imports and the output.
func (w *Writer) WithNS(ns NS) *Writer {
	c := *w
	c.ns = ns
	return &c
}

func (w *Writer) importArgs(args []any) {
	for _, x := range args {
		switch x := x.(type) {
		case types.Object:
			w.importObj(x)
		case types.Type:
			w.importType(x)
		}
	}
}

func (w *Writer) importType(typ types.Type) {
	switch typ := types.Unalias(typ).(type) {
	case *types.Pointer:
		w.importType(typ.Elem())
	case *types.Slice:
		w.importType(typ.Elem())
	case *types.Array:
		w.importType(typ.Elem())
	case *types.Chan:
		w.importType(typ.Elem())
	case *types.Map:
		w.importType(typ.Key())
		w.importType(typ.Elem())
	case *types.Named:
		w.importObj(typ.Obj())
		for arg := range typ.TypeArgs().Types() {
			w.importType(arg)
		}
	}
}

func (w *Writer) importObj(obj types.Object) {
	if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() == w.pkg.PkgPath {
		return
	}
	w.imports.add(obj.Pkg().Path(), obj.Pkg().Name(), obj.Pkg().Name())
}

// Import is a package imported by the generated file.
type Import struct {
	// Name refers to the package in the generated file.
	Name string
	Path string

	// HasAlias is true if Name differs from the package name, so the import
	// spec needs it.
	HasAlias bool
}

// Imports returns the collected imports ordered by name.
func (w *Writer) Imports() []Import {
	imports := make([]Import, 0, len(w.imports.byName))
	for _, imp := range w.imports.byName {
		imports = append(imports, imp)
	}
	slices.SortFunc(imports, func(a, b Import) int { return cmp.Compare(a.Name, b.Name) })
	return imports
}

// Import records an import of the package at path, preferably named name, and
// returns the name to refer to it. A name taken by another import or a
// package-level declaration is numbered.
func (w *Writer) Import(path, name string) string {
	pkgName := name
	for _, imp := range w.pkg.Types.Imports() {
		if imp.Path() == path {
			pkgName = imp.Name()
			break
		}
	}
	if name == "" {
		name = pkgName
	}
	return w.imports.add(path, name, pkgName)
}

type importSet struct {
	scope  *types.Scope
	byName map[string]Import
	byPath map[string]string
}

func (s *importSet) add(path, name, pkgName string) string {
	if prev, ok := s.byPath[path]; ok {
		return prev
	}
	for name := range alternatives(name) {
		if _, ok := s.byName[name]; ok || s.scope.Lookup(name) != nil {
			continue
		}
		s.byName[name] = Import{Name: name, Path: path, HasAlias: name != pkgName}
		s.byPath[path] = name
		return name
	}
	panic("unreachable")
}

// RewriteImports rewrites package qualifiers in node to the names collected
// by w. Identifiers of dot-imported packages get a qualifier.
func RewriteImports[T ast.Node](w *Writer, node T) T {
	info := w.pkg.TypesInfo
	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		switch node := c.Node().(type) {
		case *ast.SelectorExpr:
			x, ok := node.X.(*ast.Ident)
			if !ok {
				return true
			}
			pkgName, ok := info.ObjectOf(x).(*types.PkgName)
			if !ok {
				return true
			}

			imported := pkgName.Imported()
			c.Replace(qualified(x.NamePos, w.Import(imported.Path(), imported.Name()), node.Sel))
			return false

		case *ast.Ident:
			obj := info.ObjectOf(node)
			if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() == w.pkg.PkgPath || obj.Parent() != obj.Pkg().Scope() {
				return true
			}

			c.Replace(qualified(node.NamePos, w.Import(obj.Pkg().Path(), obj.Pkg().Name()), node))
			return false
		}
		return true
	}, nil).(T)
}

func qualified(pos token.Pos, pkgName string, sel *ast.Ident) *ast.SelectorExpr {
	return &ast.SelectorExpr{
		X:   &ast.Ident{NamePos: pos, Name: pkgName},
		Sel: &ast.Ident{NamePos: sel.NamePos, Name: sel.Name, Obj: sel.Obj},
	}
}
