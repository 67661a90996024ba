// Package forgeinternal generates message type code for packages. It is the
// engine behind the messageforge command and the analyzer.
package forgeinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/kinghuynh/messageforge/internal/codefmt"
	"github.com/kinghuynh/messageforge/internal/forge/derive"
	"github.com/kinghuynh/messageforge/internal/forge/parse"
	"github.com/kinghuynh/messageforge/internal/logger"
)

// Forge generates message type code for the target package. Call [Build] and
// then [Generate] to get the generated code. All potential errors are returned
// by [Build]. Once [Build] succeeds, [Generate] never fails.
type Forge struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer
	log *zap.SugaredLogger

	dirs []parse.Directive
	code [][]byte
}

// New creates a new [Forge] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Forge, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	ns := codefmt.NewNS(pkg.Types.Scope())
	return &Forge{
		p:   parser,
		ns:  ns,
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg).WithNS(ns),
		log: logger.Named("forge").With(logger.FieldPackage, pkg.PkgPath),
	}, nil
}

// Directives returns the directives parsed by [Build].
func (f *Forge) Directives() []parse.Directive { return f.dirs }

// Build prepares code generation by parsing directives and deriving message
// types. All potential errors are returned by this method. It must be called
// before [Generate].
func (f *Forge) Build() error {
	errs := f.p.Validate()

	dirs, err := f.p.ParseDirectives()
	errs = errors.Join(errs, err)
	if errs != nil {
		return errs
	}
	f.dirs = dirs
	if len(dirs) == 0 {
		return nil
	}

	// Reserve the names to declare against parameter names.
	for _, dir := range dirs {
		name := typeName(dir)
		f.ns.Reserve(name)
		f.ns.Reserve("New" + name)
		f.ns.Reserve("New" + name + "WithExample")
	}

	for _, dir := range dirs {
		var buf bytes.Buffer
		w := f.w.WithBuf(&buf)

		switch dir := dir.(type) {
		case *parse.Derivation:
			err = derive.Derive(w, dir.Decl, dir.Base)
		case *parse.Definition:
			err = derive.Define(w, dir.Base, dir.Kind, dir.Pos())
		}
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		f.log.Debugw("derived", logger.FieldType, typeName(dir), logger.FieldDirective, codefmt.FormatPos(f.p, dir.Pos()))
		f.code = append(f.code, buf.Bytes())
	}

	return errs
}

func typeName(dir parse.Directive) string {
	switch dir := dir.(type) {
	case *parse.Derivation:
		return dir.Decl.Name
	case *parse.Definition:
		return dir.Name
	}
	panic(fmt.Sprintf("unknown directive %T", dir))
}

// Generate generates message type code for the package. It must be called
// after [Build] succeeds. It returns nil if the package has no
// messageforge-tagged files.
func (f *Forge) Generate() []byte {
	if len(f.p.MessageforgeGoFiles()) == 0 {
		return nil
	}

	f.writeDerivedCode()
	f.mergeCode()
	return f.frameCode()
}

// writeDerivedCode writes the derived code of all directives in source order.
func (f *Forge) writeDerivedCode() {
	if len(f.code) == 0 {
		return
	}

	f.w.Printf("// messageforge: derived message types\n\n")
	for _, code := range f.code {
		_, _ = f.w.Write(code)
	}
}

// mergeCode appends the declarations of messageforge files to the generated
// code, since the generated file replaces them in normal builds. Directives
// and import declarations are left out.
func (f *Forge) mergeCode() {
	fset := f.p.Pkg().Fset
	for _, file := range f.p.MessageforgeGoFiles() {
		var decls []ast.Decl
		for _, d := range file.Decls {
			if gen, ok := d.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
				// Imports are recollected from usage by RewriteImports.
				continue
			}
			if d = f.eraseDirectives(d); d != nil {
				decls = append(decls, d)
			}
		}
		if len(decls) == 0 {
			continue
		}

		fmt.Fprintf(f.buf, "// %s:\n\n", filepath.Base(fset.File(file.Pos()).Name()))
		for _, d := range decls {
			d = codefmt.RewriteImports(f.w, d)
			_ = printer.Fprint(f.buf, fset, &printer.CommentedNode{Node: d, Comments: file.Comments})
			fmt.Fprintf(f.buf, "\n\n")
		}
	}
}

// eraseDirectives removes directive values from the value specs of d. It
// returns nil if nothing remains of d.
//
//	var _ = messageforge.Derive[HumanMessage]()                // erased
//	var _, answer = messageforge.Derive[HumanMessage](), 42    // var answer = 42
func (f *Forge) eraseDirectives(d ast.Decl) ast.Decl {
	d = astutil.Apply(d, func(c *astutil.Cursor) bool {
		spec, ok := c.Node().(*ast.ValueSpec)
		if !ok {
			return true
		}

		kept := &ast.ValueSpec{Doc: spec.Doc, Type: spec.Type, Comment: spec.Comment}
		for i, name := range spec.Names {
			if i < len(spec.Values) {
				if call, ok := ast.Unparen(spec.Values[i]).(*ast.CallExpr); ok && f.p.IsDirective(call, "") {
					continue
				}
				kept.Values = append(kept.Values, spec.Values[i])
			}
			kept.Names = append(kept.Names, name)
		}

		switch len(kept.Names) {
		case 0:
			c.Delete()
		case len(spec.Names):
		default:
			c.Replace(kept)
		}
		return false
	}, nil).(ast.Decl)

	if gen, ok := d.(*ast.GenDecl); ok && len(gen.Specs) == 0 {
		return nil
	}
	return d
}

func (f *Forge) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !%s\n\n", parse.BuildTag)
	fmt.Fprintf(&buf, "// Code generated by %s%s. DO NOT EDIT.\n\n", parse.ImportPath, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", f.p.Pkg().Name)

	if len(f.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, imp := range f.w.Imports() {
			if parse.IsMessageforgeImport(imp.Path) {
				f.log.Warnw("messageforge import remains in generated code", logger.FieldImport, imp.Name)
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", imp.Name, imp.Path)
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path)
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, f.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	} else {
		f.log.Debugw("generated code is not gofmt-able", logger.FieldError, err)
	}
	return code
}

var reVersionStamp = regexp.MustCompile(`(?m)^(// Code generated by ` + regexp.QuoteMeta(parse.ImportPath) + `)@\S+?(\. DO NOT EDIT\.)$`)

// SameCode reports whether two generated files are equal except for the
// version in their headers.
func SameCode(a, b []byte) bool {
	unstamp := func(code []byte) []byte { return reVersionStamp.ReplaceAll(code, []byte("$1$2")) }
	return bytes.Equal(unstamp(a), unstamp(b))
}
