package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"iter"
	"strings"

	"github.com/kinghuynh/messageforge/internal/forge/decl"
)

// Validate checks for usages outside expected places. It collects all errors
// instead of stopping at the first error.
//
// Directives are erased when merging messageforge-tagged files into the
// generated file. So they must be placed where the erasure leaves no
// reference to the messageforge package.
func (p *Parser) Validate() error {
	var errs error
	allowed := make(map[token.Pos]struct{})
	for call := range p.directiveCalls() {
		allowed[call.Pos()] = struct{}{}
	}

	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validatePlacements(file, allowed))
	}
	return errs
}

// validateConstraint checks if files importing "github.com/kinghuynh/messageforge"
// have "//go:build messageforge" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	var imp *ast.ImportSpec
	for _, spec := range file.Imports {
		if IsMessageforgeImport(strings.Trim(spec.Path.Value, `"`)) {
			imp = spec
			break
		}
	}
	if imp == nil {
		return nil
	}

	if hasGoBuildMessageforge(file) {
		return nil
	}

	return decl.Malformedf(p, imp, `file must have "//go:build messageforge" constraint when importing messageforge`)
}

// validatePlacements checks that every directive in the file is one of the
// allowed directive calls.
func (p *Parser) validatePlacements(file *ast.File, allowed map[token.Pos]struct{}) error {
	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}

		name, ok := p.GetDirective(call)
		if !ok {
			return true
		}

		if _, ok := allowed[call.Pos()]; ok {
			// Nested directives are not allowed even in an allowed directive.
			return true
		}

		err := decl.Malformedf(p, call, "messageforge.%s must be assigned to the blank identifier at package level", name)
		errs = errors.Join(errs, err)
		return true
	})
	return errs
}

// directiveCalls yields directive calls assigned to the blank identifier in
// package-level var declarations of messageforge-tagged files:
//
//	var _ = messageforge.Derive[HumanMessage]()
//
//	var (
//		_ = messageforge.Derive[AIMessage]()
//		_ = messageforge.Define[BaseMessageFields](MessageTypeSystem)
//	)
func (p *Parser) directiveCalls() iter.Seq[*ast.CallExpr] {
	return func(yield func(*ast.CallExpr) bool) {
		for _, file := range p.MessageforgeGoFiles() {
			for _, d := range file.Decls {
				gen, ok := d.(*ast.GenDecl)
				if !ok || gen.Tok != token.VAR {
					continue
				}

				for _, spec := range gen.Specs {
					spec := spec.(*ast.ValueSpec)
					if len(spec.Names) != len(spec.Values) {
						continue
					}

					for i, name := range spec.Names {
						if name.Name != "_" {
							continue
						}

						call, ok := ast.Unparen(spec.Values[i]).(*ast.CallExpr)
						if !ok || !p.IsDirective(call, "") {
							continue
						}

						if !yield(call) {
							return
						}
					}
				}
			}
		}
	}
}
