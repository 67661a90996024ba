// Package forgeanalysis reports misuses of messageforge directives through the
// Go analysis protocol, so linters such as golangci-lint can surface them
// without running the generator.
package forgeanalysis

import (
	"errors"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/kinghuynh/messageforge/internal/codefmt"
	forgeinternal "github.com/kinghuynh/messageforge/internal/forge"
)

// Analyzer reports every error the generator would fail with on the package.
var Analyzer = &analysis.Analyzer{
	Name: "messageforge",
	Doc:  "check messageforge directives and the message types they derive",
	URL:  "https://pkg.go.dev/github.com/kinghuynh/messageforge/pkg/forgeanalysis",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	f, err := forgeinternal.New(&packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	})
	if err != nil {
		return nil, err
	}

	for _, d := range Diagnostics(f.Build()) {
		pass.Report(d)
	}
	return nil, nil
}

// Diagnostics converts the errors joined in err into diagnostics. Errors
// without a source range are dropped.
func Diagnostics(err error) []analysis.Diagnostic {
	var diags []analysis.Diagnostic
	var visit func(error)
	visit = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, err := range joined.Unwrap() {
				visit(err)
			}
			return
		}

		var codeErr *codefmt.CodeError
		if errors.As(err, &codeErr) && codeErr.Pos().IsValid() {
			diags = append(diags, analysis.Diagnostic{
				Pos:     codeErr.Pos(),
				End:     codeErr.End(), // NoPos when unknown
				Message: codeErr.Unwrap().Error(),
			})
		}
	}
	if err != nil {
		visit(err)
	}
	return diags
}
