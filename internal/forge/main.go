package forgeinternal

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"

	"github.com/kinghuynh/messageforge/internal/forge/decl"
	"github.com/kinghuynh/messageforge/internal/forge/parse"
	"github.com/kinghuynh/messageforge/internal/logger"
)

// Version is stamped into the header of generated files when not empty.
var Version string

// loadMode is what [Forge] needs from each loaded package.
const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps |
	packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax

// Main loads the packages matching patterns under wd and generates code for
// each of them. It backs the messageforge command.
//
// env replaces the environment of the go command when not nil. tags are extra
// build tags, comma-separated, in addition to messageforge. tests includes test
// packages. outFile is the base name of the file to generate in each package
// directory.
//
// The result maps output paths, relative to wd, to generated code. Packages
// without messageforge files have no output. Errors of all packages are
// collected and sorted, and then no output is returned at all.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	log := logger.Named("main")
	outs := make(map[string][]byte, len(pkgs))
	var errs []error

	for _, pkg := range pkgs {
		f, err := forgePackage(pkg)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		code := f.Generate()
		if code == nil {
			log.Debugw("no messageforge files", logger.FieldPackage, pkg.PkgPath)
			continue
		}

		out := filepath.Join(relPath(wd, filepath.Dir(pkg.GoFiles[0])), outFile)
		outs[out] = code
		log.Infow("generated", logger.FieldFile, out, logger.FieldCount, len(f.Directives()))
	}

	if len(errs) != 0 {
		// The collected errors carry their own positions and context.
		return nil, reorderErrors(stderrors.Join(errs...))
	}
	return outs, nil
}

func forgePackage(pkg *packages.Package) (*Forge, error) {
	if len(pkg.Errors) != 0 {
		return nil, errors.Newf("pkg %q has errors", pkg.Name)
	}

	f, err := New(pkg)
	if err != nil {
		return nil, err
	}
	if err := f.Build(); err != nil {
		return nil, err
	}
	return f, nil
}

func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	buildTags := parse.BuildTag
	if tags != "" {
		buildTags += "," + tags
	}

	pkgs, err := packages.Load(&packages.Config{
		Mode:       loadMode,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + buildTags},
		Tests:      tests,
	}, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}
	if len(pkgs) == 0 {
		return nil, errors.WithHint(errors.Newf("no packages found: %v", patterns), "check the package patterns and the working directory")
	}

	// Load errors are reported with paths relative to wd, like ours.
	var errs []error
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			if file, lineCol, ok := strings.Cut(pkgErr.Pos, ":"); ok {
				pkgErr.Pos = relPath(wd, file) + ":" + lineCol
			}
			errs = append(errs, &decl.MalformedError{Reason: pkgErr.Error()})
		}
	}
	if len(errs) != 0 {
		return nil, stderrors.Join(errs...)
	}
	return pkgs, nil
}

func relPath(wd, path string) string {
	if rel, err := filepath.Rel(wd, path); err == nil {
		return rel
	}
	return path
}

// reorderErrors flattens joined errors and sorts them by message, so errors
// of one file come out in line order.
func reorderErrors(err error) error {
	if err == nil {
		return nil
	}

	var flat []error
	var walk func(error)
	walk = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				walk(e)
			}
			return
		}
		flat = append(flat, err)
	}
	walk(err)

	slices.SortStableFunc(flat, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return stderrors.Join(flat...)
}
