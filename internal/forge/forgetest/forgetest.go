// Package forgetest type-checks in-memory sources into packages for tests.
package forgetest

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// DirectivesPath is the import path of the directive package.
const DirectivesPath = "github.com/kinghuynh/messageforge"

const directivesSrc = `package messageforge

type derivation *struct{}

func Derive[T any]() derivation { panic("messageforge: not generated") }

func Define[B any, K comparable](kind K) derivation { panic("messageforge: not generated") }
`

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }

// Load parses and type-checks a package from the given sources. Each source is
// a separate file named after the last element of the package path in order,
// such as "app_0.go", "app_1.go". The directive
// package and deps can be imported from the sources. All deps must share the
// file set of the first dep, so pass them in dependency order.
func Load(t testing.TB, pkgPath string, srcs []string, deps ...*packages.Package) *packages.Package {
	t.Helper()

	pkg, err := load(pkgPath, srcs, deps...)
	require.NoError(t, err)
	return pkg
}

// LoadErr is like [Load] but returns the type-checking error instead of
// failing the test.
func LoadErr(pkgPath string, srcs []string, deps ...*packages.Package) (*packages.Package, error) {
	return load(pkgPath, srcs, deps...)
}

func load(pkgPath string, srcs []string, deps ...*packages.Package) (*packages.Package, error) {
	fset := token.NewFileSet()
	if len(deps) != 0 {
		fset = deps[0].Fset
	}

	imports := make(map[string]*types.Package)
	for _, dep := range deps {
		imports[dep.PkgPath] = dep.Types
	}
	if _, ok := imports[DirectivesPath]; !ok {
		file, err := parser.ParseFile(fset, "messageforge.go", directivesSrc, 0)
		if err != nil {
			return nil, err
		}
		directives, err := (&types.Config{}).Check(DirectivesPath, fset, []*ast.File{file}, nil)
		if err != nil {
			return nil, err
		}
		imports[DirectivesPath] = directives
	}

	var files []*ast.File
	for i, src := range srcs {
		file, err := parser.ParseFile(fset, fmt.Sprintf("%s_%d.go", path.Base(pkgPath), i), src, parser.ParseComments)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Instances:  make(map[*ast.Ident]types.Instance),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}
	conf := &types.Config{
		Importer: importerFunc(func(path string) (*types.Package, error) {
			if pkg, ok := imports[path]; ok {
				return pkg, nil
			}
			return nil, fmt.Errorf("package %q not found", path)
		}),
	}
	typesPkg, err := conf.Check(pkgPath, fset, files, info)
	if err != nil {
		return nil, err
	}

	return &packages.Package{
		ID:        pkgPath,
		Name:      typesPkg.Name(),
		PkgPath:   pkgPath,
		Fset:      fset,
		Syntax:    files,
		Types:     typesPkg,
		TypesInfo: info,
	}, nil
}

// Chat is a package declaring a base record, message kinds, and the message
// interface, as a typical application does.
const Chat = `package chat

type MessageType string

const (
	MessageTypeHuman     MessageType = "human"
	MessageTypeAI        MessageType = "ai"
	MessageTypeSystem    MessageType = "system"
	MessageTypeTool      MessageType = "tool"
	MessageTypeChat      MessageType = "chat"
	MessageTypeFooBarBaz MessageType = "foobarbaz"
)

func (t MessageType) String() string { return string(t) }

type BaseMessageFields struct {
	Content          string
	Example          bool
	MessageType      MessageType
	AdditionalKwargs map[string]string
	ResponseMetadata map[string]string
	ID               *string
	Name             *string
	Role             string
}

type BaseMessage interface {
	Content() string
	MessageType() MessageType
	IsExample() bool
	AdditionalKwargs() map[string]string
	ResponseMetadata() map[string]string
	ID() *string
	Name() *string
	Role() string
}
`
