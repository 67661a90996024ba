package codefmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"
)

// arg wraps a printf argument which has a code form.
type arg struct {
	x any
	f Formatter
}

func (f Formatter) wrapArgs(args []any) []any {
	wrapped := make([]any, len(args))
	for i, x := range args {
		switch x.(type) {
		case token.Pos, types.Object, types.Type, ast.Expr:
			wrapped[i] = arg{x, f}
		default:
			wrapped[i] = x
		}
	}
	return wrapped
}

// Format implements [fmt.Formatter]. The verbs are:
//
//	%o: types.Object, such as chat.MessageTypeHuman
//	%t: types.Type, or the type of an object or an expression
//	%c: ast.Expr as it is written
//	%b: token.Pos, or the declaration of an object, as file:line:column
//
// Other verbs format the argument as fmt does.
func (a arg) Format(s fmt.State, verb rune) {
	var out string
	var ok bool
	switch verb {
	case 'o':
		var obj types.Object
		if obj, ok = a.object(); ok {
			out = a.f.Obj(obj)
		}
	case 't':
		var typ types.Type
		if typ, ok = a.typ(); ok {
			out = a.f.Type(typ)
		}
	case 'c':
		var expr ast.Expr
		if expr, ok = a.x.(ast.Expr); ok {
			out = a.f.Expr(expr)
		}
	case 'b':
		var pos token.Pos
		if pos, ok = a.pos(); ok {
			out = a.f.Pos(pos)
		}
	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.x)
		return
	}

	if !ok {
		fmt.Fprintf(s, "%%!%c(%T)", verb, a.x)
		return
	}
	_, _ = io.WriteString(s, out)
}

func (a arg) object() (types.Object, bool) {
	switch x := a.x.(type) {
	case types.Object:
		return x, true
	case types.Type:
		if named, ok := types.Unalias(x).(*types.Named); ok {
			return named.Obj(), true
		}
	}
	return nil, false
}

func (a arg) typ() (types.Type, bool) {
	switch x := a.x.(type) {
	case types.Type:
		return x, true
	case types.Object:
		return x.Type(), true
	case ast.Expr:
		if a.f.info != nil {
			if typ := a.f.info.TypeOf(x); typ != nil {
				return typ, true
			}
		}
	}
	return nil, false
}

func (a arg) pos() (token.Pos, bool) {
	switch x := a.x.(type) {
	case token.Pos:
		return x, true
	case types.Object:
		return x.Pos(), true
	case ast.Expr:
		return x.Pos(), true
	}
	return token.NoPos, false
}

// Sprintf formats like [fmt.Sprintf] with the code verbs of [arg.Format].
func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.wrapArgs(args)...)
}

// Fprintf formats like [fmt.Fprintf] with the code verbs of [arg.Format].
func (f Formatter) Fprintf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, f.wrapArgs(args)...)
}
