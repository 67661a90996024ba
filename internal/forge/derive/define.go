package derive

import (
	"bytes"
	"go/token"
	"go/types"
	"io"

	"github.com/kinghuynh/messageforge/internal/codefmt"
	"github.com/kinghuynh/messageforge/internal/forge/decl"
)

// Define writes the declaration of the message type of the kind constant and
// then its derivation. The type has only the base field:
//
//	type SystemMessage struct {
//		base BaseMessageFields
//	}
//
// The derivation is the same as [Derive] writes for the declaration. If it
// fails, nothing is written.
func Define(w *codefmt.Writer, base Base, kind *types.Const, pos token.Pos) error {
	if !types.Identical(kind.Type(), base.Kind.Type()) {
		return decl.Malformedf(w, codefmt.Pos(pos), "message kind %o must be %o; got %t", kind, base.Kind, kind.Type())
	}

	name, ok := DefinedName(base.Kind.Name(), kind.Name())
	if !ok {
		return decl.Malformedf(w, codefmt.Pos(pos), "message kind %o must be named %s followed by a category", kind, base.Kind.Name())
	}

	d := decl.New(name, pos)
	d.Add(decl.NewField(BaseField, base.Type, pos))

	var buf bytes.Buffer
	bw := w.WithBuf(&buf)
	bw.Printf("type %s struct {\n", name)
	bw.Printf("%s %t\n", BaseField, base.Type)
	bw.Printf("}\n\n")

	if err := Derive(bw, d, base); err != nil {
		return err
	}

	_, _ = io.Copy(w, &buf)
	return nil
}
