package codefmt

import (
	"go/token"
)

// CodeError is an error at a position in the user's source code.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

func (e *CodeError) Unwrap() error  { return e.err }
func (e *CodeError) Pos() token.Pos { return e.pos }
func (e *CodeError) End() token.Pos { return e.end }

// Error prepends the position to the message if the position is valid.
func (e *CodeError) Error() string {
	if !e.pos.IsValid() || e.fset == nil {
		return e.err.Error()
	}
	return FormatPosition(e.fset.Position(e.pos)) + ": " + e.err.Error()
}

// Wrap attaches the position of poser to err. If poser is also an [Ender],
// the end position is attached too. errors.As still finds the typed error
// beneath.
func (f Formatter) Wrap(poser Poser, err error) error {
	if err == nil {
		return nil
	}

	e := &CodeError{err: err, fset: f.fset}
	if poser != nil {
		e.pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			e.end = ender.End()
		}
	}
	return e
}
