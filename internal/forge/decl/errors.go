package decl

import (
	"github.com/kinghuynh/messageforge/internal/codefmt"
)

// ShapeError reports a message declaration which cannot be derived, such as a
// struct with embedded fields or a base record without required members.
type ShapeError struct {
	Name   string
	Reason string
}

func (e *ShapeError) Error() string {
	return "cannot derive " + e.Name + ": " + e.Reason
}

// MalformedError reports a directive which cannot be resolved to a message
// declaration, or a package which cannot be analyzed at all.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string { return e.Reason }

// Shapef returns a [ShapeError] for the named declaration at the position of
// poser. The reason is formatted by [codefmt.Sprintf].
func Shapef(pkger codefmt.Pkger, poser codefmt.Poser, name, format string, args ...any) error {
	reason := codefmt.Sprintf(pkger, format, args...)
	return codefmt.Wrap(pkger, poser, &ShapeError{Name: name, Reason: reason})
}

// Malformedf returns a [MalformedError] at the position of poser.
func Malformedf(pkger codefmt.Pkger, poser codefmt.Poser, format string, args ...any) error {
	reason := codefmt.Sprintf(pkger, format, args...)
	return codefmt.Wrap(pkger, poser, &MalformedError{Reason: reason})
}
