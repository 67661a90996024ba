package codefmt

import (
	"go/token"
	"go/types"
	"iter"
	"maps"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS is a set of names taken in a scope of the generated code.
type NS map[string]struct{}

// NewNS returns a namespace holding every name declared in scope.
func NewNS(scope *types.Scope) NS {
	ns := make(NS)
	for _, name := range scope.Names() {
		ns.Reserve(name)
	}
	return ns
}

// Reserve takes name. It returns false if name was already taken.
func (ns NS) Reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Clone returns a copy of ns, so names taken in a nested scope do not leak
// into ns.
func (ns NS) Clone() NS {
	if ns == nil {
		return make(NS)
	}
	return maps.Clone(ns)
}

// Name takes a free name derived from name and returns it. A taken name gets a
// numbering suffix: content, content2, content3, and so on. Keywords are
// returned as is. A nil namespace takes nothing.
//
// Panics if name is empty.
func (ns NS) Name(name string) string {
	name = NormalizeName(name)
	if ns == nil || token.IsKeyword(name) {
		return name
	}
	for name := range alternatives(name) {
		if ns.Reserve(name) {
			return name
		}
	}
	panic("unreachable")
}

// NormalizeName turns name into an identifier. Runs of characters that cannot
// appear in an identifier separate words, and words after the first are
// title-cased: "tool-call id" becomes "toolCallId".
func NormalizeName(name string) string {
	if name == "" {
		panic("empty name")
	}

	words := strings.FieldsFunc(name, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return "_"
	}
	title := cases.Title(language.English)
	for i := 1; i < len(words); i++ {
		words[i] = title.String(words[i])
	}
	return strings.Join(words, "")
}

// alternatives yields name and then numbered variants of it. A name ending
// with a digit is separated from the number by "_", so "answer42" continues
// with "answer42_2".
func alternatives(name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}

		sep := ""
		if last := name[len(name)-1]; '0' <= last && last <= '9' {
			sep = "_"
		}
		for i := 2; ; i++ {
			if !yield(name + sep + strconv.Itoa(i)) {
				return
			}
		}
	}
}
