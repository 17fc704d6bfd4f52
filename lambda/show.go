package lambda

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Show renders t in the syntax accepted by Parse. names[i] is the name of
// the variable with index i. Indices outside names print as "?i".
//
// The function side of an application is parenthesized only when it is an
// abstraction; the argument side when it is an application or an abstraction.
func Show(t Term, names []string) string {
	switch t := t.(type) {
	case Var:
		if 0 <= t && int(t) < len(names) {
			return names[t]
		}
		return "?" + strconv.Itoa(int(t))
	case Free:
		return string(t)
	case Abs:
		names, name := PickFreshName(names, t.Hint)
		return "λ" + name + "." + Show(t.Body, names)
	case App:
		fn := Show(t.Fn, names)
		if _, ok := t.Fn.(Abs); ok {
			fn = "(" + fn + ")"
		}
		arg := Show(t.Arg, names)
		switch t.Arg.(type) {
		case Abs, App:
			arg = "(" + arg + ")"
		}
		return fn + " " + arg
	}
	panic("unreachable")
}

// PickFreshName chooses the display name for a binder with the given hint
// and returns it along with names extended by it.
//
// If another name in scope starts with the same run of letters as hint, the
// result is that run followed by the number of such names, e.g. "a" inside
// ["a1", "a"] becomes "a2".
func PickFreshName(names []string, hint string) ([]string, string) {
	if hint == "" {
		hint = "x"
	}
	prefix := letterPrefix(hint)
	n := len(lo.Filter(names, func(s string, _ int) bool {
		return letterPrefix(s) == prefix
	}))
	if n == 0 {
		return prepend(hint, names), hint
	}
	name := prefix + strconv.Itoa(n)
	for slices.Contains(names, name) {
		n++
		name = prefix + strconv.Itoa(n)
	}
	return prepend(name, names), name
}

func letterPrefix(s string) string {
	if i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) }); i >= 0 {
		return s[:i]
	}
	return s
}
