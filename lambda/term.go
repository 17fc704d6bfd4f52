// Package lambda implements the untyped lambda calculus over de Bruijn
// indices: a parser, a printer, capture-avoiding substitution and a
// single-step reducer suitable for driving a visualization one step at a time.
package lambda

import (
	"strconv"
)

// Term is a lambda term. The set of implementations is closed: Var, Free,
// Abs and App.
type Term interface {
	isTerm()
	DeBruijnString() string
}

// Var is a bound variable, identified by its de Bruijn index.
type Var int

// Free is a variable with no enclosing binder. It is an opaque constant.
type Free string

// Abs is an abstraction. Hint is only a suggestion for printing the bound name.
type Abs struct {
	Hint string
	Body Term
}

// App applies Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

func (Var) isTerm()  {}
func (Free) isTerm() {}
func (Abs) isTerm()  {}
func (App) isTerm()  {}

func (v Var) DeBruijnString() string {
	return strconv.Itoa(int(v))
}

func (f Free) DeBruijnString() string {
	return string(f)
}

func (a Abs) DeBruijnString() string {
	return "(λ." + a.Body.DeBruijnString() + ")"
}

func (a App) DeBruijnString() string {
	return "(" + a.Fn.DeBruijnString() + " " + a.Arg.DeBruijnString() + ")"
}

// Equal reports whether a and b are the same term. Binder hints are ignored.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		return ok && a == b
	case Free:
		b, ok := b.(Free)
		return ok && a == b
	case Abs:
		b, ok := b.(Abs)
		return ok && Equal(a.Body, b.Body)
	case App:
		b, ok := b.(App)
		return ok && Equal(a.Fn, b.Fn) && Equal(a.Arg, b.Arg)
	case nil:
		return b == nil
	}
	panic("unreachable")
}

// Size returns the number of nodes in t.
func Size(t Term) int {
	switch t := t.(type) {
	case Var, Free:
		return 1
	case Abs:
		return 1 + Size(t.Body)
	case App:
		return 1 + Size(t.Fn) + Size(t.Arg)
	}
	panic("unreachable")
}
