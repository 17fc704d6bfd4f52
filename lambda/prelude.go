package lambda

import "fmt"

// A Def names a term written in source syntax.
type Def struct {
	Name   string
	Source string
}

// Prelude is a library of standard combinators, booleans, pairs and Church
// numerals. A definition may refer to the ones before it.
var Prelude = []Def{
	{"I", `λx.x`},
	{"K", `λx.λy.x`},
	{"KI", `K I`},
	{"S", `λx.λy.λz.x z (y z)`},
	{"B", `λf.λg.λx.f (g x)`},
	{"C", `λf.λx.λy.f y x`},
	{"M", `λf.f f`},
	{"Y", `λf.(λx.f (x x)) (λx.f (x x))`},

	{"T", `λx.λy.x`},
	{"F", `λx.λy.y`},
	{"and", `λp.λq.p q p`},
	{"or", `λp.λq.p p q`},
	{"not", `λp.p F T`},

	{"pair", `λa.λb.λf.f a b`},
	{"fst", `λp.p T`},
	{"snd", `λp.p F`},

	{"zero", `λf.λx.x`},
	{"succ", `λn.λf.λx.f (n f x)`},
	{"plus", `λm.λn.λf.λx.m f (n f x)`},
	{"mult", `λm.λn.λf.m (n f)`},
	{"one", `succ zero`},
	{"two", `succ one`},
	{"three", `succ two`},
}

// Definitions parses defs in order, expanding each against the ones before it.
func Definitions(defs []Def) (map[string]Term, error) {
	m := make(map[string]Term, len(defs))
	for _, d := range defs {
		t, rest, err := ParsePrefix(d.Source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		if rest != "" {
			return nil, fmt.Errorf("%s: unexpected %q after term", d.Name, rest)
		}
		m[d.Name] = Expand(t, m)
	}
	return m, nil
}

// Expand replaces the free names in t that have a definition in defs.
// Definitions must not contain unbound indices.
func Expand(t Term, defs map[string]Term) Term {
	switch t := t.(type) {
	case Var:
		return t
	case Free:
		if d, ok := defs[string(t)]; ok {
			return d
		}
		return t
	case Abs:
		return Abs{t.Hint, Expand(t.Body, defs)}
	case App:
		return App{Expand(t.Fn, defs), Expand(t.Arg, defs)}
	}
	panic("unreachable")
}
