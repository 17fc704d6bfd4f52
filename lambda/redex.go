package lambda

import (
	"strings"

	"github.com/samber/lo"
)

// Dir is one move from a node to one of its children.
type Dir int

const (
	InFn Dir = iota
	InArg
	InBody
)

func (d Dir) String() string {
	switch d {
	case InFn:
		return "fn"
	case InArg:
		return "arg"
	case InBody:
		return "body"
	}
	panic("unreachable")
}

// Path locates a subterm by the moves taken from the root.
type Path []Dir

func (p Path) String() string {
	if len(p) == 0 {
		return "root"
	}
	return strings.Join(lo.Map(p, func(d Dir, _ int) string { return d.String() }), ".")
}

// Lookup returns the subterm of t at p.
func (p Path) Lookup(t Term) (Term, bool) {
	for _, d := range p {
		switch n := t.(type) {
		case Abs:
			if d != InBody {
				return nil, false
			}
			t = n.Body
		case App:
			switch d {
			case InFn:
				t = n.Fn
			case InArg:
				t = n.Arg
			default:
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return t, true
}

// RedexPath returns the location of the application Eval1 would reduce next.
func RedexPath(t Term) (Path, bool) {
	switch t := t.(type) {
	case Var, Free:
		return nil, false
	case Abs:
		if p, ok := RedexPath(t.Body); ok {
			return append(Path{InBody}, p...), true
		}
		return nil, false
	case App:
		if p, ok := RedexPath(t.Fn); ok {
			return append(Path{InFn}, p...), true
		}
		if p, ok := RedexPath(t.Arg); ok {
			return append(Path{InArg}, p...), true
		}
		if _, ok := t.Fn.(Abs); ok {
			return Path{}, true
		}
		return nil, false
	}
	panic("unreachable")
}

// FindRedex returns the application Eval1 would reduce next, or false if t
// is in normal form. It does not modify t.
func FindRedex(t Term) (Term, bool) {
	p, ok := RedexPath(t)
	if !ok {
		return nil, false
	}
	return p.Lookup(t)
}
