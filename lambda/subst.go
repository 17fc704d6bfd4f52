package lambda

// Shift adds d to every index in t that is at least c, i.e. every variable
// not bound inside t below cutoff c. Free names are left alone.
func Shift(d, c int, t Term) Term {
	switch t := t.(type) {
	case Var:
		if int(t) < c {
			return t
		}
		return t + Var(d)
	case Free:
		return t
	case Abs:
		return Abs{t.Hint, Shift(d, c+1, t.Body)}
	case App:
		return App{Shift(d, c, t.Fn), Shift(d, c, t.Arg)}
	}
	panic("unreachable")
}

// Subst replaces every occurrence of index j in t with s. s is shifted as it
// passes under each binder so that its own free indices keep their meaning.
func Subst(j int, s, t Term) Term {
	switch t := t.(type) {
	case Var:
		if int(t) == j {
			return s
		}
		return t
	case Free:
		return t
	case Abs:
		return Abs{t.Hint, Subst(j+1, Shift(1, 0, s), t.Body)}
	case App:
		return App{Subst(j, s, t.Fn), Subst(j, s, t.Arg)}
	}
	panic("unreachable")
}

// Apply beta-reduces fn applied to arg. It returns ErrNoRuleApplies when fn
// is not an abstraction.
func Apply(fn, arg Term) (Term, error) {
	abs, ok := fn.(Abs)
	if !ok {
		return nil, ErrNoRuleApplies
	}
	return substTop(arg, abs.Body), nil
}

func substTop(s, t Term) Term {
	return Shift(-1, 0, Subst(0, Shift(1, 0, s), t))
}
