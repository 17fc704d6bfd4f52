package lambda

import (
	"errors"
	"fmt"
)

// DefaultMaxSteps is the step bound used for interactive evaluation.
const DefaultMaxSteps = 30

var (
	// ErrNoRuleApplies reports that a term has no redex.
	ErrNoRuleApplies = errors.New("no rule applies")

	// ErrStepLimit reports that evaluation ran out of steps.
	ErrStepLimit = errors.New("step limit exceeded")
)

// Eval1 performs a single reduction step. It returns ErrNoRuleApplies when t
// is in normal form.
//
// The search reduces inside abstraction bodies and on both sides of an
// application before the application itself: the function side first, then
// the argument, then the beta-redex. This is not strict leftmost-outermost
// order; an inner redex wins over the outer one that contains it.
func Eval1(t Term) (Term, error) {
	switch t := t.(type) {
	case Var, Free:
		return nil, ErrNoRuleApplies
	case Abs:
		body, err := Eval1(t.Body)
		if err != nil {
			return nil, err
		}
		return Abs{t.Hint, body}, nil
	case App:
		if fn, err := Eval1(t.Fn); err == nil {
			return App{fn, t.Arg}, nil
		}
		if arg, err := Eval1(t.Arg); err == nil {
			return App{t.Fn, arg}, nil
		}
		return Apply(t.Fn, t.Arg)
	}
	panic("unreachable")
}

// Evaluate applies Eval1 until t reaches normal form, taking at most maxSteps
// steps. It returns an error wrapping ErrStepLimit if the bound is reached
// first. A negative maxSteps allows no steps, the same as 0.
func Evaluate(t Term, maxSteps int) (Term, error) {
	for steps := 0; ; steps++ {
		next, err := Eval1(t)
		if errors.Is(err, ErrNoRuleApplies) {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		if steps >= maxSteps {
			return nil, fmt.Errorf("no normal form after %d steps: %w", maxSteps, ErrStepLimit)
		}
		t = next
	}
}
