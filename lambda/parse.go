package lambda

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// A parser consumes a prefix of src. On failure it returns ok == false and
// the input it was given.
type parser[T any] func(src string) (val T, rest string, ok bool)

type pair[A, B any] struct {
	first  A
	second B
}

// seq runs p1 then p2. Both must succeed.
func seq[A, B any](p1 parser[A], p2 parser[B]) parser[pair[A, B]] {
	return func(src string) (pair[A, B], string, bool) {
		a, rest, ok := p1(src)
		if !ok {
			return pair[A, B]{}, src, false
		}
		b, rest, ok := p2(rest)
		if !ok {
			return pair[A, B]{}, src, false
		}
		return pair[A, B]{a, b}, rest, true
	}
}

// bind is seq where the second parser depends on the first result.
func bind[A, B any](p parser[A], f func(A) parser[B]) parser[B] {
	return func(src string) (B, string, bool) {
		a, rest, ok := p(src)
		if !ok {
			var zero B
			return zero, src, false
		}
		b, rest, ok := f(a)(rest)
		if !ok {
			var zero B
			return zero, src, false
		}
		return b, rest, true
	}
}

// orElse tries p1, and p2 on the original input if p1 fails.
func orElse[T any](p1, p2 parser[T]) parser[T] {
	return func(src string) (T, string, bool) {
		if v, rest, ok := p1(src); ok {
			return v, rest, true
		}
		return p2(src)
	}
}

// many applies p until it fails. It never fails itself.
func many[T any](p parser[T]) parser[[]T] {
	return func(src string) ([]T, string, bool) {
		var res []T
		for {
			v, rest, ok := p(src)
			if !ok {
				return res, src, true
			}
			res = append(res, v)
			src = rest
		}
	}
}

func using[A, B any](p parser[A], f func(A) B) parser[B] {
	return func(src string) (B, string, bool) {
		a, rest, ok := p(src)
		if !ok {
			var zero B
			return zero, src, false
		}
		return f(a), rest, true
	}
}

func lazy[T any](f func() parser[T]) parser[T] {
	return func(src string) (T, string, bool) {
		return f()(src)
	}
}

// Every token swallows the whitespace that follows it.
var (
	reSpace  = regexp.MustCompile(`^()\s*`)
	reLParen = regexp.MustCompile(`^(\()\s*`)
	reRParen = regexp.MustCompile(`^(\))\s*`)
	reLambda = regexp.MustCompile(`^(λ|\\|L)\s*`)
	reDot    = regexp.MustCompile(`^(\.)\s*`)
	reName   = regexp.MustCompile(`^([0-9A-Za-z]+)\s*`)
)

// grammar holds the state shared by the parsers of a single Parse call.
type grammar struct {
	input    string
	furthest int
}

func (g *grammar) token(re *regexp.Regexp) parser[string] {
	return func(src string) (string, string, bool) {
		m := re.FindStringSubmatch(src)
		if m == nil {
			if off := len(g.input) - len(src); off > g.furthest {
				g.furthest = off
			}
			return "", src, false
		}
		return m[1], src[len(m[0]):], true
	}
}

// term := app
func (g *grammar) term(ctx []string) parser[Term] {
	return g.app(ctx)
}

// app := prim prim*
func (g *grammar) app(ctx []string) parser[Term] {
	return using(seq(g.prim(ctx), many(g.prim(ctx))), func(r pair[Term, []Term]) Term {
		return lo.Reduce(r.second, func(fn Term, arg Term, _ int) Term {
			return App{fn, arg}
		}, r.first)
	})
}

// prim := paren | abs | var
func (g *grammar) prim(ctx []string) parser[Term] {
	return orElse(g.paren(ctx), orElse(g.abs(ctx), g.variable(ctx)))
}

// paren := "(" term ")"
func (g *grammar) paren(ctx []string) parser[Term] {
	inner := lazy(func() parser[Term] { return g.term(ctx) })
	return using(seq(g.token(reLParen), seq(inner, g.token(reRParen))), func(r pair[string, pair[Term, string]]) Term {
		return r.second.first
	})
}

// abs := ("λ" | "\" | "L") name "." term
func (g *grammar) abs(ctx []string) parser[Term] {
	head := seq(seq(g.token(reLambda), g.token(reName)), g.token(reDot))
	return bind(head, func(r pair[pair[string, string], string]) parser[Term] {
		name := r.first.second
		return using(g.term(prepend(name, ctx)), func(body Term) Term {
			return Abs{name, body}
		})
	})
}

// var := name
func (g *grammar) variable(ctx []string) parser[Term] {
	return using(g.token(reName), func(name string) Term {
		if i := slices.Index(ctx, name); i >= 0 {
			return Var(i)
		}
		return Free(name)
	})
}

func prepend(v string, from []string) []string {
	return append([]string{v}, from...)
}

// SyntaxError is returned when no term can be parsed from the input.
// Offset is the furthest byte offset at which a token failed to match.
type SyntaxError struct {
	Input  string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: unexpected token %q", e.Offset, e.Near())
}

// Near returns the token at Offset, or "EOF".
func (e *SyntaxError) Near() string {
	if e.Offset >= len(e.Input) {
		return "EOF"
	}
	rest := e.Input[e.Offset:]
	if m := reName.FindStringSubmatch(rest); m != nil {
		return m[1]
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return string(r)
}

// ParsePrefix parses a term from the start of src, skipping leading
// whitespace, and returns the input left after it.
func ParsePrefix(src string) (Term, string, error) {
	g := &grammar{input: src}
	p := using(seq(g.token(reSpace), g.term(nil)), func(r pair[string, Term]) Term {
		return r.second
	})
	t, rest, ok := p(src)
	if !ok {
		return nil, src, &SyntaxError{Input: src, Offset: g.furthest}
	}
	return t, rest, nil
}

// Parse parses a term from src. Text after the term is ignored.
func Parse(src string) (Term, error) {
	t, _, err := ParsePrefix(src)
	return t, err
}
