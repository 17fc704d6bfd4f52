package lambda

import (
	"testing"

	"github.com/kr/pretty"
)

// checkTerm fails the test if got and want are not Equal.
func checkTerm(t *testing.T, got, want Term) {
	t.Helper()
	if !Equal(got, want) {
		t.Errorf("got %s, want %s\n%s", Show(got, nil), Show(want, nil), pretty.Diff(got, want))
	}
}

func TestEqual(t *testing.T) {
	for _, tt := range []struct {
		a, b Term
		want bool
	}{
		{Var(0), Var(0), true},
		{Var(0), Var(1), false},
		{Free("x"), Free("x"), true},
		{Free("x"), Free("y"), false},
		{Var(0), Free("0"), false},
		{Free("0"), Var(0), false},
		{Abs{"x", Var(0)}, Abs{"y", Var(0)}, true},
		{Abs{"x", Var(0)}, Abs{"x", Var(1)}, false},
		{App{Var(0), Free("y")}, App{Var(0), Free("y")}, true},
		{App{Var(0), Free("y")}, App{Free("y"), Var(0)}, false},
		{Abs{"x", Var(0)}, App{Var(0), Var(0)}, false},
		{Var(0), Abs{"x", Var(0)}, false},
	} {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%# v, %# v) = %v, want %v", pretty.Formatter(tt.a), pretty.Formatter(tt.b), got, tt.want)
		}
	}
}

func TestSize(t *testing.T) {
	for _, tt := range []struct {
		t    Term
		want int
	}{
		{Var(3), 1},
		{Free("y"), 1},
		{Abs{"x", Var(0)}, 2},
		{App{Abs{"x", App{Var(0), Var(0)}}, Abs{"x", App{Var(0), Var(0)}}}, 9},
	} {
		if got := Size(tt.t); got != tt.want {
			t.Errorf("Size(%s) = %d, want %d", Show(tt.t, nil), got, tt.want)
		}
	}
}

func TestDeBruijnString(t *testing.T) {
	term := Abs{"f", Abs{"x", App{Var(1), App{Var(1), Free("z")}}}}
	if got, want := term.DeBruijnString(), "(λ.(λ.(1 (1 z))))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
