package lambda

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestShow(t *testing.T) {
	for _, tt := range []struct {
		t     Term
		names []string
		want  string
	}{
		{Abs{"f", Abs{"x", App{Var(1), App{Var(1), Var(0)}}}}, nil, "λf.λx.f (f x)"},
		{App{Abs{"x", Var(0)}, Free("y")}, nil, "(λx.x) y"},
		{App{Free("f"), Abs{"x", Var(0)}}, nil, "f (λx.x)"},
		{App{Free("f"), App{Free("g"), Free("x")}}, nil, "f (g x)"},
		{App{App{Free("f"), Free("g")}, Free("x")}, nil, "f g x"},
		{App{App{Abs{"x", Var(0)}, Abs{"y", Var(0)}}, Free("z")}, nil, "(λx.x) (λy.y) z"},
		{Abs{"x", App{Var(0), Var(0)}}, nil, "λx.x x"},
		{Abs{"x", Abs{"x", Var(1)}}, nil, "λx.λx1.x"},
		{Abs{"a", Abs{"a", Abs{"a", App{Var(2), Var(0)}}}}, nil, "λa.λa1.λa2.a a2"},
		{Var(0), []string{"a"}, "a"},
		{Var(0), nil, "?0"},
		{Abs{"x", Var(1)}, nil, "λx.?1"},
		{Abs{"x", Var(1)}, []string{"x"}, "λx1.x"},
		{Abs{"", Var(0)}, nil, "λx.x"},
		{Free("free"), []string{"a"}, "free"},
	} {
		if got := Show(tt.t, tt.names); got != tt.want {
			t.Errorf("Show(%s, %q) = %q, want %q", tt.t.DeBruijnString(), tt.names, got, tt.want)
		}
	}
}

func TestShowParsed(t *testing.T) {
	term, err := Parse("λf.λx.f (f x)")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Show(term, nil), "λf.λx.f (f x)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPickFreshName(t *testing.T) {
	for _, tt := range []struct {
		names     []string
		hint      string
		wantNames []string
		want      string
	}{
		{[]string{}, "a", []string{"a"}, "a"},
		{nil, "a", []string{"a"}, "a"},
		{[]string{"a1", "a"}, "a", []string{"a2", "a1", "a"}, "a2"},
		{[]string{"a"}, "a", []string{"a1", "a"}, "a1"},
		{[]string{"b"}, "a", []string{"a", "b"}, "a"},
		{[]string{"ab"}, "a", []string{"a", "ab"}, "a"},
		{[]string{"x"}, "x1", []string{"x1", "x"}, "x1"},
		{[]string{"a1"}, "a", []string{"a2", "a1"}, "a2"},
	} {
		names, name := PickFreshName(tt.names, tt.hint)
		if name != tt.want || !slices.Equal(names, tt.wantNames) {
			t.Errorf("PickFreshName(%q, %q) = %q, %q; want %q, %q", tt.names, tt.hint, names, name, tt.wantNames, tt.want)
		}
	}
}

func TestPickFreshNameDoesNotModifyNames(t *testing.T) {
	names := make([]string, 1, 4)
	names[0] = "a"
	PickFreshName(names, "a")
	PickFreshName(names, "b")
	if !slices.Equal(names, []string{"a"}) || names[:2][1] != "" {
		t.Errorf("names modified: %q", names[:2])
	}
}

// capturable reports whether printing t could bind one of its free names,
// which happens when a free name shares its letter prefix with a binder.
func capturable(t Term) bool {
	hints := map[string]bool{}
	var frees []string
	var walk func(Term)
	walk = func(t Term) {
		switch t := t.(type) {
		case Free:
			frees = append(frees, string(t))
		case Abs:
			hints[letterPrefix(t.Hint)] = true
			walk(t.Body)
		case App:
			walk(t.Fn)
			walk(t.Arg)
		}
	}
	walk(t)
	for _, f := range frees {
		if hints[letterPrefix(f)] {
			return true
		}
	}
	return false
}

func FuzzRoundTrip(f *testing.F) {
	for _, s := range []string{
		"(λx.x) y",
		"λf.λx.f (f x)",
		"λx.λx.x",
		"λa.λa1.λa.a a1",
		"x (y z) (λw.w)",
		"(λx.x x) (λx.x x)",
		`\n.Lf.\x.f (n f x)`,
		"λ1.λ1.1",
	} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		term, err := Parse(src)
		if err != nil || capturable(term) {
			return
		}
		s := Show(term, nil)
		back, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(Show(%q)) = %q: %v", src, s, err)
		}
		if !Equal(term, back) {
			t.Fatalf("round trip of %q through %q gave %s", src, s, Show(back, nil))
		}
	})
}
