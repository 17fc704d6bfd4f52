package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/kr/pretty"
	"golang.org/x/time/rate"

	"github.com/propella/AlligatorEggs/lambda"
)

type options struct {
	expr     string
	steps    int
	trace    bool
	redex    bool
	debruijn bool
	prelude  bool
	ast      bool
	stats    bool
	play     bool
	interval time.Duration
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprint(w, "usage: alligator [flags] ( -e expr | file )\n\n")
	fmt.Fprint(w, "alligator reduces an untyped lambda term one step at a time (innermost redex first).\n\n")
	fs.PrintDefaults()
}

func newFlagSet(stderr io.Writer, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("alligator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.expr, "e", "", "reduce `expr` instead of reading a file")
	fs.IntVar(&opts.steps, "steps", lambda.DefaultMaxSteps, "give up after `n` reduction steps")
	fs.BoolVar(&opts.trace, "trace", false, "print every intermediate term")
	fs.BoolVar(&opts.redex, "redex", false, "show where each step reduced (needs -trace or -play)")
	fs.BoolVar(&opts.debruijn, "debruijn", false, "print terms with de Bruijn indices")
	fs.BoolVar(&opts.prelude, "prelude", false, "expand prelude names (I, K, S, succ, ...)")
	fs.BoolVar(&opts.ast, "ast", false, "dump the parsed term and exit")
	fs.BoolVar(&opts.stats, "stats", false, "report step count and term size (needs -trace or -play)")
	fs.BoolVar(&opts.play, "play", false, "like -trace, pausing between steps")
	fs.DurationVar(&opts.interval, "interval", 3500*time.Millisecond, "pause between steps in -play mode")
	fs.Usage = func() { usage(fs) }
	return fs
}

// run executes the command line in args and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(stderr, &opts)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	src, err := readSource(opts.expr, fs.Args())
	if err == nil && (opts.stats || opts.redex) && !opts.trace && !opts.play {
		err = errors.New("-stats and -redex need -trace or -play")
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return 2
	}

	errExit := func(err error) int {
		fmt.Fprintln(stderr, err)
		return 1
	}

	t, err := parse(src)
	if err != nil {
		return errExit(err)
	}
	if opts.prelude {
		defs, err := lambda.Definitions(lambda.Prelude)
		if err != nil {
			return errExit(err)
		}
		t = lambda.Expand(t, defs)
	}
	if opts.ast {
		fmt.Fprintf(stdout, "%# v\n", pretty.Formatter(t))
		return 0
	}

	show := func(t lambda.Term) string {
		if opts.debruijn {
			return t.DeBruijnString()
		}
		return lambda.Show(t, nil)
	}

	switch {
	case opts.play:
		lim := rate.NewLimiter(rate.Every(opts.interval), 1)
		err = transcript(lambda.NewMachine(t), opts, show, stdout, stderr, func() error {
			return lim.Wait(ctx)
		})
	case opts.trace:
		err = transcript(lambda.NewMachine(t), opts, show, stdout, stderr, func() error {
			return ctx.Err()
		})
	default:
		t, err = lambda.Evaluate(t, opts.steps)
		if err == nil {
			fmt.Fprintln(stdout, show(t))
		}
	}
	if err != nil {
		return errExit(err)
	}
	return 0
}

func readSource(expr string, args []string) (string, error) {
	switch {
	case expr != "" && len(args) == 0:
		return expr, nil
	case expr == "" && len(args) == 1:
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return "", errors.New("expected exactly one of -e or a file")
}

// parse parses a whole source text; anything left after the term is an error.
func parse(src string) (lambda.Term, error) {
	t, rest, err := lambda.ParsePrefix(src)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, &lambda.SyntaxError{Input: src, Offset: len(src) - len(rest)}
	}
	return t, nil
}

// transcript prints the term held by m and every term it steps to. wait is
// called before each step; an error from it stops the transcript quietly.
func transcript(m *lambda.Machine, opts options, show func(lambda.Term) string, stdout, stderr io.Writer, wait func() error) error {
	fmt.Fprintln(stdout, show(m.Term()))
	for m.State() != lambda.NormalForm {
		if err := wait(); err != nil {
			fmt.Fprintf(stderr, "stopped after %d steps\n", m.Steps())
			return nil
		}
		p, _, err := m.Begin()
		if errors.Is(err, lambda.ErrNoRuleApplies) {
			break
		}
		if err != nil {
			return err
		}
		if m.Steps() >= opts.steps {
			m.Abort()
			return fmt.Errorf("no normal form after %d steps: %w", opts.steps, lambda.ErrStepLimit)
		}
		next, err := m.Commit()
		if err != nil {
			return err
		}
		if opts.redex {
			fmt.Fprintf(stdout, "[%v] %s\n", p, show(next))
		} else {
			fmt.Fprintln(stdout, show(next))
		}
	}
	if opts.stats {
		fmt.Fprintf(stderr, "%d steps, size %d\n", m.Steps(), lambda.Size(m.Term()))
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
