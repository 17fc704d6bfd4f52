package lambda

import (
	"errors"
	"fmt"
)

// State is the phase of a Machine.
type State int

const (
	Ready State = iota
	Stepping
	NormalForm
)

func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Stepping:
		return "STEPPING"
	case NormalForm:
		return "NORMAL_FORM"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrBadState is returned when a Machine method is called in the wrong state.
var ErrBadState = errors.New("invalid machine state")

// Machine steps a term towards normal form in two phases, so that a caller
// can animate the redex between Begin and Commit. A Machine is not safe for
// concurrent use.
type Machine struct {
	term  Term
	state State
	steps int
	redex Path
}

func NewMachine(t Term) *Machine {
	return &Machine{term: t}
}

func (m *Machine) Term() Term   { return m.term }
func (m *Machine) State() State { return m.state }
func (m *Machine) Steps() int   { return m.steps }

// Redex returns the location announced by Begin, or nil outside Stepping.
func (m *Machine) Redex() Path { return m.redex }

// Begin locates the next redex and enters Stepping. A machine started on a
// term in normal form moves to NormalForm and returns ErrNoRuleApplies.
func (m *Machine) Begin() (Path, Term, error) {
	switch m.state {
	case Stepping:
		return nil, nil, fmt.Errorf("%w: begin while %v", ErrBadState, m.state)
	case NormalForm:
		return nil, nil, ErrNoRuleApplies
	}
	p, ok := RedexPath(m.term)
	if !ok {
		m.state = NormalForm
		return nil, nil, ErrNoRuleApplies
	}
	redex, _ := p.Lookup(m.term)
	m.redex = p
	m.state = Stepping
	return p, redex, nil
}

// Commit performs the step announced by Begin and returns the new term. The
// machine is then Ready, or NormalForm if the new term has no redex.
func (m *Machine) Commit() (Term, error) {
	if m.state != Stepping {
		return nil, fmt.Errorf("%w: commit while %v", ErrBadState, m.state)
	}
	next, err := Eval1(m.term)
	if err != nil {
		m.state = NormalForm
		return nil, err
	}
	m.term = next
	m.steps++
	m.redex = nil
	if _, ok := RedexPath(next); ok {
		m.state = Ready
	} else {
		m.state = NormalForm
	}
	return next, nil
}

// Abort leaves Stepping without reducing.
func (m *Machine) Abort() {
	if m.state == Stepping {
		m.redex = nil
		m.state = Ready
	}
}

// Step is Begin followed by Commit.
func (m *Machine) Step() (Term, error) {
	if _, _, err := m.Begin(); err != nil {
		return nil, err
	}
	return m.Commit()
}
