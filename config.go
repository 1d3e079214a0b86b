package fsm

import (
	"errors"

	"github.com/enetx/g"
)

// NewConfig creates an empty configuration starting at the given state.
// The initial state still has to be declared, either with State or as the source of a Transition.
func NewConfig(initial State) *Config {
	return &Config{
		initial:     initial,
		states:      g.NewSlice[State](),
		transitions: g.NewMap[State, g.Slice[Transition]](),
	}
}

// State declares states. Declaring a state twice is a no-op; declaration order is kept.
func (c *Config) State(states ...State) *Config {
	for _, s := range states {
		c.declare(s)
	}

	return c
}

// Transition declares from (if needed) and maps event to the destination state in its table.
// Mapping the same event again replaces the previous destination.
// The destination is not declared implicitly.
func (c *Config) Transition(from State, event Event, to State) *Config {
	c.declare(from)

	table := c.transitions[from]
	for i := range table {
		if table[i].Event == event {
			table[i].To = to
			return c
		}
	}

	c.transitions[from] = append(table, Transition{Event: event, To: to})

	return c
}

func (c *Config) declare(s State) {
	if c.transitions.Contains(s) {
		return
	}

	c.states.Push(s)
	c.transitions[s] = g.NewSlice[Transition]()
}

// Initial returns the state the machine starts in.
func (c *Config) Initial() State { return c.initial }

// States returns a copy of the declared states in declaration order.
func (c *Config) States() g.Slice[State] { return c.states.Clone() }

// Has reports whether the state is declared.
func (c *Config) Has(s State) bool { return c.transitions.Contains(s) }

// Transitions returns a copy of the transition table of a state, in declaration order.
func (c *Config) Transitions(s State) g.Slice[Transition] {
	return c.transitions.Get(s).UnwrapOrDefault().Clone()
}

// Destination resolves the state an event leads to from the given state.
func (c *Config) Destination(from State, event Event) g.Option[State] {
	for _, t := range c.transitions[from] {
		if t.Event == event {
			return g.Some(t.To)
		}
	}

	return g.None[State]()
}

// Validate checks that the initial state and every transition destination are declared.
// All problems are reported at once.
func (c *Config) Validate() error {
	if c == nil {
		return &ErrConfiguration{Reason: "no configuration supplied"}
	}

	var errs []error

	if c.initial == "" {
		errs = append(errs, &ErrConfiguration{Reason: "initial state is not set"})
	} else if !c.Has(c.initial) {
		errs = append(errs, &ErrInvalidState{State: c.initial})
	}

	for _, from := range c.states {
		for _, t := range c.transitions[from] {
			if !c.Has(t.To) {
				errs = append(errs, &ErrUndeclaredState{State: t.To, From: from, Event: t.Event})
			}
		}
	}

	return errors.Join(errs...)
}
