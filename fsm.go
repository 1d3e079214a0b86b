// Package fsm provides a table-driven finite state machine with linear undo/redo
// navigation over the history of visited states. Transitions are a pure mapping from
// (state, event) to a destination state; the machine records every state it enters and
// can step back and forth through that record. It is built with types and utilities
// from the github.com/enetx/g library.
package fsm

import (
	"io"
	"log/slog"

	"github.com/enetx/g"
)

// WithLogger sets a structured logger that receives debug records for every change,
// undo and redo.
func WithLogger(logger *slog.Logger) Option {
	return func(f *FSM) {
		f.logger = logger
	}
}

// New creates an FSM from the given configuration and enters its initial state.
// It fails with ErrConfiguration when cfg is nil and with ErrInvalidState when the
// initial state is not declared.
func New(cfg *Config, opts ...Option) (*FSM, error) {
	if cfg == nil {
		return nil, &ErrConfiguration{Reason: "no configuration supplied"}
	}

	f := &FSM{
		config:  cfg,
		states:  cfg.States(),
		history: g.NewSlice[Entry](),
		prev:    g.None[int](),
		next:    g.None[int](),
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := f.Reset(); err != nil {
		return nil, err
	}

	return f, nil
}

// Clone creates a new FSM instance with the same configuration and logger but a fresh
// history that holds only the initial state.
func (f *FSM) Clone() *FSM {
	c := &FSM{
		config:  f.config,
		states:  f.states.Clone(),
		history: g.NewSlice[Entry](),
		prev:    g.None[int](),
		next:    g.None[int](),
		logger:  f.logger,
	}

	// The initial state was accepted when f was built.
	_ = c.Reset()

	return c
}

// Sync wraps the FSM into a SyncFSM. The FSM must not be used directly afterwards.
func (f *FSM) Sync() *SyncFSM { return &SyncFSM{fsm: f} }

// Config returns the configuration the FSM was built from.
func (f *FSM) Config() *Config { return f.config }

// Current returns the FSM's current state.
func (f *FSM) Current() State { return f.current }

// States returns the declared states in declaration order. When an event is given,
// only the states whose transition table handles that event are returned.
func (f *FSM) States(event ...Event) g.Slice[State] {
	if len(event) == 0 {
		return f.states.Clone()
	}

	ev := event[0]

	return f.states.Iter().
		Exclude(func(s State) bool { return f.config.Destination(s, ev).IsNone() }).
		Collect()
}

// ChangeState moves the FSM to the given state without consulting the transition
// table. The move is recorded as a new active history entry.
func (f *FSM) ChangeState(s State) error {
	if !f.states.Contains(s) {
		return &ErrInvalidState{State: s}
	}

	from := f.current
	active := f.active()

	f.deactivate()
	f.history.Push(Entry{Name: s, Active: true})
	f.current = s
	f.prev = active

	f.logger.Debug("state changed", "from", from, "to", s, "index", len(f.history)-1)

	return nil
}

// Trigger follows the current state's transition for the event.
func (f *FSM) Trigger(event Event) error {
	to := f.config.Destination(f.current, event)
	if to.IsNone() {
		return &ErrNoTransition{From: f.current, Event: event}
	}

	return f.ChangeState(to.Some())
}

// Reset changes to the initial state. It is recorded like any other change and does
// not rewind the history.
func (f *FSM) Reset() error {
	return f.ChangeState(f.config.Initial())
}

// CanUndo reports whether Undo would move the FSM.
func (f *FSM) CanUndo() bool {
	a := f.active()
	return a.IsSome() && a.Some() > 0
}

// CanRedo reports whether Redo would move the FSM.
func (f *FSM) CanRedo() bool {
	a := f.active()
	return a.IsSome() && a.Some() < len(f.history)-1
}

// Undo moves back to the previous history entry and reports whether it did.
// After a change the previous entry is the one that was active before it, which is
// not necessarily the adjacent one.
func (f *FSM) Undo() bool {
	if !f.CanUndo() {
		return false
	}

	a := f.active().Some()
	f.deactivate()

	i := f.target(f.prev, a, -1)
	f.activate(i)

	f.next = g.Some(a)
	f.prev = g.None[int]()

	f.logger.Debug("undo", "from", f.history[a].Name, "to", f.current, "index", i)

	return true
}

// Redo moves forward to the entry the last Undo left, or to the next history entry,
// and reports whether it did.
func (f *FSM) Redo() bool {
	if !f.CanRedo() {
		return false
	}

	a := f.active().Some()
	f.deactivate()

	i := f.target(f.next, a, 1)
	f.activate(i)

	f.prev = g.Some(a)
	f.next = g.None[int]()

	f.logger.Debug("redo", "from", f.history[a].Name, "to", f.current, "index", i)

	return true
}
