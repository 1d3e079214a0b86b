package fsm

import "fmt"

// ErrConfiguration is returned when an FSM is constructed without a configuration,
// or when a configuration document cannot be turned into a usable Config.
type ErrConfiguration struct {
	Reason string
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("fsm: invalid configuration: %s", e.Reason)
}

// ErrInvalidState is returned when changing to a state that is not declared in the
// configuration. The FSM is left untouched.
type ErrInvalidState struct {
	State State
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("fsm: state %q is not declared", e.State)
}

// ErrNoTransition is returned when the current state's transition table has no entry
// for the triggered event. The FSM is left untouched.
type ErrNoTransition struct {
	From  State
	Event Event
}

func (e *ErrNoTransition) Error() string {
	return fmt.Sprintf("fsm: no transition for event %q from state %q", e.Event, e.From)
}

// ErrUndeclaredState is reported by Config.Validate for a transition whose destination
// is not itself a declared state.
type ErrUndeclaredState struct {
	State State
	From  State
	Event Event
}

func (e *ErrUndeclaredState) Error() string {
	return fmt.Sprintf("fsm: transition %q from state %q leads to undeclared state %q", e.Event, e.From, e.State)
}
