package fsm

import "github.com/enetx/g"

// StateMachine is the operation set shared by FSM and SyncFSM.
type StateMachine interface {
	Current() State
	States(event ...Event) g.Slice[State]
	ChangeState(State) error
	Trigger(Event) error
	Reset() error
	Undo() bool
	Redo() bool
	CanUndo() bool
	CanRedo() bool
	History() g.Slice[Entry]
	ClearHistory()
	ToDOT() g.String
	ToMermaid() g.String
}

// Interface compliance checks.
var (
	_ StateMachine = (*FSM)(nil)
	_ StateMachine = (*SyncFSM)(nil)
)
