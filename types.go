package fsm

import (
	"log/slog"
	"sync"

	"github.com/enetx/g"
)

type (
	// State represents a finite state in the FSM.
	State g.String
	// Event represents an event that triggers a transition.
	Event g.String

	// Transition is a single row of a state's transition table.
	Transition struct {
		Event Event
		To    State
	}

	// Entry is one recorded visit to a state. At most one entry of a history is active,
	// and its Name equals the FSM's current state.
	Entry struct {
		Name   State `json:"name"`
		Active bool  `json:"active"`
	}

	// Option configures an FSM at construction time.
	Option func(*FSM)

	// Config is the static description of a machine: the initial state and the
	// transition table of every declared state. A Config is built once and then only
	// read; any number of FSM instances may share it.
	Config struct {
		initial     State
		states      g.Slice[State]
		transitions g.Map[State, g.Slice[Transition]]
	}

	// FSM is the main state machine struct.
	FSM struct {
		config  *Config
		states  g.Slice[State]
		current State
		history g.Slice[Entry]

		// prev and next are one-shot indexes handed from one navigation call to the next.
		prev g.Option[int]
		next g.Option[int]

		logger *slog.Logger
	}

	// SyncFSM is a thread-safe wrapper around an FSM.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	// All methods on SyncFSM are the thread-safe counterparts to the methods on the base FSM.
	SyncFSM struct {
		fsm *FSM
		mu  sync.RWMutex
	}
)
