package fsm

import "github.com/enetx/g"

// active returns the index of the active history entry.
func (f *FSM) active() g.Option[int] {
	for i, e := range f.history {
		if e.Active {
			return g.Some(i)
		}
	}

	return g.None[int]()
}

// deactivate clears the active flag on every history entry.
func (f *FSM) deactivate() {
	for i := range f.history {
		f.history[i].Active = false
	}
}

// activate moves the FSM onto the history entry at index i.
func (f *FSM) activate(i int) {
	f.history[i].Active = true
	f.current = f.history[i].Name
}

// target picks the index a navigation call lands on: the carried override if it still
// points into the history, otherwise the neighbour at step distance from a.
func (f *FSM) target(override g.Option[int], a, step int) int {
	if override.IsSome() {
		if i := override.Some(); i >= 0 && i < len(f.history) {
			return i
		}
	}

	return a + step
}

// History returns a copy of the recorded history.
func (f *FSM) History() g.Slice[Entry] { return f.history.Clone() }

// ClearHistory forgets every recorded entry. The current state and the carried
// navigation indexes are left as they are; undo and redo are unavailable until the
// next change repopulates the history.
func (f *FSM) ClearHistory() {
	f.history = g.NewSlice[Entry]()
	f.logger.Debug("history cleared", "state", f.current)
}
