package fsm_test

import (
	"sync"
	"testing"

	. "github.com/enetx/tablefsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncFSM_ConcurrentTriggers(t *testing.T) {
	f, err := New(NewConfig("off").
		Transition("off", "toggle", "on").
		Transition("on", "toggle", "off"))
	require.NoError(t, err)

	sf := f.Sync()

	const workers, perWorker = 8, 50

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				assert.NoError(t, sf.Trigger("toggle"))
				_ = sf.Current()
				_ = sf.History()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, sf.History(), workers*perWorker+1)
	assert.Equal(t, State("off"), sf.Current())
}

func TestSyncFSM_Navigation(t *testing.T) {
	f := newPlayer(t)
	var sm StateMachine = f.Sync()

	require.NoError(t, sm.Trigger("start"))
	require.NoError(t, sm.ChangeState("paused"))
	assert.Equal(t, []State{"running"}, []State(sm.States("pause")))

	assert.True(t, sm.CanUndo())
	assert.True(t, sm.Undo())
	assert.Equal(t, State("running"), sm.Current())
	assert.True(t, sm.CanRedo())
	assert.True(t, sm.Redo())
	assert.Equal(t, State("paused"), sm.Current())

	require.NoError(t, sm.Reset())
	assert.Equal(t, State("idle"), sm.Current())

	sm.ClearHistory()
	assert.Empty(t, sm.History())
	assert.False(t, sm.Undo())
	assert.False(t, sm.Redo())

	assert.NotEmpty(t, sm.ToDOT())
	assert.NotEmpty(t, sm.ToMermaid())
}
