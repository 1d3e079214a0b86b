package fsm_test

import (
	"testing"

	. "github.com/enetx/tablefsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSM_ToDOT(t *testing.T) {
	f, err := New(playerConfig().
		Transition("paused", "halt", "stopped").
		Transition("paused", "kill", "stopped").
		State("stopped"))
	require.NoError(t, err)

	require.NoError(t, f.Trigger("start"))

	dot := string(f.ToDOT())

	assert.Contains(t, dot, "digraph FSM {")
	assert.Contains(t, dot, `__start -> "idle" [label=" initial"];`)
	assert.Contains(t, dot, `"running" [label="running", fillcolor="#90ee90", shape=doublecircle];`)
	assert.Contains(t, dot, `"idle" [label="idle", fillcolor="#add8e6"];`)
	assert.Contains(t, dot, `"paused" [label="paused"];`)
	assert.Contains(t, dot, `"stopped" [label="stopped", fillcolor="#d3d3d3", shape=doublecircle];`)
	assert.Contains(t, dot, `"idle" -> "running" [label=" start "];`)
	assert.Contains(t, dot, `"running" -> "idle" [label=" stop "];`)
	assert.Contains(t, dot, `"paused" -> "stopped" [label=" halt\nkill "];`)
}

func TestFSM_ToMermaid(t *testing.T) {
	f, err := New(NewConfig("start-here").
		Transition("start-here", "go", "next.step").
		Transition("start-here", "skip", "next.step").
		State("next.step", "other"))
	require.NoError(t, err)

	require.NoError(t, f.Trigger("go"))

	out := string(f.ToMermaid())

	assert.Contains(t, out, "graph LR\n")
	assert.Contains(t, out, `start_here(("start-here"))`)
	assert.Contains(t, out, `next_step["next.step"]`)
	assert.Contains(t, out, `start_here -- "go, skip" --> next_step`)
	assert.Contains(t, out, "class start_here visited;")
	assert.Contains(t, out, "class next_step current;")
	assert.NotContains(t, out, "class other")
}
