package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	fsm "github.com/enetx/tablefsm"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, opts ...Option) (*Session, *bytes.Buffer) {
	t.Helper()

	machine, err := fsm.New(fsm.NewConfig("idle").
		Transition("idle", "start", "running").
		Transition("running", "pause", "paused").
		Transition("running", "stop", "idle").
		Transition("paused", "resume", "running"))
	require.NoError(t, err)

	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))

	return New(machine, out, opts...), &buf
}

func TestSession_Run(t *testing.T) {
	s, buf := newSession(t)

	script := strings.Join([]string{
		"trigger start",
		"t pause",
		"undo",
		"undo",
		"undo",
		"redo",
		"",
		"history",
		"trigger stop",
		"quit",
		"state",
	}, "\n")

	require.NoError(t, s.Run(context.Background(), strings.NewReader(script)))

	assert.Equal(t, strings.Join([]string{
		"state: running",
		"state: paused",
		"state: running",
		"state: idle",
		"nothing to undo",
		"state: running",
		"  0  idle",
		"* 1  running",
		"  2  paused",
		"state: idle",
		"",
	}, "\n"), buf.String())
}

func TestSession_RunReportsErrorsAndContinues(t *testing.T) {
	s, buf := newSession(t)

	script := "trigger pause\ngoto nowhere\ndance\ntrigger\ntrigger start\n"
	require.NoError(t, s.Run(context.Background(), strings.NewReader(script)))

	out := buf.String()
	assert.Contains(t, out, `error: fsm: no transition for event "pause" from state "idle"`)
	assert.Contains(t, out, `error: fsm: state "nowhere" is not declared`)
	assert.Contains(t, out, `error: unknown command "dance"`)
	assert.Contains(t, out, "error: usage: trigger <event>")
	assert.True(t, strings.HasSuffix(out, "state: running\n"))
}

func TestSession_Exec(t *testing.T) {
	s, buf := newSession(t)

	quit, err := s.Exec("states pause")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, "running\n", buf.String())

	buf.Reset()
	_, err = s.Exec("STATES")
	require.NoError(t, err)
	assert.Equal(t, "idle\nrunning\npaused\n", buf.String())

	buf.Reset()
	_, err = s.Exec("clear")
	require.NoError(t, err)
	_, err = s.Exec("history")
	require.NoError(t, err)
	_, err = s.Exec("redo")
	require.NoError(t, err)
	assert.Equal(t, "history cleared\nhistory is empty\nnothing to redo\n", buf.String())

	buf.Reset()
	_, err = s.Exec("goto paused")
	require.NoError(t, err)
	_, err = s.Exec("reset")
	require.NoError(t, err)
	assert.Equal(t, "state: paused\nstate: idle\n", buf.String())

	_, err = s.Exec("jump")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	quit, err = s.Exec("exit")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestSession_Prompt(t *testing.T) {
	s, buf := newSession(t, WithPrompt(true))

	require.NoError(t, s.Run(context.Background(), strings.NewReader("trigger start\n")))

	assert.Equal(t, "fsm(idle)> state: running\nfsm(running)> ", buf.String())
}

func TestSession_RunStopsOnCancel(t *testing.T) {
	s, _ := newSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, strings.NewReader("trigger start\n"))
	assert.ErrorIs(t, err, context.Canceled)
}
