// Package console drives a state machine from line-oriented text commands.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	fsm "github.com/enetx/tablefsm"
	"github.com/muesli/termenv"
)

// ErrUnknownCommand is returned by Exec for a command it does not understand.
var ErrUnknownCommand = errors.New("unknown command")

const help = `commands:
  trigger <event>   follow a transition (alias: t)
  goto <state>      jump to a declared state
  undo | redo       step through the history
  reset             change to the initial state
  clear             forget the history
  state             print the current state
  states [event]    list states, optionally only those handling event
  history           print the history, * marks the active entry
  help              print this text
  quit | exit       leave the session`

// Option configures a Session.
type Option func(*Session)

// WithPrompt shows a prompt before every command. Useful only on a terminal.
func WithPrompt(prompt bool) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithLogger sets the logger that receives a debug record per command.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session executes commands against a machine and writes the results to out.
type Session struct {
	machine fsm.StateMachine
	out     *termenv.Output
	prompt  bool
	logger  *slog.Logger
}

// New creates a Session.
func New(machine fsm.StateMachine, out *termenv.Output, opts ...Option) *Session {
	s := &Session{machine: machine, out: out}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return s
}

// Run reads commands from in until EOF, a quit command or ctx is done.
// Command errors are printed and do not end the session.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.prompt {
			fmt.Fprint(s.out, s.out.String(fmt.Sprintf("fsm(%s)> ", s.machine.Current())).Faint())
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		quit, err := s.Exec(scanner.Text())
		if err != nil {
			fmt.Fprintln(s.out, s.out.String("error: "+err.Error()).Foreground(s.out.Color("1")))
		}

		if quit {
			return nil
		}
	}
}

// Exec runs a single command line. It reports whether the session should end.
func (s *Session) Exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	s.logger.Debug("command", "line", line)

	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(s.out, help)
	case "trigger", "t":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: %s <event>", cmd)
		}

		if err := s.machine.Trigger(fsm.Event(args[0])); err != nil {
			return false, err
		}

		s.printState()
	case "goto":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: goto <state>")
		}

		if err := s.machine.ChangeState(fsm.State(args[0])); err != nil {
			return false, err
		}

		s.printState()
	case "undo":
		if !s.machine.Undo() {
			fmt.Fprintln(s.out, "nothing to undo")
			return false, nil
		}

		s.printState()
	case "redo":
		if !s.machine.Redo() {
			fmt.Fprintln(s.out, "nothing to redo")
			return false, nil
		}

		s.printState()
	case "reset":
		if err := s.machine.Reset(); err != nil {
			return false, err
		}

		s.printState()
	case "clear":
		s.machine.ClearHistory()
		fmt.Fprintln(s.out, "history cleared")
	case "state":
		s.printState()
	case "states":
		var events []fsm.Event
		if len(args) > 0 {
			events = append(events, fsm.Event(args[0]))
		}

		for _, state := range s.machine.States(events...) {
			fmt.Fprintln(s.out, state)
		}
	case "history":
		s.printHistory()
	default:
		return false, fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
	}

	return false, nil
}

func (s *Session) printState() {
	state := s.out.String(string(s.machine.Current())).Foreground(s.out.Color("2")).Bold()
	fmt.Fprintf(s.out, "state: %s\n", state)
}

func (s *Session) printHistory() {
	history := s.machine.History()
	if history.Empty() {
		fmt.Fprintln(s.out, "history is empty")
		return
	}

	for i, e := range history {
		if e.Active {
			line := s.out.String(fmt.Sprintf("* %d  %s", i, e.Name)).Foreground(s.out.Color("2"))
			fmt.Fprintln(s.out, line)
			continue
		}

		fmt.Fprintf(s.out, "  %d  %s\n", i, e.Name)
	}
}
