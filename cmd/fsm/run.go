package main

import (
	"os"

	"github.com/enetx/tablefsm/internal/console"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Drive the machine interactively",
		Long:  `Starts a session on the initial state. Type "help" for the list of commands.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			machine, err := opts.machine()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()

			interactive := false
			if f, ok := in.(*os.File); ok {
				interactive = term.IsTerminal(int(f.Fd()))
			}

			session := console.New(machine, termenv.NewOutput(cmd.OutOrStdout()),
				console.WithPrompt(interactive),
				console.WithLogger(opts.logger),
			)

			return session.Run(cmd.Context(), in)
		},
	}
}
