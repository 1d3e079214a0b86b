package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGraphCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the transition table as a diagram",
		Long:  `Prints the machine as a Graphviz DOT digraph or a Mermaid flowchart, with the initial state highlighted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			machine, err := opts.machine()
			if err != nil {
				return err
			}

			switch format {
			case "dot":
				fmt.Fprint(cmd.OutOrStdout(), string(machine.ToDOT()))
			case "mermaid":
				fmt.Fprint(cmd.OutOrStdout(), string(machine.ToMermaid()))
			default:
				return fmt.Errorf("unknown format %q (want dot or mermaid)", format)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "Output format: dot or mermaid")

	return cmd
}
