package main

import (
	"fmt"

	fsm "github.com/enetx/tablefsm"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration for consistency",
		Long:  `Loads the configuration and reports an undeclared initial state or transitions that lead to undeclared states.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fsm.LoadConfigFile(opts.configPath)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			transitions := 0
			for _, s := range cfg.States() {
				transitions += len(cfg.Transitions(s))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "configuration is valid: %d states, %d transitions, initial state %q\n",
				len(cfg.States()), transitions, cfg.Initial())

			return nil
		},
	}
}
