package main

import (
	"log/slog"

	fsm "github.com/enetx/tablefsm"
	"github.com/enetx/tablefsm/internal/logging"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "fsm",
		Short:         "Table-driven state machines with undo and redo",
		Long:          `fsm loads a state machine from a YAML or JSON file, validates it, draws it, or lets you drive it from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}

			opts.logger = logging.New(level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "fsm.yaml", "Machine configuration file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	cmd.AddCommand(
		newValidateCmd(opts),
		newGraphCmd(opts),
		newRunCmd(opts),
	)

	return cmd
}

// machine loads the configuration and builds a fresh FSM from it.
func (o *options) machine() (*fsm.FSM, error) {
	cfg, err := fsm.LoadConfigFile(o.configPath)
	if err != nil {
		return nil, err
	}

	return fsm.New(cfg, fsm.WithLogger(o.logger.With("config", o.configPath)))
}
