package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	ConfigPath string
	Seed       uint64
	SeedSet    bool
	LogLevel   string
	LogFile    string
}

var composerRunner = runComposer

func newRootCmd() *cobra.Command {
	opts := rootOptions{}

	cmd := &cobra.Command{
		Use:           "colormix",
		Short:         "Mix a colour from red, green and blue sliders",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SeedSet = cmd.Flags().Changed("seed")

			if err := validateRootOptions(opts); err != nil {
				return err
			}

			return composerRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to an optional YAML configuration file")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Seed for the random starting colour")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Write logs to this file; logs are discarded when empty")

	cmd.AddCommand(newVersionCmd())

	return cmd
}
