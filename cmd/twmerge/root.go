package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "twmerge",
		Short:         "twmerge resolves conflicting Tailwind utility classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return app.setup(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: json or console (defaults to the config file)")

	cmd.AddCommand(newMergeCmd(app))
	cmd.AddCommand(newExplainCmd(app))
	cmd.AddCommand(newClassifyCmd(app))
	cmd.AddCommand(newAuditCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newPlaygroundCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
