package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/twmerge/internal/tui/playground"
)

func newPlaygroundCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "playground [classes...]",
		Short: "Edit a class list interactively and watch it merge",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := playground.Run(cmd.Context(), app.merger, strings.Join(args, " "), cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return newCommandError("run playground", "", err, "Run the playground in an interactive terminal.")
			}
			if result != "" {
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}
}
