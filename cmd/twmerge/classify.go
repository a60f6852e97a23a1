package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

func newClassifyCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <token>...",
		Short: "Print the utility group of each class",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				fmt.Fprintf(out, "%s\t%s\n", arg, describeToken(app.merger, arg))
			}
			return nil
		},
	}
}

func describeToken(merger *twmerge.Merger, raw string) string {
	token, reason := twmerge.Validate(raw)
	if reason != twmerge.ReasonNone {
		return "rejected: " + string(reason)
	}
	group, ok := merger.Classify(token)
	if !ok {
		return "ungrouped"
	}
	return string(group)
}
