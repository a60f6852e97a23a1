package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/twmerge/internal/ui/components"
	"github.com/alexisbeaulieu97/twmerge/pkg/classnames"
	"github.com/alexisbeaulieu97/twmerge/pkg/diff"
)

type explainOptions struct {
	json bool
	diff bool
}

func newExplainCmd(app *appContext) *cobra.Command {
	opts := &explainOptions{}

	cmd := &cobra.Command{
		Use:   "explain [classes...]",
		Short: "Show what happened to every class during a merge",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, app, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the trace as JSON")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Append a token diff of input and output")

	return cmd
}

func runExplain(cmd *cobra.Command, app *appContext, args []string, opts *explainOptions) error {
	if len(args) == 0 {
		input, err := readAll(cmd)
		if err != nil {
			return newCommandError("explain", "reading standard input", err, "Pass classes as arguments instead.")
		}
		args = []string{input}
	}

	tokens := classnames.Tokens(args)
	trace := app.merger.Explain(tokens)
	out := cmd.OutOrStdout()

	if opts.json {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(trace)
	}

	ctx := components.DefaultContext().WithTheme(components.ThemeFor(isTerminal(out)))
	fmt.Fprintln(out, components.NewTraceTable(trace).ViewWithContext(ctx))

	if opts.diff {
		unified := diff.Unified(strings.Join(tokens, " "), trace.Output, "input", "merged")
		if unified == "" {
			unified = "no changes\n"
		}
		fmt.Fprint(out, "\n"+unified)
	}
	return nil
}

func readAll(cmd *cobra.Command) (string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return strings.Join(lines, " "), scanner.Err()
}
