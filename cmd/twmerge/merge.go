package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/twmerge/pkg/classnames"
)

type mergeOptions struct {
	json bool
}

type mergeResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

func newMergeCmd(app *appContext) *cobra.Command {
	opts := &mergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge [classes...]",
		Short: "Merge class lists, keeping the last utility of each group",
		Long: `Merge the given classes into one conflict-free class list.

Each argument may hold several space separated classes. Without arguments,
every line of standard input is merged on its own and printed on its own line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, app, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print one JSON object per result")

	return cmd
}

func runMerge(cmd *cobra.Command, app *appContext, args []string, opts *mergeOptions) error {
	joiner := classnames.NewJoiner(app.merger)
	out := cmd.OutOrStdout()
	encoder := json.NewEncoder(out)

	emit := func(input string, parts any) error {
		result := mergeResult{Input: input, Output: joiner.Cn(parts)}
		if opts.json {
			return encoder.Encode(result)
		}
		_, err := fmt.Fprintln(out, result.Output)
		return err
	}

	if len(args) > 0 {
		return emit(strings.Join(args, " "), args)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines := 0
	for scanner.Scan() {
		line := scanner.Text()
		if err := emit(line, line); err != nil {
			return err
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return newCommandError("merge", "reading standard input", err, "Pass classes as arguments or pipe one class list per line.")
	}

	app.log.WithFields(map[string]any{"lines": lines}).Debug("merged standard input")
	return nil
}
