package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/twmerge/internal/audit"
	"github.com/alexisbeaulieu97/twmerge/internal/ui/components"
)

var errFindings = errors.New("class lists would change when merged")

type auditOptions struct {
	git      bool
	revision string
	json     bool
	fail     bool
}

func newAuditCmd(app *appContext) *cobra.Command {
	opts := &auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Find class attributes that contain conflicting utilities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return runAudit(cmd, app, path, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.git, "git", false, "Read files from a git commit instead of the working tree")
	cmd.Flags().StringVar(&opts.revision, "rev", "HEAD", "Revision to read with --git")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&opts.fail, "fail", false, "Exit with an error when findings exist")

	return cmd
}

func runAudit(cmd *cobra.Command, app *appContext, path string, opts *auditOptions) error {
	var src audit.Source = audit.DirSource{Root: path}
	if opts.git {
		src = audit.GitSource{Path: path, Revision: opts.revision}
	}

	scanner := audit.NewScanner(app.merger, audit.Options{
		Extensions: app.cfg.Audit.Extensions,
		Ignore:     app.cfg.Audit.Ignore,
	}, app.log)

	report, err := scanner.Scan(cmd.Context(), src)
	if err != nil {
		return newCommandError("audit", path, err, "Check that the path exists; with --git it must be inside a repository with at least one commit.")
	}

	app.log.WithFields(map[string]any{
		"source":      report.Source,
		"files":       report.Files,
		"class_lists": report.ClassLists,
		"findings":    len(report.Findings),
	}).Info("audit complete")

	out := cmd.OutOrStdout()
	if opts.json {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return err
		}
	} else {
		ctx := components.DefaultContext().WithTheme(components.ThemeFor(isTerminal(out)))
		fmt.Fprintln(out, components.NewFindingList(report).ViewWithContext(ctx))
	}

	if opts.fail && len(report.Findings) > 0 {
		return fmt.Errorf("%w: %d found", errFindings, len(report.Findings))
	}
	return nil
}
