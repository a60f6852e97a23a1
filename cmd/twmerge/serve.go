package main

import (
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/twmerge/internal/server"
)

func newServeCmd(app *appContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the merger over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.cfg.Server.Addr
			}

			if err := app.registry.Register(collectors.NewGoCollector()); err != nil {
				return newCommandError("serve", "registering Go collector", err, "This is a bug; please report it.")
			}
			if err := app.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
				return newCommandError("serve", "registering process collector", err, "This is a bug; please report it.")
			}

			srv := server.New(server.Options{
				Addr:         addr,
				ReadTimeout:  app.cfg.Server.ReadTimeout(),
				MaxBodyBytes: app.cfg.Server.MaxBodyBytes,
				Merger:       app.merger,
				Logger:       app.log,
				Gatherer:     app.registry,
			})
			if err := srv.ListenAndServe(cmd.Context()); err != nil {
				return newCommandError("serve", addr, err, "Choose a free address with --addr or server.addr in the config file.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}
