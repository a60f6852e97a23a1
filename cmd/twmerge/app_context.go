package main

import (
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/twmerge/internal/config"
	"github.com/alexisbeaulieu97/twmerge/internal/logger"
	"github.com/alexisbeaulieu97/twmerge/internal/metrics"
	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

// appContext holds the dependencies shared by every command. It is filled
// in by the root command before any subcommand runs.
type appContext struct {
	cfg      *config.Config
	log      *logger.Logger
	registry *prometheus.Registry
	merger   *twmerge.Merger
}

func (a *appContext) setup(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return newCommandError("load configuration", flags.configPath, err, "Fix the configuration file or omit --config to use defaults.")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	format, err := logger.ParseFormat(flags.logFormat, logger.FormatFor(cfg.Log.HumanReadable))
	if err != nil {
		return newCommandError("configure logging", "--log-format", err, "Use --log-format json or --log-format console.")
	}

	log, err := logger.New(logger.Options{Level: level, Format: format, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return newCommandError("configure logging", "level "+level, err, "Use one of trace, debug, info, warn or error.")
	}

	registry := prometheus.NewRegistry()
	observer, err := metrics.NewObserver(registry)
	if err != nil {
		return newCommandError("register metrics", "merge observer", err, "This is a bug; please report it.")
	}

	a.cfg = cfg
	a.log = log
	a.registry = registry
	a.merger = twmerge.New(
		twmerge.WithCacheSize(cfg.Merge.CacheSize),
		twmerge.WithObserver(observer),
	)

	log.WithFields(map[string]any{
		"config":     flags.configPath,
		"cache_size": cfg.Merge.CacheSize,
	}).Debug("configuration loaded")
	return nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
