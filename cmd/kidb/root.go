package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leengari/kidb/internal/config"
	"github.com/leengari/kidb/internal/domain/schema"
	"github.com/leengari/kidb/internal/logging"
	"github.com/leengari/kidb/internal/storage/loader"
)

// app is the state shared by every subcommand once the table is loaded
type app struct {
	configPath string
	dbPath     string
	logLevel   string

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func()
	table    *schema.Table
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kidb",
		Short:         "Query receptor binding affinities (Ki) from a CSV table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	flags.StringVar(&a.dbPath, "database", "", "CSV data file, overrides database.path")
	flags.StringVar(&a.logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR, overrides log.level")

	rootCmd.AddCommand(
		newServeCmd(a),
		newLigandsCmd(a),
		newReceptorsCmd(a),
		newKiCmd(a),
	)
	return rootCmd
}

// setup resolves config, builds the logger and loads the table
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Database.Path = a.dbPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg

	// stdout carries query results, so logs go to stderr
	a.logger, a.closeLog = logging.SetupLogger(logging.Options{
		Level:  cfg.Log.Level,
		SeqURL: cfg.Log.SeqURL,
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(a.logger)

	table, err := loader.LoadFile(cfg.Database.Path, a.logger)
	if err != nil {
		a.logger.Error("failed to load table", "path", cfg.Database.Path, "error", err)
		return err
	}
	a.table = table
	return nil
}

// execute runs the command tree. Cobra skips post-run hooks when a command
// fails, so the logger is flushed here on every path.
func execute(a *app, cmd *cobra.Command) error {
	defer a.close()
	return cmd.Execute()
}

// close flushes pending log batches once
func (a *app) close() {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}
