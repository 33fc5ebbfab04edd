package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/leengari/kidb/internal/api"
	"github.com/leengari/kidb/internal/engine"
	"github.com/leengari/kidb/internal/metrics"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the v1 HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			gin.SetMode(gin.ReleaseMode)

			m := metrics.New()
			m.SetTableRows(a.table.Len())
			eng := engine.New(a.table, engine.NewLoggingObserver(a.logger), m)

			srv := api.NewServer(eng, m, a.logger, api.Options{
				CORSOrigin:       a.cfg.Server.CORSOrigin,
				DefaultDeviation: a.cfg.Outlier.DefaultDeviation,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.Run(ctx, a.cfg.Server.Addr, a.cfg.Server.ShutdownTimeout); err != nil {
				a.logger.Error("server stopped", "error", err)
				return err
			}
			a.logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	return cmd
}
