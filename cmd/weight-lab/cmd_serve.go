package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/drakos74/weight-lab/internal/experiment"
	"github.com/drakos74/weight-lab/internal/metrics"
	"github.com/drakos74/weight-lab/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the experiment over http",
		Long: `Serve exposes the experiment on every request, recomputing from the posted parameters:

  POST /api/simulate   trace for the given parameters
  POST /api/sweep      sensitivity rows for {"parameters": ..., "rates": [...]}
  POST /api/report     trace, sweep and summary
  GET  /api/defaults   the configured parameters and rates
  /data/...            grafana simple json datasource
  GET  /metrics        prometheus metrics`,
	}
	cmd.Flags().Int("port", 0, "Port to listen on (default from config)")
	cmd.Flags().Bool("debug", false, "Log the request payloads")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		port := cfg.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}
		debug, _ := cmd.Flags().GetBool("debug")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return newServer(experiment.New(cfg.Rates...).WithDefaults(cfg.Parameters), port, debug).Run(ctx)
	}
	return cmd
}

func newServer(svc *experiment.Service, port int, debug bool) *server.Server {
	ds := svc.Datasource()
	srv := server.NewServer("weight-lab", port)
	if debug {
		srv.Debug()
		ds.Debug()
	}
	return srv.
		Add(svc.Routes(debug)...).
		Add(ds.Routes()...).
		Mount("/metrics", metrics.Handler())
}
