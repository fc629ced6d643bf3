// Copyright 2026 The Rightsdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rightsdash/rightsdash/internal/config"
	"github.com/rightsdash/rightsdash/internal/metrics"
	"github.com/rightsdash/rightsdash/internal/server"
)

// Serve command flags.
var (
	serveFlags datasetFlags
	serveAddr  string
)

// onServeListening is called with the bound address once the listener is
// open. Tests use it to learn the port.
var onServeListening = func(net.Addr) {}

// serveCmd serves the dashboard over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard over HTTP",
	Long: `Load the dataset once and serve the dashboard until interrupted.

Routes:
  GET /                     HTML dashboard (?field=&continent=)
  GET /api/fields           selectable fields and the default field
  GET /api/continents       continent choices, ALL first
  GET /api/bar?field=       stacked bar chart data
  GET /api/waffle?field=&continent=
                            waffle chart data
  GET /api/view?field=&continent=
                            both charts
  GET /healthz              liveness
  GET /metrics              Prometheus metrics

SIGINT or SIGTERM shuts the server down gracefully.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveFlags.register(serveCmd.Flags())
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default "+config.DefaultAddr+")")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cli, err := serveFlags.settings()
	if err != nil {
		return err
	}
	cli.Addr = serveAddr
	settings, err := resolveSettings(cli)
	if err != nil {
		return err
	}
	dash, tbl, err := loadDashboard(settings)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)
	m.SetDatasetRows(tbl.Len())

	srv := server.New(dash, server.Options{
		Logger:   slog.Default(),
		Metrics:  m,
		Gatherer: reg,
	})
	httpSrv := server.NewHTTPServer(settings.Addr, srv.Handler())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", settings.Addr)
	if err != nil {
		return exitError(ExitServeFailure, "rightsdash: listen on %s: %v", settings.Addr, err)
	}
	slog.Info("serving dashboard", "addr", ln.Addr().String())
	onServeListening(ln.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
		defer cancel()
		slog.Info("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return exitError(ExitServeFailure, "rightsdash: serve: %v", err)
	}
	return nil
}
