package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/lumen-ui/lumen/pkg/live"
	"github.com/lumen-ui/lumen/pkg/lumen"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		title   string
		devMode bool
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the widget gallery",
		Long: `Serve the widget gallery over HTTP with live WebSocket updates.

Prometheus metrics are exposed on /metrics and a health check on
/healthz.

Examples:
  lumen serve
  lumen serve --addr=:9000 --dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, title, devMode, tracing)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8420", "Address to listen on")
	cmd.Flags().StringVarP(&title, "title", "t", "Lumen gallery", "Page title")
	cmd.Flags().BoolVar(&devMode, "dev", false, "Enable development diagnostics")
	cmd.Flags().BoolVar(&tracing, "trace", false, "Trace event dispatches with OpenTelemetry")

	return cmd
}

func runServe(addr, title string, devMode, tracing bool) error {
	lumen.DevMode = devMode

	opts := []live.Option{
		live.WithAddress(addr),
		live.WithPageTitle(title),
		live.WithLogger(slog.Default().With("component", "live")),
		live.WithMetrics(live.NewMetrics()),
	}
	if tracing {
		opts = append(opts, live.WithTracer(otel.Tracer("lumen")))
	}

	srv := live.NewServer(newCrustPicker, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}
