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
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/fairs/internal/metrics"
	"github.com/mmynk/fairs/internal/middleware"
	"github.com/mmynk/fairs/internal/service"
	"github.com/mmynk/fairs/internal/storage"
	"github.com/mmynk/fairs/pkg/api/apiconnect"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local Connect API for the app",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().String("listen-addr", "", "address to listen on (default 127.0.0.1:8080)")
	cmd.Flags().Bool("metrics", true, "expose Prometheus metrics at /metrics")
	a.v.BindPFlag("listen_addr", cmd.Flags().Lookup("listen-addr"))
	a.v.BindPFlag("metrics_enabled", cmd.Flags().Lookup("metrics"))
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	store, err := a.openStore()
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", a.cfg.DBPath)

	settings := service.NewSettingsService(store)
	if err := settings.EnsureDefaults(ctx, a.cfg.Currency); err != nil {
		slog.Error("Failed to store default settings", "error", err)
		return err
	}

	var m *metrics.Metrics
	if a.cfg.MetricsEnabled {
		m = metrics.New()
	}

	handler := newHandler(store, settings, m, a.cfg.CORSAllowedOrigins)

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if !isLoopback(a.cfg.ListenAddr) {
		slog.Warn("Listening beyond loopback; the API has no authentication", "address", a.cfg.ListenAddr)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", a.cfg.ListenAddr, "metrics", m != nil)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", a.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
		return err
	}
	return nil
}

// newHandler registers every Connect service, /metrics and /healthz.
func newHandler(store storage.Store, settings *service.SettingsService, m *metrics.Metrics, origins []string) http.Handler {
	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewGroupServiceHandler(service.NewGroupService(store), interceptors))
	mux.Handle(apiconnect.NewSplitServiceHandler(service.NewSplitService(store), interceptors))
	mux.Handle(apiconnect.NewReceiptServiceHandler(service.NewReceiptService(store, m), interceptors))
	mux.Handle(apiconnect.NewSettingsServiceHandler(settings, interceptors))

	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return middleware.Logging(middleware.CORS(origins)(mux))
}

func isLoopback(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
