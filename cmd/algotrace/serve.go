package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/internal/cache"
	"github.com/katalvlaran/algotrace/internal/httpapi"
	"github.com/katalvlaran/algotrace/internal/metrics"
)

// shutdownTimeout gives outstanding requests a deadline for completion.
const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  `Serves /karatsuba, /closest-pair, the upload endpoints and /metrics as JSON over HTTP.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
			}

			store, err := cache.Open(a.cfg.Cache)
			if err != nil {
				return err
			}
			defer store.Close()
			if rs, ok := store.(*cache.Redis); ok {
				ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
				err := rs.Ping(ctx)
				cancel()
				if err != nil {
					return err
				}
			}

			handler := httpapi.NewHandler(httpapi.Deps{
				Limits:         a.cfg.Limits,
				AllowedOrigins: a.cfg.Server.AllowedOrigins,
				Cache:          store,
				Metrics:        metrics.New(),
				Logger:         a.log,
			})
			srv := &http.Server{
				Addr:         a.cfg.Server.Addr,
				Handler:      handler,
				ReadTimeout:  a.cfg.Server.ReadTimeout.Std(),
				WriteTimeout: a.cfg.Server.WriteTimeout.Std(),
			}

			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, srv, ln, a.log)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default from config, :8000)")

	return cmd
}

// runServer serves on ln until ctx is done, then shuts srv down gracefully.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener, log *slog.Logger) error {
	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		log.Info("shutting down", "reason", context.Cause(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("close server: %w", err)
			}
		}
		log.Info("server stopped")

		return nil
	}
}
