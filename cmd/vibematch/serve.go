package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonwraymond/vibematch/config"
	"github.com/jonwraymond/vibematch/registry"
)

// version is reported in the MCP initialize response.
var version = "dev"

const shutdownTimeout = 5 * time.Second

func (a *app) newServeCmd() *cobra.Command {
	var (
		transport string
		addr      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the matcher as MCP tools over stdio or HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("transport") {
				a.cfg.Server.Transport = strings.ToLower(transport)
			}
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}

			m, err := a.newMatcher()
			if err != nil {
				return err
			}
			defer closeMatcher(m, a.logger)

			reg := registry.New(registry.Config{
				ServerInfo: registry.ServerInfo{Name: "vibematch", Version: version},
				Logger:     a.logger,
			})
			if err := registry.RegisterMatcherTools(reg, m); err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := reg.Start(ctx); err != nil {
				return err
			}
			defer func() {
				if err := reg.Stop(); err != nil {
					a.logger.Warn("stop registry", zap.Error(err))
				}
			}()

			switch a.cfg.Server.Transport {
			case config.TransportHTTP:
				return a.serveHTTP(ctx, reg)
			default:
				a.logger.Info("serving MCP over stdio")
				return registry.ServeStdio(ctx, reg)
			}
		},
	}

	cmd.Flags().StringVar(&transport, "transport", config.TransportStdio, "transport: stdio or http")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address for the http transport")
	return cmd
}

func (a *app) serveHTTP(ctx context.Context, reg *registry.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("POST /mcp", registry.ServeHTTP(reg))
	mux.Handle("POST /sse", registry.ServeSSE(reg))
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := reg.HealthCheck(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		fmt.Fprintln(w, "ok")
	})

	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("serving MCP over http",
			zap.String("addr", srv.Addr),
			zap.Strings("endpoints", []string{"POST /mcp", "POST /sse", "GET /health"}))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	}
}
