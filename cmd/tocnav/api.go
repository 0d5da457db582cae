package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfassina/tocnav/internal/api"
)

var apiListen string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the outline engine over HTTP",
	Long: `Start the HTTP API.

Endpoints:
  GET  /health               - health check
  POST /api/outline          - outline for content or a heading list
  POST /api/blacklist/toggle - toggle a path or its folder in a pattern list
  POST /api/blacklist/match  - test a path against a pattern list

Examples:
  tocnav api
  tocnav api --listen 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if apiListen != "" {
			cfg.Server.HTTPListen = apiListen
		}

		srv := &http.Server{
			Addr:              cfg.Server.HTTPListen,
			Handler:           api.NewServer(cfg, logger),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx := cmd.Context()
		errCh := make(chan error, 1)
		go func() {
			logger.Info("http listening", "addr", srv.Addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	apiCmd.Flags().StringVar(&apiListen, "listen", "", "listen address (default from config, :8090)")
	rootCmd.AddCommand(apiCmd)
}
