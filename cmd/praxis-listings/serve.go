// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/praxis-listings/internal/loader"
	"github.com/pdiddy/praxis-listings/internal/logging"
	"github.com/pdiddy/praxis-listings/internal/pagination"
	"github.com/pdiddy/praxis-listings/internal/server"
	"github.com/pdiddy/praxis-listings/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve listings over HTTP",
	Long: `Serve loads every configured source and answers listing queries over HTTP:

  GET /api/listings/{kind}?category=&window=&q=&sort=&page=&limit=
  GET /api/listings/{kind}/facets
  GET /healthz
  GET /metrics

Sources come from serve.sources in the config file and from repeated
--source kind=location flags. With --refresh (a cron spec such as
"*/15 * * * *") the sources are reloaded on schedule; a failed reload keeps
the previous listings.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(flagString(cmd, "log-level"))
	if err != nil {
		return err
	}
	logger := logging.NewLogger(os.Stderr, flagString(cmd, "log-format"), level)
	slog.SetDefault(logger)

	sources := cfg.Serve.Sources
	flagSources, _ := cmd.Flags().GetStringArray("source")
	for _, s := range flagSources {
		src, err := parseSourceFlag(s)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}
	if len(sources) == 0 {
		return fmt.Errorf("no sources: set serve.sources or pass --source kind=location")
	}

	addr := cfg.Serve.Addr
	if cmd.Flags().Changed("addr") {
		addr = flagString(cmd, "addr")
	}
	refresh := cfg.Serve.Refresh
	if cmd.Flags().Changed("refresh") {
		refresh = flagString(cmd, "refresh")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := server.NewCatalog(loader.New(cfg.Loader), sources, logger)
	if err := catalog.Reload(ctx); err != nil {
		return err
	}
	if refresh != "" {
		if _, err := catalog.ScheduleReload(ctx, refresh, cfg.Loader.Timeout*time.Duration(len(sources))); err != nil {
			return err
		}
		logger.Info("scheduled reloads", slog.String("schedule", refresh))
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(catalog, pagination.FromSettings(cfg.Pagination), logger, nil).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", addr), slog.Int("sources", len(sources)))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// parseSourceFlag accepts "kind=location" or a bare location whose kind
// comes from the data file.
func parseSourceFlag(s string) (types.Source, error) {
	kind, location, found := strings.Cut(s, "=")
	if !found || strings.Contains(kind, "/") || strings.Contains(kind, ":") {
		return types.Source{Location: s}, nil
	}
	k, err := types.ParseKind(kind)
	if err != nil {
		return types.Source{}, fmt.Errorf("--source %s: %w", s, err)
	}
	return types.Source{Kind: k, Location: location}, nil
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("refresh", "", "cron schedule for reloading sources (empty disables)")
	serveCmd.Flags().StringArray("source", nil, "listing source as kind=location (repeatable)")
	serveCmd.Flags().String("log-level", "info", "log level: debug, info, warn, error")
	serveCmd.Flags().String("log-format", "json", "log format: json or text")

	rootCmd.AddCommand(serveCmd)
}
