package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"campaigner/internal/api"
	"campaigner/internal/api/handler/v1handler"
	"campaigner/internal/campaign"
	"campaigner/internal/config"
	"campaigner/internal/editor"
	"campaigner/internal/estimator"
	"campaigner/internal/reporting"
	"campaigner/internal/worker"
	"campaigner/pkg/beefree/beefreeapi"
	"campaigner/pkg/logger"
	"campaigner/pkg/metrics"
	"campaigner/pkg/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.Setup(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not setup metrics", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			var cache storage.TokenCache
			rds, closeRedis, err := getRedis(ctx, cfg)
			if err != nil {
				logger.Warn(ctx, "token cache unavailable, editor tokens will not be cached", zap.Error(err))
			} else {
				cache = rds
				defer closeRedis()
			}

			vendor := beefreeapi.New(&http.Client{Timeout: cfg.Editor.HTTPTimeout}, beefreeapi.Options{
				AuthURL:       cfg.Editor.AuthURL,
				ConversionURL: cfg.Editor.ConversionURL,
				ClientID:      cfg.Editor.ClientID,
				ClientSecret:  cfg.Editor.ClientSecret,
				APIKey:        cfg.Editor.APIKey,
			})

			est, err := estimator.New(strg, estimator.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create estimator", zap.Error(err))
			}
			campaigns := campaign.New(strg, est, campaign.NewOptions(cfg))

			workerOpts := worker.NewOptions(cfg)
			riverClient, err := worker.Start(ctx, strg.Pool, worker.Workers(vendor, campaigns, workerOpts), workerOpts)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Campaigns: campaigns,
				Estimator: est,
				Reporter:  reporting.New(strg),
				Editor:    editor.New(vendor, cache, editor.NewOptions(cfg)),
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
