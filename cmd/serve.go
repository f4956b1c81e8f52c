package main

import (
	"context"
	"errors"
	"intake/internal/api"
	"intake/internal/api/handler/v1handler"
	"intake/internal/config"
	"intake/internal/credential"
	"intake/internal/ingest"
	"intake/internal/registry"
	"intake/internal/review"
	"intake/internal/sweeper"
	"intake/internal/worker"
	"intake/pkg/blob/fsblob"
	"intake/pkg/logger"
	"net/http"
	"os/signal"
	"syscall"

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

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := strg.Ping(ctx); err != nil {
				logger.Fatal(ctx, "could not reach postgres", zap.Error(err))
			}

			blobs, err := fsblob.New(cfg.Blob.Dir)
			if err != nil {
				logger.Fatal(ctx, "could not open blob store", zap.Error(err))
			}

			// workers drain on Stop rather than on the signal
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, blobs, cfg.Worker.MaxWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Ingest:      ingest.New(registry.New(strg), strg),
					Review:      review.New(strg),
					Credentials: credential.New(strg, credential.NewOptions(cfg)),
					Blobs:       blobs,
					Sweeper:     sweeper.New(strg, sweeper.NewOptions(cfg)),
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
