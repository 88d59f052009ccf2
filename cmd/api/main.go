package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/folio-lab/portfolio-backend/config"
	"github.com/folio-lab/portfolio-backend/internal/bootstrap"
	"github.com/folio-lab/portfolio-backend/internal/logging"
)

const serviceName = "portfolio-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Setup(cfg.App.Environment, cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	fs, err := bootstrap.OpenFirestore(ctx, cfg.Firebase)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Firestore")
	}
	if fs != nil {
		defer fs.Close()
	} else {
		log.Warn().Msg("FIREBASE_PROJECT_ID not set; contact form is disabled")
	}

	model, err := bootstrap.OpenModel(ctx, cfg.LLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize model client")
	}

	svcs, err := bootstrap.BuildServices(ctx, cfg, model, rdb, fs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build services")
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Config:      cfg,
		Services:    svcs,
		Redis:       rdb,
		Firestore:   fs,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Server.Port).Str("env", cfg.App.Environment).Msg("Starting server")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		svcs.Contact.Wait()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
