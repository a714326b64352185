package main

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.8.12 init -g main.go -o docs

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/DhavalSuthar-24/crease/config"
	_ "github.com/DhavalSuthar-24/crease/docs"
	"github.com/DhavalSuthar-24/crease/internal/jobs"
	"github.com/DhavalSuthar-24/crease/internal/models"
	"github.com/DhavalSuthar-24/crease/routes"
)

const shutdownTimeout = 10 * time.Second

// @title Crease tournament scoring API
// @version 1.0
// @description Ball-by-ball scoring, results, standings and knockout progression for cricket tournaments.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey ScorerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	cfg := config.GetConfig()

	if err := config.DB.AutoMigrate(models.All()...); err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate failed")
	}
	log.Info().Msg("AutoMigrate successful")

	router, standingsService := routes.SetupRoutes(config.DB, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched, err := jobs.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}
	if cfg.Jobs.ReconcileEnabled {
		if _, err := sched.AddStandingsReconciler(ctx, standingsService, cfg.Jobs.ReconcileInterval); err != nil {
			log.Fatal().Err(err).Msg("Failed to register standings reconciler")
		}
	}
	sched.Start()

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.App.Port).Str("env", cfg.App.Env).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return sched.Stop()
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server exited with error")
	}
	log.Info().Msg("Server stopped")
}
