package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"hotel-reservation-api/config"
	"hotel-reservation-api/jobs"
	"hotel-reservation-api/routes"
)

// @title        Hotel Reservation API
// @version      1.0
// @description  Clients, rooms and reservations of a hotel.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app, err := config.InitApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer app.Logger.Sync()

	deps := routes.Dependencies{
		DB:      app.DB,
		Redis:   app.Redis,
		Melody:  app.Melody,
		Logger:  app.Logger,
		Limiter: app.Limiter,
	}
	svc := routes.NewServices(deps)
	routes.SetupRoutes(app.Router, deps, svc)

	sweep := jobs.CompletionSweep{
		Enabled:  cfg.CompletionSweepEnabled,
		Schedule: cfg.CompletionSweepSchedule,
		Location: time.UTC,
	}
	if err := jobs.InitCronJobs(app.Cron, sweep, svc.Reservations, app.Logger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		app.Logger.Info("server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	app.Logger.Info("shutting down")

	<-app.Cron.Stop().Done()
	if err := app.Melody.Close(); err != nil {
		app.Logger.Warn("close websocket hub: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error("server shutdown: %v", err)
	}
	if app.Redis != nil {
		_ = app.Redis.Close()
	}
	if sqlDB, err := app.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
