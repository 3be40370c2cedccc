package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamyashpreet99/pitchside/internal/api"
	"github.com/iamyashpreet99/pitchside/internal/config"
	"github.com/iamyashpreet99/pitchside/internal/db"
	"github.com/iamyashpreet99/pitchside/internal/gamedata"
	"github.com/iamyashpreet99/pitchside/internal/jobs"
	"github.com/iamyashpreet99/pitchside/internal/logger"
	"github.com/iamyashpreet99/pitchside/internal/repository/sqlite"
	"github.com/iamyashpreet99/pitchside/internal/services"
	"github.com/iamyashpreet99/pitchside/internal/worker"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Pitchside Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("sim_worker_count=%d", cfg.SimWorkerCount)
	log.Debug("sim_queue_size=%d", cfg.SimQueueSize)
	log.Debug("shot_resolve_delay_ms=%d", cfg.ShotResolveDelayMs)
	log.Debug("session_limit=%d", cfg.SessionLimit)

	// Load reference data
	store, err := gamedata.Load()
	if err != nil {
		log.Error("failed to load game data: %v", err)
		os.Exit(1)
	}
	log.Info("game data loaded: %d teams, %d shots", len(store.Teams()), len(store.Shots()))

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories
	matchRecords := sqlite.NewMatchRecordRepository(database.DB)
	simulations := sqlite.NewSimulationRepository(database.DB)

	// Worker pool for simulation batches
	simPool := worker.NewPool(cfg.SimWorkerCount, cfg.SimQueueSize)

	// Services
	matchService := services.NewMatchService(store, matchRecords,
		time.Duration(cfg.ShotResolveDelayMs)*time.Millisecond, cfg.SessionLimit)
	simulationService := services.NewSimulationService(store, simulations)
	queue := jobs.NewWorkerQueue(simPool, simulationService)

	srv := &api.Server{
		Store:       store,
		Matches:     matchService,
		Simulations: simulationService,
		Queue:       queue,
		SimPool:     simPool,
	}

	ctx, cancel := context.WithCancel(context.Background())
	simPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Cancel worker context
	log.Debug("stopping worker pool")
	cancel()

	// Shutdown HTTP server
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Wait for workers to finish
	simPool.Stop()

	log.Info("===========================================")
	log.Info("Pitchside Server Stopped")
	log.Info("===========================================")
}
