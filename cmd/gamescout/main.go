package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/meeplelab/gamescout/internal/config"
	"github.com/meeplelab/gamescout/internal/dataset"
	dbRedis "github.com/meeplelab/gamescout/internal/db/redis"
	logpkg "github.com/meeplelab/gamescout/internal/logger"
	"github.com/meeplelab/gamescout/internal/metrics"
	catalogrepo "github.com/meeplelab/gamescout/internal/repository/catalog"
	neighborsrepo "github.com/meeplelab/gamescout/internal/repository/neighbors"
	"github.com/meeplelab/gamescout/internal/session"
	chiTransport "github.com/meeplelab/gamescout/internal/transport/chi"
	compareuc "github.com/meeplelab/gamescout/internal/usecase/compare"
	discoveruc "github.com/meeplelab/gamescout/internal/usecase/discover"
	exploreuc "github.com/meeplelab/gamescout/internal/usecase/explore"
	healthuc "github.com/meeplelab/gamescout/internal/usecase/health"
	insightsuc "github.com/meeplelab/gamescout/internal/usecase/insights"
	searchuc "github.com/meeplelab/gamescout/internal/usecase/search"
	"github.com/meeplelab/gamescout/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting gamescout API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("data_source", cfg.Data.Source),
	)

	ctx := context.Background()

	// Select the dataset source and load everything up front. The service
	// only serves a fully materialized catalog.
	var source dataset.Source
	var dbPinger healthuc.DBPinger
	switch cfg.Data.Source {
	case "redis":
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Data.Addrs,
			Password: cfg.Data.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Data.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		logger.Info("Connected to database")

		source = dataset.NewRedisSource(store, cfg.Data.KeyPrefix)
		dbPinger = store
	case "file":
		source = &dataset.FileSource{
			GamesPath:        cfg.Data.GamesPath,
			NeighborsPath:    cfg.Data.NeighborsPath,
			DescriptionsPath: cfg.Data.DescriptionsPath,
		}
	default:
		logger.Fatal("Unknown data source", zap.String("source", cfg.Data.Source))
	}

	loadStart := time.Now()
	ds, err := source.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}
	logger.Info("Dataset loaded",
		zap.Int("games", len(ds.Games)),
		zap.Int("neighbor_lists", len(ds.Neighbors)),
		zap.Duration("took", time.Since(loadStart)),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()
	metrics.DatasetGames.Set(float64(len(ds.Games)))
	metrics.DatasetNeighborLists.Set(float64(len(ds.Neighbors)))

	// Create repositories
	catalog := catalogrepo.New(ds.Games)
	index := neighborsrepo.New(ds.Neighbors)

	// Create use case services
	searchSvc := searchuc.New(catalog, index)
	exploreSvc := exploreuc.New(catalog, cfg.Search.SuggestLimit)
	discoverSvc := discoveruc.New(catalog, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	compareSvc := compareuc.New(catalog)
	insightsSvc := insightsuc.New(catalog, cfg.Search.WordCloudLimit)
	healthSvc := healthuc.New(catalog, dbPinger)

	// Session state and outcome fan-out — composition root
	state := session.NewState()
	dispatcher := session.NewDispatcher()
	dispatcher.Register(state)
	dispatcher.Register(metrics.SearchRecorder{})

	server := chiTransport.NewServer(
		exploreSvc, searchSvc, discoverSvc, compareSvc, insightsSvc, healthSvc,
		state, dispatcher, cfg.Search.MaxLimit, logger,
	)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
