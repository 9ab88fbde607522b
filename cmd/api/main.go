// ABOUTME: Main entry point for the Keyword Intel API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"keyword-intel-api/api"
	"keyword-intel-api/api/handlers"
	"keyword-intel-api/core/datasets"
	"keyword-intel-api/core/discovery"
	"keyword-intel-api/core/interfaces"
	"keyword-intel-api/core/jobs"
	"keyword-intel-api/core/normalize"
	"keyword-intel-api/core/recheck"
	"keyword-intel-api/core/research"
	"keyword-intel-api/core/results"
	"keyword-intel-api/core/workers"
	"keyword-intel-api/infrastructure/cache/memory"
	"keyword-intel-api/infrastructure/cache/redis"
	"keyword-intel-api/infrastructure/credentials"
	stdhttp "keyword-intel-api/infrastructure/http/standard"
	"keyword-intel-api/infrastructure/logger/structured"
	"keyword-intel-api/infrastructure/storage/sqlite"
	"keyword-intel-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := structured.NewLogger(cfg.LogLevel)
	logger.Info("Starting Keyword Intel API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}
	defer cache.Close()

	// Create SQLite storage
	db, err := sqlite.NewClient(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer db.Close()

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := &interfaces.Dependencies{
		Cache:       cache,
		HTTPClient:  httpClient,
		Logger:      logger,
		Credentials: credentials.NewStaticTokenSource(cfg.Providers.BearerToken),
		Jobs:        sqlite.NewJobStore(db),
		Results:     sqlite.NewResultStore(db),
		Datasets:    sqlite.NewDatasetStore(db),
	}

	// Create services
	workingSet := research.NewStore()
	researchService := research.NewService(deps, workingSet, research.Options{
		AnalysisURL: cfg.Providers.AnalysisURL,
	})
	discoveryService := discovery.NewService(deps, discovery.Options{
		DiscoveryURL: cfg.Providers.DiscoveryURL,
	})
	jobService := jobs.NewService(deps)
	resultService := results.NewService(deps)
	recheckService := recheck.NewService(deps, recheck.Options{
		RecheckURL: cfg.Providers.RecheckURL,
	})
	datasetService := datasets.NewService(deps, workingSet, normalize.DefaultConfig())

	// Start the periodic recheck worker
	if cfg.Worker.RecheckIntervalMinutes > 0 {
		worker := workers.NewRecheckWorker(deps.Jobs, recheckService, logger, workers.RecheckWorkerConfig{
			Interval: time.Duration(cfg.Worker.RecheckIntervalMinutes) * time.Minute,
		})
		worker.Start()
		defer worker.Stop()
	}

	// Create API with middleware
	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:            logger,
		RequestsPerMinute: cfg.Server.RequestsPerMinute,
	})

	// Create and register handlers
	handlers.NewResearchHandler(researchService).RegisterRoutes(humaAPI)
	handlers.NewDiscoveryHandler(discoveryService).RegisterRoutes(humaAPI)
	handlers.NewJobHandler(jobService, resultService, recheckService).RegisterRoutes(humaAPI)
	handlers.NewDatasetHandler(datasetService).RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
