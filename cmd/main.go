package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/textproof/textproof/internal/api"
	"github.com/textproof/textproof/internal/config"
	"github.com/textproof/textproof/internal/configs/env"
	"github.com/textproof/textproof/internal/infra/mongo"
	redisInfra "github.com/textproof/textproof/internal/infra/redis"
	"github.com/textproof/textproof/internal/logger"
	"github.com/textproof/textproof/internal/metrics"
	"github.com/textproof/textproof/internal/plagiarism"
	"github.com/textproof/textproof/internal/repository"
	"github.com/textproof/textproof/internal/search"
	"github.com/textproof/textproof/internal/vault"
)

func main() {
	if err := env.LoadEnv(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env file, continuing with system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	logger.Init(cfg.LogLevel)
	log.Info().Msg("Starting textproof server")

	// Initialize Prometheus metrics
	metrics.InitPrometheus()

	// Start metrics server in separate goroutine
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: metricsMux,
	}
	go func() {
		log.Info().Str("port", cfg.MetricsPort).Msg("Metrics server started")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Metrics server failed to start")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect MongoDB
	mongoClient, err := mongo.NewClient(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create MongoDB client")
	}
	defer mongoClient.Close(ctx)

	// Connect Redis
	redisClient, err := redisInfra.NewClient(ctx, cfg.RedisHost, cfg.RedisPassword, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Redis client")
	}
	defer redisClient.Close()

	// Initialize repositories
	mongoRepo := repository.NewMongoRepository(mongoClient)
	docsRepo := repository.NewDocumentsRepository(mongoRepo)
	scansRepo := repository.NewScansRepository(mongoRepo)

	// Vault service resolves per-scan comparison corpora
	vaultSvc := vault.NewService(docsRepo)

	// Web search collaborator; scans degrade to vault-only when the
	// search API is not configured
	var webSearcher plagiarism.WebSearcher
	if cfg.SearchAPIKey != "" && cfg.SearchEngineID != "" {
		webSearcher = search.NewGoogleClient(cfg.SearchEndpoint, cfg.SearchAPIKey, cfg.SearchEngineID, redisClient, cfg.SearchCacheTTL)
		log.Info().Str("endpoint", cfg.SearchEndpoint).Msg("Web search enabled")
	} else {
		log.Warn().Msg("SEARCH_API_KEY / SEARCH_ENGINE_ID not set, web search disabled")
	}

	// Initialize worker pool
	workerPool := plagiarism.NewWorkerPool(ctx)
	defer workerPool.Close()

	scanner := plagiarism.NewScanner(cfg.Thresholds(), vaultSvc, webSearcher, workerPool)

	router := api.SetupRoutes(cfg, scanner, scansRepo, docsRepo, redisClient)

	// Start Gin server
	srv := api.StartServer(router, cfg.ServerPort)

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down gracefully...")

	if err := api.ShutdownServer(srv, 30*time.Second); err != nil {
		log.Error().Err(err).Msg("Error shutting down Gin server")
	}

	metricsCtx, metricsCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer metricsCancel()
	if err := metricsServer.Shutdown(metricsCtx); err != nil {
		log.Error().Err(err).Msg("Error shutting down metrics server")
	}

	log.Info().Msg("Shutdown complete")
}
