package api

import (
	"github.com/textproof/textproof/internal/config"
	"github.com/textproof/textproof/internal/infra/redis"
	"github.com/textproof/textproof/internal/plagiarism"
	"github.com/textproof/textproof/internal/repository"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	cfg *config.Config,
	scanner *plagiarism.Scanner,
	scansRepo *repository.ScansRepository,
	docsRepo *repository.DocumentsRepository,
	redisClient *redis.Client,
) *gin.Engine {
	router := gin.Default()

	// Create handler
	handler := NewHandler(cfg, scanner, scansRepo, docsRepo, redisClient)

	// Create rate limiter
	rateLimiter := NewRateLimiter(cfg.RateLimitRPS, int(cfg.RateLimitRPS*2))

	// Middleware
	router.Use(ErrorHandlerMiddleware())

	// Health endpoint (no auth)
	router.GET("/health", handler.Health)

	// API routes (with auth and rate limiting)
	api := router.Group("/api/v1")
	api.Use(JWTAuthMiddleware(cfg.JWTSecret))
	api.Use(RateLimitMiddleware(rateLimiter))
	{
		api.POST("/scan", handler.Scan)
		api.POST("/compare", handler.Compare)
		api.GET("/scans", handler.ListScans)
		api.GET("/scans/:id", handler.GetScan)
		api.POST("/documents", handler.CreateDocument)
		api.GET("/documents", handler.ListDocuments)
		api.DELETE("/documents/:id", handler.DeleteDocument)
	}

	return router
}
