package config

import (
	"fmt"
	"time"

	"github.com/textproof/textproof/internal/configs/env"
)

// Config holds all configuration for the application
type Config struct {
	// MongoDB
	MongoURI    string
	MongoDBName string

	// Redis
	RedisHost      string
	RedisPassword  string
	StatusTTL      time.Duration
	SearchCacheTTL time.Duration

	// Web Search (Google Custom Search)
	SearchEndpoint string
	SearchAPIKey   string
	SearchEngineID string

	// JWT
	JWTSecret string
	JWTIssuer string

	// Rate Limiting
	RateLimitRPS float64

	// Concurrency
	MaxConcurrentScans int

	// Scan
	ScanTimeout   time.Duration
	MinScanLength int

	// Similarity Thresholds
	VaultScoreThreshold int
	WebScoreThreshold   int
	HighScoreThreshold  int

	// Logging
	LogLevel string

	// Server
	ServerPort  string
	MetricsPort string
}

func Load() (*Config, error) {
	cfg := &Config{}

	// MongoDB
	cfg.MongoURI = env.GetEnv("MONGO_URI", "")
	cfg.MongoDBName = env.GetEnv("MONGO_DB_NAME", "")

	// Redis
	cfg.RedisHost = env.GetEnv("REDIS_HOST", "localhost:6379")
	cfg.RedisPassword = env.GetEnv("REDIS_PASSWORD", "")
	statusHours := env.GetEnvInt("SCAN_STATUS_TTL_HOURS", 12)
	cfg.StatusTTL = time.Duration(statusHours) * time.Hour
	cacheMinutes := env.GetEnvInt("SEARCH_CACHE_TTL_MINUTES", 60)
	cfg.SearchCacheTTL = time.Duration(cacheMinutes) * time.Minute

	// Web Search
	cfg.SearchEndpoint = env.GetEnv("SEARCH_ENDPOINT", "https://www.googleapis.com/customsearch/v1")
	cfg.SearchAPIKey = env.GetEnv("SEARCH_API_KEY", "")
	cfg.SearchEngineID = env.GetEnv("SEARCH_ENGINE_ID", "")

	// JWT
	cfg.JWTSecret = env.GetEnv("JWT_SECRET", "")
	cfg.JWTIssuer = env.GetEnv("JWT_ISSUER", "textproof")

	// Rate Limiting
	cfg.RateLimitRPS = env.GetEnvFloat("RATE_LIMIT_RPS", 10.0)

	// Concurrency
	cfg.MaxConcurrentScans = env.GetEnvInt("MAX_CONCURRENT_SCANS", 5)

	// Scan
	timeoutSeconds := env.GetEnvInt("SCAN_TIMEOUT_SECONDS", 60)
	cfg.ScanTimeout = time.Duration(timeoutSeconds) * time.Second
	cfg.MinScanLength = env.GetEnvInt("MIN_SCAN_LENGTH", 20)

	// Similarity Thresholds
	cfg.VaultScoreThreshold = env.GetEnvInt("VAULT_SCORE_THRESHOLD", 5)
	cfg.WebScoreThreshold = env.GetEnvInt("WEB_SCORE_THRESHOLD", 15)
	cfg.HighScoreThreshold = env.GetEnvInt("HIGH_SCORE_THRESHOLD", 60)

	// Logging
	cfg.LogLevel = env.GetEnv("LOG_LEVEL", "info")

	// Server
	cfg.ServerPort = env.GetEnv("SERVER_PORT", "8080")
	cfg.MetricsPort = env.GetEnv("METRICS_PORT", "2112")

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.MongoDBName == "" {
		return fmt.Errorf("MONGO_DB_NAME is required")
	}
	if c.RedisHost == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.MaxConcurrentScans <= 0 {
		return fmt.Errorf("MAX_CONCURRENT_SCANS must be greater than 0")
	}
	if c.MinScanLength <= 0 {
		return fmt.Errorf("MIN_SCAN_LENGTH must be greater than 0")
	}
	if c.WebScoreThreshold < c.VaultScoreThreshold {
		return fmt.Errorf("WEB_SCORE_THRESHOLD must not be lower than VAULT_SCORE_THRESHOLD")
	}
	return nil
}

// Thresholds is the slice of Config the similarity pipeline cares about.
// Lifting the score bands out of the algorithm code keeps them tunable
// and independently testable.
type Thresholds struct {
	VaultMinScore int
	WebMinScore   int
	HighScore     int
	MinScanLength int
}

func (c *Config) Thresholds() Thresholds {
	return Thresholds{
		VaultMinScore: c.VaultScoreThreshold,
		WebMinScore:   c.WebScoreThreshold,
		HighScore:     c.HighScoreThreshold,
		MinScanLength: c.MinScanLength,
	}
}
