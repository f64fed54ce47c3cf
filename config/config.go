package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Notification delivery backends
const (
	NotifyNone  = "none"
	NotifyRedis = "redis"
	NotifyKafka = "kafka"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	LogLevel    string
	// Token verification: HS256 shared secret and/or RS256 JWKS endpoint
	JWTSecret string
	JWKSURL   string
	// Redis
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	// Notification delivery after commit
	NotifyBackend string
	NotifyChannel string
	KafkaBrokers  []string
	KafkaTopic    string
	// Domain
	ResumeLimit     int
	BootstrapSchema bool
	MetricsEnabled  bool
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment wins
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWKSURL:     getEnv("JWKS_URL", ""),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		// Notifications
		NotifyBackend: strings.ToLower(getEnv("NOTIFY_BACKEND", NotifyNone)),
		NotifyChannel: getEnv("NOTIFY_CHANNEL", "job-notifications"),
		KafkaBrokers:  getEnvList("KAFKA_BROKERS", nil),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "job-notifications"),
		// Domain
		ResumeLimit:     getEnvInt("RESUME_LIMIT", 3),
		BootstrapSchema: getEnvBool("BOOTSTRAP_SCHEMA", false),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" && cfg.JWKSURL == "" {
		log.Println("WARNING: neither JWT_SECRET nor JWKS_URL is set. Every authenticated request will be rejected.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	switch cfg.NotifyBackend {
	case NotifyNone, NotifyRedis:
	case NotifyKafka:
		if len(cfg.KafkaBrokers) == 0 {
			log.Println("WARNING: NOTIFY_BACKEND=kafka without KAFKA_BROKERS. Falling back to none.")
			cfg.NotifyBackend = NotifyNone
		}
	default:
		log.Printf("WARNING: unknown NOTIFY_BACKEND %q. Falling back to none.", cfg.NotifyBackend)
		cfg.NotifyBackend = NotifyNone
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty items
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
