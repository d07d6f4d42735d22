package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	AuthToken       string
	AIAPIKey        string
	GenModel        string
	UploadDir       string
	DownloadTimeout time.Duration
	MaxParallel     int
	LogLevel        string
	Env             string
}

// LoadConfig loads the environment variables and returns the config.
// The returned object is constructed once at startup and injected into
// every component; nothing reads the environment after this point.
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		AuthToken:       getEnv("API_AUTH_TOKEN", ""),
		AIAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GenModel:        getEnv("GEN_MODEL", "gemini-1.5-flash"),
		UploadDir:       getEnv("UPLOAD_DIR", os.TempDir()),
		DownloadTimeout: getEnvDuration("DOWNLOAD_TIMEOUT", 30*time.Second),
		MaxParallel:     getEnvInt("MAX_PARALLEL_QUESTIONS", 5),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Env:             getEnv("APP_ENV", "development"),
	}

	if cfg.AuthToken == "" {
		log.Fatal("API_AUTH_TOKEN not set")
	}
	if cfg.AIAPIKey == "" {
		log.Fatal("GEMINI_API_KEY not set")
	}

	return cfg
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("WARN: %s=%q not a duration, using default %s", key, v, def)
		return def
	}
	return d
}
