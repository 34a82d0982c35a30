package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Dictionary source. DictionaryURL selects the hosted HTTP store;
	// DictionaryPath selects a local sqlite file. At most one is set.
	DictionaryURL    string
	DictionaryAPIKey string
	DictionaryPath   string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Chunking defaults
	DefaultChunkTokens  int
	DefaultChunkOverlap int
	DefaultChunkMode    string

	// Spell checking
	ZawgyiDocThreshold  float64
	ZawgyiWordThreshold float64
	MaxEditDistance     int
	MaxSuggestions      int

	// Job state
	JobTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("MANUSCRIPT_API_KEY"),

		DictionaryURL:    os.Getenv("DICTIONARY_URL"),
		DictionaryAPIKey: os.Getenv("DICTIONARY_API_KEY"),
		DictionaryPath:   os.Getenv("DICTIONARY_SQLITE_PATH"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		DefaultChunkTokens:  envInt("DEFAULT_CHUNK_TOKENS", 500),
		DefaultChunkOverlap: envInt("DEFAULT_CHUNK_OVERLAP", 50),
		DefaultChunkMode:    envOr("DEFAULT_CHUNK_MODE", "token"),

		ZawgyiDocThreshold:  envFloat("ZAWGYI_DOC_THRESHOLD", 0.95),
		ZawgyiWordThreshold: envFloat("ZAWGYI_WORD_THRESHOLD", 0.5),
		MaxEditDistance:     envInt("MAX_EDIT_DISTANCE", 2),
		MaxSuggestions:      envInt("MAX_SUGGESTIONS", 5),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DefaultChunkTokens <= 0 {
		cfg.DefaultChunkTokens = 500
	}
	if cfg.DefaultChunkOverlap < 0 {
		cfg.DefaultChunkOverlap = 50
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("MANUSCRIPT_API_KEY is required")
	}
	if c.DictionaryURL != "" && c.DictionaryPath != "" {
		return fmt.Errorf("DICTIONARY_URL and DICTIONARY_SQLITE_PATH are mutually exclusive")
	}
	switch c.DefaultChunkMode {
	case "token", "sentence", "paragraph":
	default:
		return fmt.Errorf("DEFAULT_CHUNK_MODE must be token, sentence, or paragraph, got %q", c.DefaultChunkMode)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
