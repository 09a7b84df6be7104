package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// HTTPTimeout bounds every outbound call (upstream feeds and the
	// summarization endpoint). There are no retries; a call that times
	// out simply fails its layer for that cycle.
	HTTPTimeout time.Duration

	// DefaultCity parameterizes the weather and air quality layers when
	// the user provides no place name.
	DefaultCity string

	// NewsQuery is the fixed search term for the news feed.
	NewsQuery string

	// OpenAQAPIKey is optional; without it the air quality layer relies
	// on unauthenticated access.
	OpenAQAPIKey string

	// SummarizerURL and SummarizerToken configure the hosted
	// summarization model.
	SummarizerURL   string
	SummarizerToken string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		Port:            getenvDefault("PORT", "8080"),
		DefaultCity:     getenvDefault("DEFAULT_CITY", "New Delhi"),
		NewsQuery:       getenvDefault("NEWS_QUERY", "climate"),
		OpenAQAPIKey:    os.Getenv("OPENAQ_API_KEY"),
		SummarizerURL:   os.Getenv("SUMMARIZER_URL"),
		SummarizerToken: os.Getenv("HF_API_TOKEN"),
	}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
