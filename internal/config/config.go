// Package config loads Opportunity Radar's runtime configuration from
// environment variables, with an optional YAML file overlay, following the
// same "env var with a sane default, warn if a secret is missing" style
// services/llm uses for its own OpenAI client configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the fully resolved runtime configuration for both the radar
// server and the radarctl CLI.
type Config struct {
	HTTPPort     int    `yaml:"http_port"`
	LogLevel     string `yaml:"log_level"`

	MongoURI    string `yaml:"mongo_uri"`
	MongoDBName string `yaml:"mongo_db_name"`

	BadgerDir string `yaml:"badger_dir"`

	OpenAIAPIKey string `yaml:"-"` // never sourced from file, env only
	OpenAIModel  string `yaml:"openai_model"`
	OpenAIBaseURL string `yaml:"openai_base_url"`

	ScraperIntervalHours int     `yaml:"scraper_interval_hours"`
	DefaultRequestDelay  float64 `yaml:"default_request_delay_seconds"`
	MinMatchScore        float64 `yaml:"min_match_score"`

	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

// Default returns the configuration used when no environment variable or
// file overlay sets a value.
func Default() Config {
	return Config{
		HTTPPort:             8080,
		LogLevel:             "info",
		MongoURI:             "mongodb://localhost:27017",
		MongoDBName:          "opportunity_radar",
		BadgerDir:            "./data/badger",
		OpenAIModel:          "text-embedding-3-small",
		OpenAIBaseURL:        "https://api.openai.com/v1",
		ScraperIntervalHours: 6,
		DefaultRequestDelay:  1.0,
		MinMatchScore:        0.3,
	}
}

// Load resolves configuration in three layers: defaults, an optional YAML
// file at yamlPath (skipped silently if it does not exist), then
// environment variables, which always win. logger receives a warning for
// every secret that ends up unset, matching services/llm's behavior of
// warning rather than failing fast when OPENAI_API_KEY is absent — the
// embedding provider itself fails the first call, not construction.
func Load(yamlPath string, logger *slog.Logger) (Config, error) {
	cfg := Default()

	if yamlPath != "" {
		if data, err := os.ReadFile(yamlPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", yamlPath, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", yamlPath, err)
		}
	}

	if v := os.Getenv("RADAR_HTTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: RADAR_HTTP_PORT: %w", err)
		}
		cfg.HTTPPort = p
	}
	if v := os.Getenv("RADAR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("RADAR_MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("RADAR_MONGO_DB_NAME"); v != "" {
		cfg.MongoDBName = v
	}
	if v := os.Getenv("RADAR_BADGER_DIR"); v != "" {
		cfg.BadgerDir = v
	}
	if v := os.Getenv("RADAR_SCRAPER_INTERVAL_HOURS"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: RADAR_SCRAPER_INTERVAL_HOURS: %w", err)
		}
		cfg.ScraperIntervalHours = h
	}
	if v := os.Getenv("RADAR_MIN_MATCH_SCORE"); v != "" {
		s, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: RADAR_MIN_MATCH_SCORE: %w", err)
		}
		cfg.MinMatchScore = s
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}

	cfg.OpenAIModel = envOr("OPENAI_MODEL", cfg.OpenAIModel)
	cfg.OpenAIBaseURL = envOr("OPENAI_BASE_URL", cfg.OpenAIBaseURL)
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.OpenAIAPIKey == "" && logger != nil {
		logger.Warn("OPENAI_API_KEY not set; embedding calls will fail until configured")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ScraperInterval is ScraperIntervalHours as a time.Duration, for direct
// use by the orchestrator's ticker.
func (c Config) ScraperInterval() time.Duration {
	return time.Duration(c.ScraperIntervalHours) * time.Hour
}
