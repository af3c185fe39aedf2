package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid configuration")

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Transports accepted by VIBE_SERVER_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type AppConfig struct {
	Env      Environment
	LogLevel string
}

type MatchConfig struct {
	CatalogPath string
	Embedder    string
	Dimensions  int
	TopK        int
	Threshold   float64
	Strategy    string
	HybridAlpha float64
}

type ServerConfig struct {
	Transport string
	Addr      string
}

type Config struct {
	App    AppConfig
	Match  MatchConfig
	Server ServerConfig
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := parseEnvironment(getEnv("VIBE_ENV", "development"))

	return &Config{
		App: AppConfig{
			Env:      env,
			LogLevel: getLogLevel(env),
		},
		Match: MatchConfig{
			CatalogPath: getEnv("VIBE_CATALOG_PATH", ""),
			Embedder:    getEnv("VIBE_EMBEDDER", "mock"),
			Dimensions:  getEnvInt("VIBE_DIMENSIONS", 512),
			TopK:        getEnvInt("VIBE_TOP_K", 3),
			Threshold:   getEnvFloat("VIBE_THRESHOLD", 0.7),
			Strategy:    strings.ToLower(getEnv("VIBE_STRATEGY", "embedding")),
			HybridAlpha: getEnvFloat("VIBE_HYBRID_ALPHA", 0.5),
		},
		Server: ServerConfig{
			Transport: strings.ToLower(getEnv("VIBE_SERVER_TRANSPORT", TransportStdio)),
			Addr:      getEnv("VIBE_SERVER_ADDR", ":8080"),
		},
	}, nil
}

// Validate reports every out-of-range setting, joined.
func (c *Config) Validate() error {
	var errs []error
	if c.Match.Dimensions <= 0 {
		errs = append(errs, fmt.Errorf("VIBE_DIMENSIONS must be positive, got %d", c.Match.Dimensions))
	}
	if c.Match.TopK <= 0 {
		errs = append(errs, fmt.Errorf("VIBE_TOP_K must be positive, got %d", c.Match.TopK))
	}
	if c.Match.Threshold < -1 || c.Match.Threshold > 1 {
		errs = append(errs, fmt.Errorf("VIBE_THRESHOLD must be in [-1, 1], got %v", c.Match.Threshold))
	}
	if c.Match.HybridAlpha < 0 || c.Match.HybridAlpha > 1 {
		errs = append(errs, fmt.Errorf("VIBE_HYBRID_ALPHA must be in [0, 1], got %v", c.Match.HybridAlpha))
	}
	switch c.Match.Strategy {
	case "embedding", "bm25", "hybrid":
	default:
		errs = append(errs, fmt.Errorf("VIBE_STRATEGY must be embedding, bm25 or hybrid, got %q", c.Match.Strategy))
	}
	if c.Match.Embedder == "" {
		errs = append(errs, errors.New("VIBE_EMBEDDER is required"))
	}
	switch c.Server.Transport {
	case TransportStdio, TransportHTTP:
	default:
		errs = append(errs, fmt.Errorf("VIBE_SERVER_TRANSPORT must be stdio or http, got %q", c.Server.Transport))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("VIBE_LOG_LEVEL", "info")
	}

	return getEnv("VIBE_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
