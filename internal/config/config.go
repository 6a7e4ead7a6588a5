package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Chat strategy values for Config.Strategy.
const (
	StrategyRules     = "rules"
	StrategyDelegated = "delegated"
)

type Config struct {
	Addr      string
	MySQLDSN  string
	Strategy  string
	StaticDir string
	LLM       LLMConfig
}

// LLMConfig points the delegated strategy at an OpenAI-compatible endpoint.
type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from the environment (an optional .env file is
// merged in first). The returned struct is passed explicitly to component
// constructors; nothing here is stored in package state.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:      envOr("ADDR", ":8080"),
		MySQLDSN:  os.Getenv("MYSQL_DSN"),
		Strategy:  envOr("CHAT_STRATEGY", StrategyRules),
		StaticDir: envOr("STATIC_DIR", "./static"),
		LLM: LLMConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   envOr("OPENAI_MODEL", "gpt-3.5-turbo"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Timeout: envDurationSeconds("LLM_TIMEOUT_SECONDS", 15*time.Second),
		},
	}

	if cfg.MySQLDSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required")
	}
	switch cfg.Strategy {
	case StrategyRules:
	case StrategyDelegated:
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when CHAT_STRATEGY=%s", StrategyDelegated)
		}
	default:
		return nil, fmt.Errorf("unknown CHAT_STRATEGY %q", cfg.Strategy)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
