package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load builds the configuration: defaults, then the TOML file at path (if it
// exists), then the process environment, which always wins.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if _, err := toml.Decode(string(data), cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
			log.Printf("Config file %s not found, using defaults", path)
		default:
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads .env (when present) and then calls Load with the file
// named by FW_CONFIG, defaulting to config.toml.
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}
	return Load(getEnv("FW_CONFIG", "config.toml"))
}

func applyEnv(cfg *Config) error {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.Mode = getEnv("GIN_MODE", cfg.Server.Mode)
	cfg.Server.TemplatesDir = getEnv("TEMPLATES_DIR", cfg.Server.TemplatesDir)
	cfg.Server.StaticDir = getEnv("STATIC_DIR", cfg.Server.StaticDir)
	cfg.API.URL = getEnv("API_URL", cfg.API.URL)
	cfg.Session.Secret = getEnv("SESSION_SECRET", cfg.Session.Secret)
	cfg.Likes.Backend = getEnv("LIKES_BACKEND", cfg.Likes.Backend)
	cfg.Likes.DatabaseURL = getEnv("DATABASE_URL", cfg.Likes.DatabaseURL)
	cfg.Likes.RedisAddr = getEnv("REDIS_ADDR", cfg.Likes.RedisAddr)

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.Likes.RedisDB = n
	}
	return nil
}

// getEnv returns the environment variable, or defaultValue when unset
func getEnv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

// APITimeout parses api.timeout, falling back to 30s.
func (c *Config) APITimeout() time.Duration {
	return parseDuration(c.API.Timeout, 30*time.Second)
}

// RefreshInterval parses feed.refresh_interval, falling back to 30s.
func (c *Config) RefreshInterval() time.Duration {
	return parseDuration(c.Feed.RefreshInterval, 30*time.Second)
}

// RefreshSeconds is the feed polling period in whole seconds, never below 1.
func (c *Config) RefreshSeconds() int {
	secs := int(c.RefreshInterval().Seconds())
	if secs < 1 {
		return 1
	}
	return secs
}

// Validate rejects settings that are only acceptable during development.
func (c *Config) Validate() error {
	if c.Server.Mode == "release" && (c.Session.Secret == "" || c.Session.Secret == DefaultSessionSecret) {
		return fmt.Errorf("SESSION_SECRET must be set in release mode")
	}
	return nil
}

// MaxUploadBytes is the largest photo the submit form accepts.
func (c *Config) MaxUploadBytes() int64 {
	if c.Server.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return int64(c.Server.MaxUploadMB) << 20
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
