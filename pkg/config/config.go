package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`

	// Endpoint is the base URL of the QKart API, e.g.
	// http://localhost:8082/api/v1.
	Endpoint    string `yaml:"endpoint"`
	HTTPTimeout int    `yaml:"http_timeout_seconds"`

	// SearchDebounceMS is the quiescence window for the search box.
	SearchDebounceMS int `yaml:"search_debounce_ms"`

	// SessionFile holds the persisted login (token, username, balance).
	SessionFile string `yaml:"session_file"`
}

func defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		AppEnv:           "dev",
		LogLevel:         "info",
		Endpoint:         "http://localhost:8082/api/v1",
		HTTPTimeout:      10,
		SearchDebounceMS: 500,
		SessionFile:      filepath.Join(home, ".qkart", "session.json"),
	}
}

// Load reads the config file at path if it exists, then applies environment
// overrides. An empty path falls back to ~/.qkart/config.yaml.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".qkart", "config.yaml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// no file is fine, defaults + env apply
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.AppEnv = getEnv("QKART_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("QKART_LOG_LEVEL", cfg.LogLevel)
	cfg.Endpoint = getEnv("QKART_ENDPOINT", cfg.Endpoint)
	cfg.SessionFile = getEnv("QKART_SESSION_FILE", cfg.SessionFile)
	cfg.HTTPTimeout = getEnvInt("QKART_HTTP_TIMEOUT", cfg.HTTPTimeout)
	cfg.SearchDebounceMS = getEnvInt("QKART_SEARCH_DEBOUNCE_MS", cfg.SearchDebounceMS)

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 10
	}
	if cfg.SearchDebounceMS <= 0 {
		cfg.SearchDebounceMS = 500
	}

	return cfg, nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c Config) DebounceWindow() time.Duration {
	return time.Duration(c.SearchDebounceMS) * time.Millisecond
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
