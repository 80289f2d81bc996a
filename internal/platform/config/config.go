// Package config resolves process settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultHost     = "0.0.0.0"
	DefaultPort     = "3000"
	DefaultLogLevel = "info"
)

// Config holds the listener address and log level.
type Config struct {
	Host     string
	Port     string
	LogLevel string
}

// Load reads the given env files (".env" when none are named) without overriding
// variables already set, then resolves the configuration. A missing default .env
// is ignored; a missing named file is an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}

	cfg := &Config{
		Host:     getEnv("HOST", DefaultHost),
		Port:     getEnv("PORT", DefaultPort),
		LogLevel: getEnv("LOG_LEVEL", DefaultLogLevel),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the host:port pair for http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q: must be 1-65535", c.Port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
