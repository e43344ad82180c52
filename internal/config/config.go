// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"gstledger"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	// DatabaseURL selects the postgres backend when set; the service runs
	// on the in-memory store otherwise.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DevSeed     bool   `envconfig:"DEV_SEED" default:"false"`

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"json"`
	}

	Server struct {
		ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"5s"`
		WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
		IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	}

	JWT struct {
		Secret   string `envconfig:"JWT_HS256_SECRET"`
		Issuer   string `envconfig:"JWT_ISSUER"`
		Audience string `envconfig:"JWT_AUDIENCE"`
	}

	// CORSOrigins is a comma-separated list; empty means allow all.
	CORSOrigins string `envconfig:"CORS_ORIGINS"`
}

func (c *Config) Addr() string { return fmt.Sprintf(":%d", c.App.Port) }

func (c *Config) Origins() []string {
	if strings.TrimSpace(c.CORSOrigins) == "" {
		return nil
	}
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
