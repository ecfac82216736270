package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           string `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort        string `env:"METRICS_PORT" envDefault:"9100"`
	GitHub             GitHub
	Report             Report
	PyroscopeEnabled   bool   `env:"PYROSCOPE_ENABLED" envDefault:"false"`
	PyroscopeAddress   string `env:"PYROSCOPE_SERVER_ADDRESS" envDefault:"http://pyroscope:4040"`
	JaegerCollectorURL string `env:"JAEGER_COLLECTOR_URL"`
}

type GitHub struct {
	Token  string `env:"GITHUB_TOKEN"`
	APIURL string `env:"GITHUB_API_URL"`
}

type Report struct {
	MaxRangeDays int           `env:"MAX_RANGE_DAYS" envDefault:"180"`
	Timeout      time.Duration `env:"REPORT_TIMEOUT" envDefault:"60s"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("can not load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("can not parse config: %w", err)
	}

	if cfg.Report.MaxRangeDays <= 0 {
		return nil, fmt.Errorf("MAX_RANGE_DAYS must be positive, got %d", cfg.Report.MaxRangeDays)
	}

	return cfg, nil
}
