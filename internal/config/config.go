package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings. Sources are applied in order of
// increasing priority: defaults, JSON file, command line flags, environment.
type Config struct {
	ServerAddress   string        `json:"server_address" env:"SERVER_ADDRESS"`
	GRPCAddress     string        `json:"grpc_address" env:"GRPC_ADDRESS"`
	JWTSecret       string        `json:"jwt_secret" env:"JWT_SECRET"`
	LogLevel        string        `json:"log_level" env:"LOG_LEVEL"`
	MaxBatch        int           `json:"max_batch" env:"MAX_BATCH"`
	ShutdownTimeout time.Duration `json:"-" env:"SHUTDOWN_TIMEOUT"`
	ConfigPath      string        `json:"-" env:"CONFIG"`
}

var (
	// ErrInvalidMaxBatch is returned when the batch limit is not positive.
	ErrInvalidMaxBatch = errors.New("max batch must be positive")
	// ErrInvalidShutdownTimeout is returned when the shutdown timeout is not positive.
	ErrInvalidShutdownTimeout = errors.New("shutdown timeout must be positive")
)

func defaultConfig() Config {
	return Config{
		ServerAddress:   ":8080",
		GRPCAddress:     ":3200",
		LogLevel:        "info",
		MaxBatch:        100,
		ShutdownTimeout: 5 * time.Second,
	}
}

// NewConfig parses flag.CommandLine, the optional JSON file and the environment.
func NewConfig() (*Config, error) {
	cfg := defaultConfig()
	fv := cfg

	flag.StringVar(&fv.ServerAddress, "a", fv.ServerAddress, "HTTP server address (e.g. localhost:8888)")
	flag.StringVar(&fv.GRPCAddress, "g", fv.GRPCAddress, "gRPC server address (e.g. localhost:3200)")
	flag.StringVar(&fv.JWTSecret, "s", fv.JWTSecret, "JWT secret; authentication is disabled when empty")
	flag.StringVar(&fv.LogLevel, "l", fv.LogLevel, "Log level (debug, info, warn, error)")
	flag.IntVar(&fv.MaxBatch, "m", fv.MaxBatch, "Maximum number of slugids per batch request")
	flag.StringVar(&fv.ConfigPath, "c", fv.ConfigPath, "Path to JSON config file")

	flag.Parse()

	path := fv.ConfigPath
	if envPath := os.Getenv("CONFIG"); envPath != "" {
		path = envPath
	}
	if path != "" {
		if err := loadJSON(path, &cfg); err != nil {
			return nil, err
		}
		cfg.ConfigPath = path
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.ServerAddress = fv.ServerAddress
		case "g":
			cfg.GRPCAddress = fv.GRPCAddress
		case "s":
			cfg.JWTSecret = fv.JWTSecret
		case "l":
			cfg.LogLevel = fv.LogLevel
		case "m":
			cfg.MaxBatch = fv.MaxBatch
		}
	})

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.MaxBatch <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxBatch, cfg.MaxBatch)
	}

	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShutdownTimeout, cfg.ShutdownTimeout)
	}

	return &cfg, nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
