// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Server is the environment of the gRPC server. Command line flags override
// every field.
type Server struct {
	GRPCPort int `env:"SKILLCHECK_GRPC_PORT" envDefault:"50051"`

	// RedisAddrs is one address for a single node, several for a cluster, or
	// the sentinels when RedisMasterName is set
	RedisAddrs      []string `env:"SKILLCHECK_REDIS_ADDR" envSeparator:"," envDefault:"localhost:6379"`
	RedisMasterName string   `env:"SKILLCHECK_REDIS_MASTER"`

	SessionTTL time.Duration `env:"SKILLCHECK_SESSION_TTL" envDefault:"12h"`
	LogLevel   string        `env:"SKILLCHECK_LOG_LEVEL" envDefault:"info"`

	OTelEndpoint string `env:"SKILLCHECK_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"SKILLCHECK_OTEL_ENABLED" envDefault:"true"`
}

// LoadServer parses the server environment
func LoadServer() (*Server, error) {
	cfg := &Server{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto slog, defaulting to info
func (s *Server) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
