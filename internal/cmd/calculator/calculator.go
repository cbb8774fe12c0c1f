// Package calculator parses calculator service flags and launches the service.
package calculator

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/calculator/internal/platform/cmd"
	server "github.com/louisbranch/calculator/internal/services/calculator/app"
)

// Config holds calculator command configuration.
type Config struct {
	Port            int           `env:"PORT" envDefault:"50051"`
	StreamDelay     time.Duration `env:"STREAM_DELAY" envDefault:"500ms"`
	Reflection      bool          `env:"REFLECTION" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The calculator gRPC server port")
	fs.DurationVar(&cfg.StreamDelay, "stream-delay", cfg.StreamDelay, "Pause between streamed prime numbers")
	fs.BoolVar(&cfg.Reflection, "reflection", cfg.Reflection, "Register gRPC server reflection")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown bound")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}
	if cfg.StreamDelay < 0 {
		return Config{}, fmt.Errorf("stream delay must not be negative, got %s", cfg.StreamDelay)
	}
	return cfg, nil
}

// ServerConfig converts command configuration to server configuration.
func (c Config) ServerConfig() server.Config {
	return server.Config{
		StreamDelay:     c.StreamDelay,
		Reflection:      c.Reflection,
		ShutdownTimeout: c.ShutdownTimeout,
	}
}

// Run starts the calculator gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceCalculator, entrypoint.RunOptions{}, func(ctx context.Context) error {
		return server.Run(ctx, cfg.Port, cfg.ServerConfig())
	})
}
