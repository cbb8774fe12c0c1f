// Package server wires the calculator gRPC runtime and lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	calculatorv1 "github.com/louisbranch/calculator/api/calculator/v1"
	"github.com/louisbranch/calculator/internal/platform/requestmeta"
	"github.com/louisbranch/calculator/internal/platform/timeouts"
	calculatorservice "github.com/louisbranch/calculator/internal/services/calculator/api/grpc/calculator"
	"github.com/louisbranch/calculator/internal/services/calculator/api/grpc/interceptors"
	"github.com/louisbranch/calculator/internal/services/calculator/primes"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Config tunes the calculator server.
type Config struct {
	// StreamDelay is the pause between streamed primes.
	StreamDelay time.Duration
	// Reflection registers the gRPC server reflection service.
	Reflection bool
	// ShutdownTimeout bounds graceful stop; in-flight calls still running
	// afterwards are cut off.
	ShutdownTimeout time.Duration
	// Logf receives one line per call. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		StreamDelay:     primes.DefaultStreamDelay,
		Reflection:      true,
		ShutdownTimeout: timeouts.Shutdown,
	}
}

// Server hosts the calculator gRPC API.
type Server struct {
	listener        net.Listener
	grpcServer      *grpc.Server
	health          *health.Server
	shutdownTimeout time.Duration
}

// New creates a configured calculator server listening on the provided port.
func New(port int, cfg Config) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port), cfg)
}

// NewWithAddr creates a configured calculator server for the provided address.
func NewWithAddr(addr string, cfg Config) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			requestmeta.UnaryServerInterceptor(nil),
			interceptors.UnaryLoggingInterceptor(cfg.Logf),
		),
		grpc.ChainStreamInterceptor(
			requestmeta.StreamServerInterceptor(nil),
			interceptors.StreamLoggingInterceptor(cfg.Logf),
		),
	)
	healthServer := health.NewServer()
	calculatorv1.RegisterCalculatorServiceServer(grpcServer, calculatorservice.NewService(cfg.StreamDelay))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	if cfg.Reflection {
		reflection.Register(grpcServer)
	}
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(calculatorv1.CalculatorService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:        listener,
		grpcServer:      grpcServer,
		health:          healthServer,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a calculator server until context cancellation.
func Run(ctx context.Context, port int, cfg Config) error {
	server, err := New(port, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation, then stops it
// gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("calculator server listening at %v", s.listener.Addr())

	stopped := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(stopped)
		err := s.grpcServer.Serve(s.listener)
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			s.gracefulStop()
		case <-stopped:
		}
		return nil
	})
	return g.Wait()
}

// gracefulStop drains in-flight calls for at most shutdownTimeout, then
// cuts the rest off.
func (s *Server) gracefulStop() {
	if s.health != nil {
		s.health.Shutdown()
	}

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	if s.shutdownTimeout <= 0 {
		<-done
		return
	}
	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		log.Printf("calculator server: graceful stop exceeded %s, forcing stop", s.shutdownTimeout)
		s.grpcServer.Stop()
		<-done
	}
}

// Close releases calculator server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}
