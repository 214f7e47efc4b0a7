package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/skill-roller/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/skill-roller/internal/platform/config"
	"github.com/KirkDiggler/skill-roller/internal/platform/otel"
	"github.com/KirkDiggler/skill-roller/internal/redis"
	sessionrepo "github.com/KirkDiggler/skill-roller/internal/repositories/session"
)

const serviceName = "skill-roller"

var (
	grpcPort   int
	redisAddrs []string
	sessionTTL time.Duration
	useMemory  bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the skill check gRPC server. Settings come from SKILLCHECK_* environment
variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (SKILLCHECK_GRPC_PORT)")
	serverCmd.Flags().StringSliceVar(&redisAddrs, "redis", nil, "Redis addresses (SKILLCHECK_REDIS_ADDR)")
	serverCmd.Flags().DurationVar(&sessionTTL, "session-ttl", 0, "Idle session lifetime (SKILLCHECK_SESSION_TTL)")
	serverCmd.Flags().BoolVar(&useMemory, "memory", false, "Keep sessions in process memory instead of Redis")
}

// applyFlags lets explicitly set flags win over the environment
func applyFlags(cmd *cobra.Command, cfg *config.Server) {
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("redis") {
		cfg.RedisAddrs = redisAddrs
	}
	if cmd.Flags().Changed("session-ttl") {
		cfg.SessionTTL = sessionTTL
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, otel.Config{
		ServiceName: serviceName,
		Endpoint:    cfg.OTelEndpoint,
		Enabled:     cfg.OTelEnabled,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := newSessionService(serviceDeps{repo: repo, logger: logger})
	if err != nil {
		return fmt.Errorf("failed to create session service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{SessionService: svc})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterSkillCheckServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "memory_store", useMemory)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(30 * time.Second):
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}

func openRepository(ctx context.Context, cfg *config.Server) (sessionrepo.Repository, func(), error) {
	if useMemory {
		return sessionrepo.NewInMemory(), func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := redis.Connect(connectCtx, redis.Topology{
		Addrs:      cfg.RedisAddrs,
		MasterName: cfg.RedisMasterName,
	}, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	repo, err := sessionrepo.NewRedisRepository(&sessionrepo.Config{
		Client: client,
		TTL:    cfg.SessionTTL,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return repo, func() { _ = client.Close() }, nil
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	logFunc := grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})

	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "recovered from panic", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	return grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logFunc),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logFunc),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
}
