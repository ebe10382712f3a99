package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	governancepb "github.com/propertyops/asset-governor/gen/proto/governance/v1"
	"github.com/propertyops/asset-governor/internal/alerting"
	"github.com/propertyops/asset-governor/internal/anomaly"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/core"
	"github.com/propertyops/asset-governor/internal/core/async"
	"github.com/propertyops/asset-governor/internal/export"
	"github.com/propertyops/asset-governor/internal/extract"
	"github.com/propertyops/asset-governor/internal/locking"
	"github.com/propertyops/asset-governor/internal/observability"
	repo "github.com/propertyops/asset-governor/internal/repository"
	svc "github.com/propertyops/asset-governor/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(entc, logger)
	metricsRepo := repo.NewMetricRepository(entc, logger)
	alertsRepo := repo.NewAlertRepository(entc, logger)
	locksRepo := repo.NewLockRepository(entc, logger)
	propsRepo := repo.NewPropertyRepository(entc, logger)

	detector := anomaly.New(anomaly.Config{
		Window:     cfg.Detector.Window,
		MinSamples: cfg.Detector.MinSamples,
		ZThreshold: cfg.Detector.ZThreshold,
		Drift:      cfg.Detector.CUSUMDrift,
		Decision:   cfg.Detector.CUSUMDecision,
	})

	// Metrics endpoint
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	obs := observability.New(registry)

	alertOpts := []alerting.Option{alerting.WithObservability(obs)}
	if os.Getenv("ALERT_MERGE_POLICY") == string(alerting.MergeAlways) {
		alertOpts = append(alertOpts, alerting.WithMergePolicy(alerting.MergeAlways))
	}
	alertMgr := alerting.NewManager(alertsRepo, logger, alertOpts...)

	lockTTL := time.Duration(cfg.Locks.TTLDays) * 24 * time.Hour
	lockMgr := locking.NewManager(alertsRepo, locksRepo, lockTTL, logger)

	blobs := extract.NewFSBlobStore(cfg.Blobs.Root)
	extractor := extract.NewJSONExtractor()
	processor := core.NewProcessor(blobs, extractor, metricsRepo, propsRepo, detector, alertMgr, logger)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	metricsSrv := &http.Server{Addr: cfg.Server.MetricsAddr, Handler: metricsMux}
	go func() {
		logger.Info("metrics listening", "addr", cfg.Server.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics serve error", "error", err)
		}
	}()

	queue := async.NewQueue(jobsRepo, processor, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
		async.WithVisibilityTimeout(cfg.Pipeline.VisibilityTimeout),
		async.WithMaxAttempts(cfg.Pipeline.MaxAttempts),
		async.WithBackoffBase(cfg.Pipeline.BackoffBase),
		async.WithMetrics(obs),
	)

	// Requeue whatever a previous process left behind, then keep sweeping
	// for jobs whose workers died mid-lease.
	if n, err := queue.Recover(ctx); err != nil {
		logger.Error("startup recovery failed", "error", err)
	} else if n > 0 {
		logger.Info("recovered jobs from previous run", "count", n)
	}
	go func() {
		ticker := time.NewTicker(cfg.Pipeline.VisibilityTimeout)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := queue.Recover(ctx); err != nil {
					logger.Error("lease recovery failed", "error", err)
				}
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(cfg.Locks.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := lockMgr.ExpireSweep(ctx)
				if err != nil {
					logger.Error("lock expiry sweep failed", "error", err)
					continue
				}
				obs.LocksExpired(n)
			}
		}
	}()

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(svc.LoggingInterceptor(logger)),
	)

	exporter := export.NewService(alertsRepo, locksRepo, metricsRepo, logger)
	governance := svc.NewGovernanceService(queue, jobsRepo, metricsRepo, alertsRepo, lockMgr, exporter, logger)
	governancepb.RegisterGovernanceServiceServer(grpcServer, governance)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("asset-governor listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics shutdown error", "error", err)
	}
}
