package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/gen/ent"
	"github.com/propertyops/asset-governor/internal/alerting"
	"github.com/propertyops/asset-governor/internal/anomaly"
	"github.com/propertyops/asset-governor/internal/batch"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/core"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/export"
	"github.com/propertyops/asset-governor/internal/extract"
	"github.com/propertyops/asset-governor/internal/locking"
	repo "github.com/propertyops/asset-governor/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory of statement JSON documents to process (optional)")
		property = flag.String("property", "", "property UUID (required with --dir, scopes --out)")
		class    = flag.String("class", string(constants.ClassStabilized), "property volatility class for --dir ingestion")
		out      = flag.String("out", "", "output XLSX governance report path (optional)")
	)
	flag.Parse()

	if *dir != "" && *property == "" {
		printError("Error: --property is required with --dir\n")
		os.Exit(1)
	}
	var propertyID uuid.UUID
	if *property != "" {
		parsed, err := uuid.Parse(*property)
		if err != nil {
			printError("Error: --property must be a UUID: %v\n", err)
			os.Exit(1)
		}
		propertyID = parsed
	}
	propClass, ok := parseClass(*class)
	if !ok {
		printError("Error: --class must be one of %s\n", strings.Join(constants.PropertyClassValues(), ", "))
		os.Exit(1)
	}
	if *out != "" && propertyID == uuid.Nil {
		printError("Error: --property is required with --out\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	client, cleanup, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	jobsRepo := repo.NewJobRepository(client, logger)
	metricsRepo := repo.NewMetricRepository(client, logger)
	alertsRepo := repo.NewAlertRepository(client, logger)
	locksRepo := repo.NewLockRepository(client, logger)
	propsRepo := repo.NewPropertyRepository(client, logger)

	detector := anomaly.New(anomaly.Config{
		Window:     cfg.Detector.Window,
		MinSamples: cfg.Detector.MinSamples,
		ZThreshold: cfg.Detector.ZThreshold,
		Drift:      cfg.Detector.CUSUMDrift,
		Decision:   cfg.Detector.CUSUMDecision,
	})
	alertMgr := alerting.NewManager(alertsRepo, logger)
	lockTTL := time.Duration(cfg.Locks.TTLDays) * 24 * time.Hour
	lockMgr := locking.NewManager(alertsRepo, locksRepo, lockTTL, logger)

	// Process documents synchronously, oldest filename first. Monthly
	// statements named by period sort into chronological order.
	processed := 0
	failures := 0
	if *dir != "" {
		if _, err := propsRepo.Upsert(ctx, &entity.Property{
			ID:            propertyID,
			Name:          "Local Batch",
			PropertyClass: propClass,
		}); err != nil {
			logger.Error("failed to upsert property", "error", err)
			os.Exit(1)
		}

		refs, err := listDocuments(*dir)
		if err != nil {
			logger.Error("failed to scan document directory", "dir", *dir, "error", err)
			os.Exit(1)
		}
		logger.Info("processing documents", "dir", *dir, "count", len(refs), "property_id", propertyID)

		blobs := extract.NewFSBlobStore(*dir)
		processor := core.NewProcessor(blobs, extract.NewJSONExtractor(), metricsRepo, propsRepo, detector, alertMgr, logger)
		for _, ref := range refs {
			job, err := jobsRepo.Create(ctx, &entity.ProcessingJob{
				DocumentID: uuid.New(),
				PropertyID: propertyID,
				BlobRef:    ref,
			})
			if err != nil {
				logger.Error("failed to create job", "blob_ref", ref, "error", err)
				failures++
				continue
			}
			if _, err := jobsRepo.MarkProcessing(ctx, job.ID); err != nil {
				logger.Error("failed to lease job", "job_id", job.ID, "error", err)
				failures++
				continue
			}
			res, err := processor.Process(ctx, job)
			if err != nil {
				logger.Error("failed to process document", "blob_ref", ref, "error", err)
				if mErr := jobsRepo.MarkFailed(ctx, job.ID, err.Error()); mErr != nil {
					logger.Error("failed to mark job failed", "job_id", job.ID, "error", mErr)
				}
				failures++
				continue
			}
			if err := jobsRepo.MarkProcessed(ctx, job.ID); err != nil {
				logger.Error("failed to mark job processed", "job_id", job.ID, "error", err)
			}
			logger.Info("document processed",
				"blob_ref", ref,
				"period", res.Period,
				"metrics", len(res.Persisted),
				"alerts", len(res.AlertsRaised))
			processed++
		}
	}

	// Nightly pass: expire stale locks, re-evaluate every property.
	runner := batch.NewRunner(metricsRepo, propsRepo, detector, alertMgr, lockMgr, logger)
	summary, err := runner.Run(ctx)
	if err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	if *out != "" {
		exporter := export.NewService(alertsRepo, locksRepo, metricsRepo, logger)
		xlsxBytes, err := exporter.ExportGovernanceXLSX(ctx, propertyID)
		if err != nil {
			logger.Error("failed to export governance report", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
		logger.Info("governance report written", "output", *out)
	}

	fmt.Printf("Batch run complete!\n")
	if *dir != "" {
		fmt.Printf("- Documents processed: %d\n", processed)
		fmt.Printf("- Failures: %d\n", failures)
	}
	fmt.Printf("- Properties evaluated: %d\n", summary.Properties)
	fmt.Printf("- Metrics evaluated: %d\n", summary.MetricsEvaluated)
	fmt.Printf("- Alerts raised: %d\n", summary.AlertsRaised)
	fmt.Printf("- Locks expired: %d\n", summary.LocksExpired)
	if *out != "" {
		fmt.Printf("- Output: %s\n", *out)
	}
}

func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem {
		client, err := repo.OpenSQLite(ctx, "file:governor?mode=memory&cache=shared", logger)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { repo.Close(client, nil, logger) }, nil
	}
	client, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { repo.Close(client, pool, logger) }, nil
}

func parseClass(raw string) (constants.PropertyClass, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for _, c := range constants.PropertyClassValues() {
		if normalized == c {
			return constants.PropertyClass(normalized), true
		}
	}
	return "", false
}

func listDocuments(dir string) ([]string, error) {
	var refs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		refs = append(refs, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(refs)
	return refs, nil
}
