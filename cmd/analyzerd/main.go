package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rcmkit/contract-analyzer/internal/async"
	"github.com/rcmkit/contract-analyzer/internal/common"
	"github.com/rcmkit/contract-analyzer/internal/contracts"
	"github.com/rcmkit/contract-analyzer/internal/export"
	"github.com/rcmkit/contract-analyzer/internal/extract"
	"github.com/rcmkit/contract-analyzer/internal/llm/anthropic"
	"github.com/rcmkit/contract-analyzer/internal/pipeline"
	repo "github.com/rcmkit/contract-analyzer/internal/repository"
	"github.com/rcmkit/contract-analyzer/internal/server"
	"github.com/rcmkit/contract-analyzer/internal/storage"
	"github.com/rcmkit/contract-analyzer/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	log := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	db := repo.NewDatabase(entc, pool, log)
	defer db.Close()

	if err := db.HealthCheck(ctx); err != nil {
		log.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if cfg.Database.AutoMigrate {
		if err := entc.Schema.Create(ctx); err != nil {
			log.Error("schema migration failed", "error", err)
			os.Exit(1)
		}
	}

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize blob store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	contractsRepo := repo.NewContractRepository(entc, log)
	analysesRepo := repo.NewAnalysisRepository(entc, log)

	llmClient := anthropic.NewClient(anthropic.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, log)

	analyzer := pipeline.NewAnalyzer(log, pipeline.Config{
		MaxAttempts: cfg.Pipeline.MaxAttempts,
		BackoffBase: cfg.Pipeline.BackoffBase,
		LLMTimeout:  cfg.LLM.Timeout,
	}, contractsRepo, blobs, extract.NewExtractor(log), llmClient)

	queue := async.NewAnalyzerQueue(analyzer, log,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithJobTimeout(cfg.Pipeline.JobTimeout),
	)

	svc := contracts.NewService(log, cfg.Upload.MaxFileSize, contractsRepo, analysesRepo, blobs, queue, analyzer)
	exporter := export.NewService(contractsRepo, analysesRepo, log)

	srv := server.New(cfg.Server.Addr, log, svc, exporter, db)
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("http serve error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", "error", err)
	}
	// drain in-flight analyses before closing the database
	queue.Shutdown(shutdownCtx)
}

func newBlobStore(ctx context.Context, cfg *common.Config) (storage.BlobStore, error) {
	if cfg.Storage.Backend == "minio" {
		store, err := storage.NewMinioStore(storage.MinioConfig{
			Endpoint:  cfg.Storage.MinioEndpoint,
			AccessKey: cfg.Storage.MinioAccessKey,
			SecretKey: cfg.Storage.MinioSecretKey,
			Bucket:    cfg.Storage.MinioBucket,
			UseSSL:    cfg.Storage.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	}
	return storage.NewFSStore(cfg.Storage.FSDir)
}
