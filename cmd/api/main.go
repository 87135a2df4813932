package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/legallens/backend/internal/application"
	appdocs "github.com/legallens/backend/internal/application/documents"
	"github.com/legallens/backend/internal/config"
	"github.com/legallens/backend/internal/domain/dictionary"
	domext "github.com/legallens/backend/internal/domain/extraction"
	"github.com/legallens/backend/internal/infra/ai/live"
	aiopenai "github.com/legallens/backend/internal/infra/ai/openai"
	mysqlp "github.com/legallens/backend/internal/infra/db/mysql"
	postgresp "github.com/legallens/backend/internal/infra/db/postgres"
	"github.com/legallens/backend/internal/infra/extraction"
	"github.com/legallens/backend/internal/infra/fixture"
	"github.com/legallens/backend/internal/infra/httpserver"
	"github.com/legallens/backend/internal/infra/mongodb"
	"github.com/legallens/backend/internal/infra/report"
	"github.com/legallens/backend/internal/infra/resultstore"
	minioStore "github.com/legallens/backend/internal/infra/storage"
	"github.com/legallens/backend/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// legal term dictionary (optional)
	var terms dictionary.Repository
	var dictDB *sql.DB
	switch cfg.Database.Driver {
	case "mysql":
		dictDB, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			logger.Fatal("mysql connect error", zap.Error(err))
		}
		defer dictDB.Close()
		terms = mysqlp.NewTermRepository(dictDB)
	case "postgres":
		dictDB, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			logger.Fatal("postgres connect error", zap.Error(err))
		}
		defer dictDB.Close()
		terms = postgresp.NewTermRepository(dictDB)
	case "":
		logger.Info("no dictionary database configured; definitions come from the model")
	default:
		logger.Fatal("unknown database driver", zap.String("driver", cfg.Database.Driver))
	}

	// OpenAI client serves both the analyzer and the vision strategy
	aiClient := aiopenai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.VisionModel)

	// image text strategy: local tesseract or the vision model
	var images domext.ImageStrategy
	switch cfg.Extraction.ImageStrategy {
	case "vision":
		images = &aiopenai.VisionStrategy{Client: aiClient}
	case "tesseract":
		images = extraction.NewTesseractStrategy(
			cfg.Extraction.TesseractPath,
			cfg.Extraction.TesseractLang,
			os.TempDir(),
			logger,
		)
	default:
		logger.Fatal("unknown image strategy", zap.String("strategy", cfg.Extraction.ImageStrategy))
	}

	extractor := extraction.NewService(images, cfg.Extraction.DebugDir, logger)

	clock := application.SystemClock{}
	store := resultstore.New(cfg.Store.Path, clock, logger)

	// upload archive (optional)
	var uploads appdocs.UploadStore
	if cfg.Minio.Endpoint != "" {
		s, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			logger.Fatal("minio init error", zap.Error(err))
		}
		uploads = s
	}

	// summary mirror (optional)
	var summaries appdocs.SummaryMirror
	if cfg.Mongo.URI != "" {
		repo, err := mongodb.NewSummaryRepository(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			logger.Fatal("mongo init error", zap.Error(err))
		}
		defer repo.Close(ctx)
		summaries = repo
	}

	svc := &appdocs.Service{
		Live:        live.NewProvider(aiClient, terms, clock, logger),
		Fixture:     fixture.NewProvider(),
		Extractor:   extractor,
		Results:     store,
		Renderer:    report.NewPDFRenderer(),
		Static:      report.NewStaticReports(cfg.Demo.ReportDir),
		Uploads:     uploads,
		Summaries:   summaries,
		Clock:       clock,
		Logger:      logger,
		DemoEmail:   cfg.Demo.Email,
		CallTimeout: time.Duration(cfg.Limits.CallTimeoutSeconds) * time.Second,
	}

	checkers := map[string]middleware.HealthChecker{}
	if dictDB != nil {
		checkers["dictionary"] = &middleware.DatabaseHealthChecker{DB: dictDB}
	}
	capabilities := []string{
		"document_text_extraction",
		"comprehensive_legal_analysis",
		"pdf_report_generation",
	}
	health := middleware.HealthHandler(capabilities, checkers)

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Use(middleware.RequestLogger(logger))
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(cfg.Limits.RateCapacity, cfg.Limits.RateRefillPerSec))
	mux.Mount("/", httpserver.NewRouter(svc, logger, health, int64(cfg.Limits.MaxUploadMB)<<20))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server")

	ctx2, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		logger.Warn("shutdown error", zap.Error(err))
	}
	if err := store.Flush(); err != nil {
		logger.Warn("final store flush failed", zap.Error(err))
	}
}
