package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"resumely/internal/config"
	"resumely/internal/handler"
	"resumely/internal/logger"
	"resumely/internal/parser"
	"resumely/internal/parser/gemini"
	"resumely/internal/parser/openai"
	"resumely/internal/port"
	"resumely/internal/repository/postgres"
	"resumely/internal/router"
	"resumely/internal/service"
	s3storage "resumely/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	resumeRepo := postgres.NewResumeRepo(db)

	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	aiParser, err := buildAIParser(&cfg.AI, zlog)
	if err != nil {
		return fmt.Errorf("failed to initialize AI parser: %w", err)
	}

	resumeSvc := service.NewResumeService(
		resumeRepo, s3Client, aiParser, cfg.AI.Model,
		cfg.S3.Bucket, cfg.Extract.MaxFileSizeMB, cfg.Extract.MaxChars, zlog)

	resumeH := handler.NewResumeHandler(resumeSvc, zlog)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(resumeH, healthH, zlog, cfg.CORS.AllowedOrigins)

	zlog.Info("server starting",
		zap.String("addr", cfg.Server.Port),
		zap.Bool("ai_enabled", aiParser != nil))
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildAIParser wires the configured completion provider into a profile
// parser. No provider means the service runs heuristic-only.
func buildAIParser(cfg *config.AIConfig, zlog *zap.Logger) (port.ProfileParser, error) {
	if !cfg.Enabled() {
		zlog.Info("no AI provider configured, using heuristic profiles")
		return nil, nil
	}

	var client port.CompletionClient
	switch cfg.Provider {
	case "openai":
		client = openai.NewClient(cfg)
	case "gemini":
		gc, err := gemini.NewClient(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		client = gc
	default:
		return nil, fmt.Errorf("unknown AI provider %q (supported: openai, gemini)", cfg.Provider)
	}

	return parser.New(client, cfg.Model, zlog), nil
}
