package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httpadapter "cv-builder/internal/adapter/http"
	repo "cv-builder/internal/adapter/repository"
	"cv-builder/internal/compiler"
	"cv-builder/internal/config"
	"cv-builder/internal/logger"
	"cv-builder/internal/usecase"
	"cv-builder/pkg/ai"
	infra "cv-builder/pkg/infrastructure"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zlog, err := logger.New(cfg.JSON, cfg.Debug)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zlog.Sync()

	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Warn("database not available, persistence disabled", zap.Error(err))
	}

	resumeRepo := repo.NewResumeRepo(pool)
	jobsRepo := repo.NewJobsRepo(pool)

	fallback, err := compiler.NewFallbackRenderer(infra.NewChromedpRenderer(), zlog)
	if err != nil {
		zlog.Fatal("building fallback renderer", zap.Error(err))
	}

	var opt usecase.Optimizer
	if cfg.Gemini != nil && cfg.Gemini.APIKey != "" {
		client, err := ai.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			zlog.Warn("gemini client unavailable, tailoring disabled", zap.Error(err))
		} else {
			opt = ai.NewOptimizer(client, zlog)
			zlog.Info("gemini tailoring enabled", zap.String("model", client.Model()))
		}
	}

	generator := usecase.NewGenerator(resumeRepo, jobsRepo, fallback, opt, cfg, zlog)

	app := fiber.New()
	httpadapter.NewHandler(generator, jobsRepo, zlog).Register(app)

	zlog.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
