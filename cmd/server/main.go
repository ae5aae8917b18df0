package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/export"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.Env)
	defer zl.Sync()

	// infra setup
	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		zl.Warn("database not available, storage endpoints disabled", zap.Error(err))
		pool = nil
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool, zl); err != nil {
			zl.Fatal("migrations failed", zap.Error(err))
		}
	}

	renderer := infra.NewChromedpRenderer(cfg.ChromePath, zl)

	pipeline := export.NewPipeline(zl,
		export.NewRemoteStrategy(cfg.RenderServiceURL, cfg.RenderTimeout),
		export.NewNativeStrategy(),
		export.NewRasterStrategy(renderer),
	)

	aiClient := ai.NewClient(ai.Config{
		BaseURL: cfg.AIBaseURL,
		APIKey:  cfg.AIAPIKey,
		Model:   cfg.AIModel,
	})

	resumes := repo.NewResumesRepo(pool)
	service := usecase.NewService(resumes, pipeline, aiClient, zl)

	app := fiber.New()
	h := httpadapter.NewHandler(service, renderer, zl)
	h.Register(app)

	go func() {
		zl.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zl.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		zl.Error("shutdown error", zap.Error(err))
	}
	if pool != nil {
		pool.Close()
	}
}
