package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	httpadapter "cv-builder/internal/adapter/http"
	"cv-builder/internal/config"
	"cv-builder/internal/export"
	"cv-builder/internal/render"
	"cv-builder/internal/report"
	"cv-builder/internal/storage"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Storage: Postgres when configured, in-memory otherwise. The service
	// stays usable without a database; documents just don't survive restarts.
	var repo storage.ResumeRepository
	var exportLog storage.ExportLogger
	if cfg.DatabaseURL != "" {
		pool, err := storage.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("warning: resumes DB not available: %v", err)
		} else {
			if err := storage.RunMigrations(ctx, pool); err != nil {
				log.Fatalf("migrations failed: %v", err)
			}
			pg := storage.NewPostgresRepository(pool)
			repo = pg
			exportLog = pg
		}
	}
	if repo == nil {
		slog.Warn("using in-memory resume store")
		mem := storage.NewMemoryRepository()
		repo = mem
		exportLog = mem
	}

	renderer := render.NewRenderer(cfg.TemplateDir)
	exporter := export.NewExporter(export.NewChromeCapturer())
	texts := report.NewDefaultChain(report.NewRemoteGenerator(cfg.AIServiceURL))

	app := fiber.New()
	h := httpadapter.NewHandler(repo, exportLog, renderer, exporter, texts, cfg.TemplateDir)
	h.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
