package main

import (
	"context"
	"encoding/json"
	"newsnotes/cmd/internal/config"
	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/domain/sqlite"
	"newsnotes/cmd/internal/http/render"
	"newsnotes/cmd/internal/routes"
	"newsnotes/cmd/internal/service"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/gommon/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, config.SiteNews)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init SQLite
	db, err := sqlite.Init(cfg.DatabasePath, sqlite.NewsModels()...)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	app, err := routes.NewNews(cfg, db, renderer)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	if cfg.NewsSeedFile != "" {
		seedNews(app.News, cfg.NewsSeedFile)
	}

	if err = app.Run(ctx, cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func seedNews(news *service.NewsService, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read news seed file: %v", err)
	}

	var seeds []*contract.NewsSeed
	if err = json.Unmarshal(raw, &seeds); err != nil {
		log.Fatalf("failed to parse news seed file: %v", err)
	}

	count, apierr := news.SeedIfEmpty(seeds)
	if apierr != nil {
		log.Fatalf("failed to seed news from %s: %+v", path, apierr)
	}
	log.Infof("seeded %d news from %s", count, path)
}
