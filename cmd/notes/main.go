package main

import (
	"context"
	"newsnotes/cmd/internal/config"
	"newsnotes/cmd/internal/domain/sqlite"
	"newsnotes/cmd/internal/http/render"
	"newsnotes/cmd/internal/routes"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/gommon/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, config.SiteNotes)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init SQLite
	db, err := sqlite.Init(cfg.DatabasePath, sqlite.NoteModels()...)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	app, err := routes.NewNotes(cfg, db, renderer)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	if err = app.Run(ctx, cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
